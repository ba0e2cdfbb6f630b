package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kavya/markbook/internal/sample"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a sample dataset into the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		setupLogging(v)

		dir := v.GetString("data")
		if err := sample.Write(dir); err != nil {
			return fmt.Errorf("write sample dataset: %w", err)
		}
		slog.Info("sample dataset written", "dir", dir)
		return nil
	},
}
