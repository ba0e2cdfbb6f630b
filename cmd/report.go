package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kavya/markbook/internal/dataset"
	"github.com/kavya/markbook/internal/report"
	"github.com/kavya/markbook/internal/ui"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a report for a student",
	Long:  "Prints a diagnostic, progress, or feedback report. Without --student and --report an interactive prompt collects them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd)
	},
}

func init() {
	f := reportCmd.Flags()
	f.StringP("student", "s", "", "Student id to report on")
	f.StringP("report", "r", "", "Report kind (diagnostic, progress, feedback, or 1-3)")
}

func runReport(cmd *cobra.Command) error {
	v := viperForCmd(cmd)
	setupLogging(v)

	studentID := v.GetString("student")
	kindArg := v.GetString("report")

	var kind report.Kind
	if kindArg != "" {
		// Reject a bad kind before touching the dataset.
		k, err := report.ParseKind(kindArg)
		if err != nil {
			return err
		}
		kind = k
	}

	if studentID == "" || kind == "" {
		sel, ok, err := ui.RunPrompt()
		if err != nil {
			return err
		}
		if !ok {
			return nil // canceled
		}
		studentID, kind = sel.StudentID, sel.Kind
	}

	snap, err := dataset.Load(v.GetString("data"))
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	text, err := report.NewGenerator(snap).Build(studentID, kind)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
