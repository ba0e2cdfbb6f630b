package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "markbook",
	Short: "Student assessment reports from JSON datasets",
	Long:  "Markbook reads a static assessment dataset (students, assessments, questions, responses) and prints diagnostic, progress, or feedback reports for a student.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("data", "d", "data", "Directory containing the dataset JSON files")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)

	// Bare `markbook` behaves like `markbook report`.
	rootCmd.Flags().AddFlagSet(reportCmd.Flags())
}

// viperForCmd binds a command's flags and environment to a fresh viper
// instance. Any flag can also be set via MARKBOOK_<FLAG> or a markbook
// config file.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())
	_ = v.BindPFlags(cmd.InheritedFlags())

	v.SetEnvPrefix("MARKBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("markbook")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/markbook")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	}

	return v
}

// setupLogging installs the default slog handler from the log flags.
func setupLogging(v *viper.Viper) {
	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}
