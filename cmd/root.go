package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matrix/isotopes/internal/config"
	"github.com/matrix/isotopes/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "isotopes",
	Short: "Nuclear isotope economics dashboard",
	Long:  "Isotopes — terminal dashboard on the economics of non-energy nuclear applications, with a short quiz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides ISOTOPES_LOG_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides ISOTOPES_LOG_LEVEL)")
	rootCmd.Flags().String("assets-dir", "", "Directory holding optional images (overrides ISOTOPES_ASSETS_DIR)")
	rootCmd.Flags().Duration("feedback-delay", 0, "How long quiz feedback stays up, 0 waits for a key (overrides ISOTOPES_FEEDBACK_DELAY)")
	rootCmd.Flags().Bool("no-splash", false, "Open the dashboard directly")

	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads ISOTOPES_* settings, then applies any flags that
// were set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("assets-dir") {
		cfg.AssetsDir, _ = flags.GetString("assets-dir")
	}
	if flags.Changed("feedback-delay") {
		cfg.FeedbackDelay, _ = flags.GetDuration("feedback-delay")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openLog builds the logger described by cfg.
func openLog(cfg config.Config) (*logrus.Logger, func() error, error) {
	log, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("set up logging: %w", err)
	}
	return log, closeLog, nil
}
