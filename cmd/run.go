package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matrix/isotopes/internal/app"
	"github.com/matrix/isotopes/internal/session"
)

// runApp resolves configuration, starts a session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	skipSplash, _ := cmd.Flags().GetBool("no-splash")
	sess := session.New(log)
	log.WithField("session_id", sess.ID).WithField("assets_dir", cfg.AssetsDir).Debug("configuration loaded")

	return app.Run(cmd.Context(), app.Options{
		Session:    sess,
		Config:     cfg,
		SkipSplash: skipSplash,
	})
}
