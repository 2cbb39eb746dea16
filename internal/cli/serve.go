package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidepool.dev/internal/config"
	"tidepool.dev/internal/handlers"
	"tidepool.dev/internal/server"
)

func newServeCmd(e env) *cobra.Command {
	var (
		addr          string
		projects      string
		staticDir     string
		reducedMotion bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.ServerAddr = addr
			}
			if flags.Changed("projects") {
				cfg.ProjectsSource = projects
			}
			if flags.Changed("static") {
				cfg.StaticDir = staticDir
			}
			if flags.Changed("reduced-motion") {
				cfg.ReducedMotion = reducedMotion
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cfg.NewLogger(e.stderr)
			router, err := handlers.SetupRoutes(cfg, e.fs, log)
			if err != nil {
				return fmt.Errorf("setup routes: %w", err)
			}
			return server.New(cfg.ServerAddr, router, log.Named("http")).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (overrides SERVER_ADDR)")
	cmd.Flags().StringVar(&projects, "projects", "", "project document path or URL (overrides PROJECTS_SOURCE)")
	cmd.Flags().StringVar(&staticDir, "static", "", "static asset directory (overrides STATIC_DIR)")
	cmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "default to reduced motion (overrides REDUCED_MOTION)")
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
