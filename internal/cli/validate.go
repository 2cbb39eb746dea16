package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tidepool.dev/internal/render"
	"tidepool.dev/internal/services"
)

func newValidateCmd(e env) *cobra.Command {
	var projects string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Fetch and render the project document once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("projects") {
				cfg.ProjectsSource = projects
			}

			ps := services.NewProjectService(services.NewSource(e.fs, cfg.ProjectsSource), cfg.FetchTimeout)
			records, err := ps.Fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("validate %s: %w", ps.Source(), err)
			}

			markup := render.Projects(records)
			cmd.Printf("%s: %d projects, %d bytes of markup\n", ps.Source(), len(records), len(markup))
			return nil
		},
	}

	cmd.Flags().StringVar(&projects, "projects", "", "project document path or URL (overrides PROJECTS_SOURCE)")
	return cmd
}
