package cli

import (
	"fmt"
	"sort"
	"strings"

	"skateplan/internal/infrastructure/monitoring"

	"github.com/spf13/cobra"
)

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the backend and the token store",
		Long: `Run the configured health checks and print their results. The command
fails when any check fails.

Examples:
  skateplan status
  skateplan status -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := a.services()
			if err != nil {
				return err
			}
			status := deps.Health.CheckAll(cmd.Context())
			if err := a.print(status); err != nil {
				return err
			}
			if status.Status == monitoring.StatusHealthy {
				return nil
			}
			var failed []string
			for name, result := range status.Checks {
				if result != monitoring.StatusHealthy {
					failed = append(failed, name)
				}
			}
			sort.Strings(failed)
			return fmt.Errorf("unhealthy: %s", strings.Join(failed, ", "))
		},
	}
}
