package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"skateplan/internal/core/domain"

	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	newDeps    DepsFactory
	deps       *Deps
	configPath string
	output     string
	out        io.Writer
}

// NewRootCommand builds the skateplan command tree. newDeps is called once,
// before the first subcommand that talks to the backend runs.
func NewRootCommand(newDeps DepsFactory) *cobra.Command {
	a := &app{newDeps: newDeps, out: os.Stdout}

	root := &cobra.Command{
		Use:   "skateplan",
		Short: "Plan figure skating seasons from the command line",
		Long: `skateplan talks to the SkatePlan backend on behalf of a coach, skater
or guardian. Log in once; the session token is kept in the configured
token store and reused by every other command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.out = cmd.OutOrStdout()
			switch a.output {
			case formatYAML, formatJSON:
			default:
				return fmt.Errorf("--output must be %q or %q", formatYAML, formatJSON)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.deps == nil {
				return nil
			}
			return a.deps.Close()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default searches ./configs/config.yaml)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", formatYAML, "output format: yaml or json")

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newRosterCommand(a),
		newSkaterCommand(a),
		newAccessCommand(a),
		newGoalsCommand(a),
		newInjuryCommand(a),
		newProgramCommand(a),
		newWeekCommand(a),
		newSeasonCommand(a),
		newTestsCommand(a),
		newResultsCommand(a),
		newElementsCommand(a),
		newTripsCommand(a),
		newStatusCommand(a),
		newVersionCommand(a),
	)
	return root
}

// Execute runs the CLI with the production wiring.
func Execute() error {
	return NewRootCommand(LoadDeps).Execute()
}

func (a *app) services() (*Deps, error) {
	if a.deps != nil {
		return a.deps, nil
	}
	path := a.configPath
	if path == "" {
		path = findConfig()
	}
	deps, err := a.newDeps(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	a.deps = deps
	return deps, nil
}

// session restores the stored session.
func (a *app) session(ctx context.Context) (*Deps, *domain.Session, error) {
	deps, err := a.services()
	if err != nil {
		return nil, nil, err
	}
	sess, err := deps.Auth.Restore(ctx)
	if errors.Is(err, domain.ErrNoToken) {
		return nil, nil, errors.New("not logged in, run `skateplan login` first")
	}
	if err != nil {
		return nil, nil, err
	}
	return deps, sess, nil
}

func findConfig() string {
	if p := os.Getenv("SKATEPLAN_CONFIG"); p != "" {
		return p
	}
	for _, p := range []string{"configs/config.yaml", "config.yaml"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
