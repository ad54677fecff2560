package cli

import (
	"skateplan/internal/core/domain"

	"github.com/spf13/cobra"
)

func newRosterCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "List the skaters you can see",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			skaters, err := deps.Roster.ListRoster(cmd.Context(), sess.Token)
			if err != nil {
				return err
			}
			return a.print(skaters)
		},
	}
}

// skaterDetail is the output of `skater show`.
type skaterDetail struct {
	Skater      *domain.Skater       `json:"skater" yaml:"skater"`
	Permissions domain.PermissionSet `json:"permissions" yaml:"permissions"`
}

func newSkaterCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skater",
		Short: "Inspect skaters",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <skater-id>",
		Short: "Show a skater and what you may do with them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("skater-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			skater, err := deps.Roster.GetSkater(cmd.Context(), sess.Token, id)
			if err != nil {
				return err
			}
			return a.print(skaterDetail{
				Skater:      skater,
				Permissions: deps.Access.Derive(sess.User, skater.Entity()),
			})
		},
	})
	return cmd
}

func newAccessCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "access <kind> <id>",
		Short: "Show your permissions on a skater, team or synchro team",
		Long: `Fetch the entity and derive the permission set the apps use to decide
which panels and buttons to show.

Examples:
  skateplan access skater 12
  skateplan access team 4 -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseEntityKind(args[0])
			if err != nil {
				return err
			}
			id, err := parseID("id", args[1])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			access, err := deps.Access.Lookup(cmd.Context(), sess.Token, sess.User, kind, id)
			if err != nil {
				return err
			}
			return a.print(access)
		},
	}
}
