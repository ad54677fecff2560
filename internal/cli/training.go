package cli

import (
	"skateplan/internal/core/domain"

	"github.com/spf13/cobra"
)

func newGoalsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Work with a skater's goals",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <skater-id>",
		Short: "List goals across every discipline of a skater",
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
			goals, err := deps.Training.ListGoals(cmd.Context(), sess.Token, id)
			if err != nil {
				return err
			}
			return a.print(goals)
		},
	})
	return cmd
}

func newInjuryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "injury",
		Short: "Record injuries",
	}

	var injury domain.Injury
	var returnDate string
	add := &cobra.Command{
		Use:   "add <skater-id>",
		Short: "Record a new injury for a skater",
		Long: `Examples:
  skateplan injury add 12 --type "Ankle sprain" --onset 2024-03-02 --area ankle --severity Moderate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("skater-id", args[0])
			if err != nil {
				return err
			}
			if returnDate != "" {
				injury.ReturnToSportDate = &returnDate
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			created, err := deps.Training.CreateInjury(cmd.Context(), sess.Token, id, injury)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	add.Flags().StringVar(&injury.InjuryType, "type", "", "injury type")
	add.Flags().StringVar(&injury.DateOfOnset, "onset", "", "date of onset, YYYY-MM-DD")
	add.Flags().StringSliceVar(&injury.BodyArea, "area", nil, "affected body area, repeatable")
	add.Flags().StringVar(&injury.Severity, "severity", "", "severity")
	add.Flags().StringVar(&injury.RecoveryStatus, "status", "", "recovery status")
	add.Flags().StringVar(&injury.RecoveryNotes, "notes", "", "recovery notes")
	add.Flags().StringVar(&returnDate, "return", "", "expected return to sport, YYYY-MM-DD")
	_ = add.MarkFlagRequired("type")
	_ = add.MarkFlagRequired("onset")

	cmd.AddCommand(add)
	return cmd
}
