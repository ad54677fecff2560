package cli

import (
	"skateplan/internal/core/domain"

	"github.com/spf13/cobra"
)

func newSeasonCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Work with yearly training plans and their phases",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "plans <skater|team|synchro> <id>",
		Short: "List the yearly plans of an entity",
		Args:  cobra.ExactArgs(2),
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
			plans, err := deps.Season.ListYearlyPlans(cmd.Context(), sess.Token, kind, id)
			if err != nil {
				return err
			}
			return a.print(plans)
		},
	})

	var req domain.CreateYearlyPlanRequest
	create := &cobra.Command{
		Use:   "create <skater|team|synchro> <id>",
		Short: "Start a yearly plan for one discipline",
		Long: `Examples:
  skateplan season create skater 12 --entity-id 30 --entity-type singlesentity --peak DOUBLE`,
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
			plan, err := deps.Season.CreateYearlyPlan(cmd.Context(), sess.Token, kind, id, req)
			if err != nil {
				return err
			}
			return a.print(plan)
		},
	}
	create.Flags().Int64Var(&req.PlanningEntityID, "entity-id", 0, "discipline (planning entity) id")
	create.Flags().StringVar(&req.PlanningEntityType, "entity-type", "", "discipline type, e.g. singlesentity")
	create.Flags().StringVar(&req.PeakType, "peak", "", "SINGLE, DOUBLE or TRIPLE (default SINGLE)")
	create.Flags().StringVar(&req.PrimarySeasonGoal, "goal", "", "primary season goal")
	_ = create.MarkFlagRequired("entity-id")
	_ = create.MarkFlagRequired("entity-type")

	var phase domain.Macrocycle
	addPhase := &cobra.Command{
		Use:   "phase <plan-id>",
		Short: "Add a macrocycle to a yearly plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("plan-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			created, err := deps.Season.CreateMacrocycle(cmd.Context(), sess.Token, id, phase)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	addPhase.Flags().StringVar(&phase.PhaseTitle, "title", "", "phase title")
	addPhase.Flags().StringVar(&phase.PhaseStart, "start", "", "first day, YYYY-MM-DD")
	addPhase.Flags().StringVar(&phase.PhaseEnd, "end", "", "last day, YYYY-MM-DD")
	addPhase.Flags().StringVar(&phase.PhaseFocus, "focus", "", "overall focus")
	addPhase.Flags().StringVar(&phase.TechnicalFocus, "technical", "", "technical focus")
	addPhase.Flags().StringVar(&phase.PhysicalFocus, "physical", "", "physical focus")
	_ = addPhase.MarkFlagRequired("title")

	var season domain.AthleteSeason
	dates := &cobra.Command{
		Use:   "dates <season-id>",
		Short: "Rename a season or move its dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("season-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			updated, err := deps.Season.UpdateSeason(cmd.Context(), sess.Token, id, season)
			if err != nil {
				return err
			}
			return a.print(updated)
		},
	}
	dates.Flags().StringVar(&season.Season, "name", "", "season name, e.g. 2025-2026")
	dates.Flags().StringVar(&season.StartDate, "start", "", "start date, YYYY-MM-DD")
	dates.Flags().StringVar(&season.EndDate, "end", "", "end date, YYYY-MM-DD")
	_ = dates.MarkFlagRequired("name")

	cmd.AddCommand(create, addPhase, dates)
	return cmd
}
