package cli

import (
	"time"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/services"
	"skateplan/pkg/utils"
	"skateplan/pkg/validation"

	"github.com/spf13/cobra"
)

// weekOutput is the output of `week show`.
type weekOutput struct {
	WeekOf string           `json:"week_of" yaml:"week_of"`
	Plans  []weekPlan       `json:"plans" yaml:"plans"`
	Days   []domain.DayCard `json:"days" yaml:"days"`
}

type weekPlan struct {
	ID      int64  `json:"id" yaml:"id"`
	Label   string `json:"label" yaml:"label"`
	Theme   string `json:"theme" yaml:"theme"`
	CanEdit bool   `json:"can_edit" yaml:"can_edit"`
}

func newWeekCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show and edit the weekly planner",
	}

	var date string
	cmd.PersistentFlags().StringVar(&date, "date", "", "any date inside the week, YYYY-MM-DD (default today)")
	weekOf := func() (time.Time, error) {
		if date == "" {
			return services.MondayOf(time.Now()), nil
		}
		d, err := validation.ParseDate(date)
		if err != nil {
			return time.Time{}, err
		}
		return services.MondayOf(d), nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <kind> <id>",
		Short: "Show every plan of an entity for one week, day by day",
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
			monday, err := weekOf()
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			view, err := deps.Planner.WeekView(cmd.Context(), sess.Token, kind, id, monday)
			if err != nil {
				return err
			}

			out := weekOutput{
				WeekOf: utils.FormatDate(monday),
				Plans:  []weekPlan{},
				Days:   services.DayCards(view, monday),
			}
			for _, slot := range view.Plans {
				if slot.PlanData == nil {
					continue
				}
				out.Plans = append(out.Plans, weekPlan{
					ID:      slot.PlanData.ID,
					Label:   slot.Label,
					Theme:   slot.PlanData.Theme,
					CanEdit: slot.CanEdit,
				})
			}
			return a.print(out)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <kind> <id> <plan-id> <day> <field> <value>",
		Short: "Change one field of one day and save the plan",
		Long: `Day is 0-6 (Monday first), a weekday name, or "week" together with the
theme field. Field is one of theme, status, on_ice, off_ice, notes.
Only plans the week view marks as editable can be changed.

Examples:
  skateplan week set skater 12 88 wed status REST
  skateplan week set team 4 91 week theme "Taper for Sectionals" --date 2024-03-11`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseEntityKind(args[0])
			if err != nil {
				return err
			}
			id, err := parseID("id", args[1])
			if err != nil {
				return err
			}
			planID, err := parseID("plan-id", args[2])
			if err != nil {
				return err
			}
			day, err := parseDay(args[3])
			if err != nil {
				return err
			}
			field := domain.DayField(args[4])
			monday, err := weekOf()
			if err != nil {
				return err
			}

			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			view, err := deps.Planner.WeekView(cmd.Context(), sess.Token, kind, id, monday)
			if err != nil {
				return err
			}
			slot, err := services.FindPlan(view, planID)
			if err != nil {
				return err
			}
			if err := services.SetDayField(slot, day, field, utils.SanitizeString(args[5])); err != nil {
				return err
			}
			saved, err := deps.Planner.SaveWeek(cmd.Context(), sess.Token, slot.PlanData)
			if err != nil {
				return err
			}
			return a.print(saved)
		},
	})
	return cmd
}
