package cli

import (
	"fmt"
	"strconv"
	"strings"

	"skateplan/internal/core/domain"

	"github.com/spf13/cobra"
)

func newTestsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tests",
		Short: "Track skills, dance and free skate tests",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <skater-id>",
		Short: "List a skater's test attempts",
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
			tests, err := deps.Results.ListTests(cmd.Context(), sess.Token, id)
			if err != nil {
				return err
			}
			return a.print(tests)
		},
	})

	var test domain.SkaterTest
	add := &cobra.Command{
		Use:   "add <skater-id>",
		Short: "Record a test attempt",
		Long: `Examples:
  skateplan tests add 12 --name "STAR 6 Free Skate" --date 2025-11-02 --status COMPLETED --result Pass`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("skater-id", args[0])
			if err != nil {
				return err
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			created, err := deps.Results.CreateTest(cmd.Context(), sess.Token, id, test)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	add.Flags().StringVar(&test.TestName, "name", "", "test name")
	add.Flags().StringVar(&test.TestType, "type", "", "test type (default Skills)")
	add.Flags().StringVar(&test.TestDate, "date", "", "test date, YYYY-MM-DD")
	add.Flags().StringVar(&test.Status, "status", "", "PLANNED, SCHEDULED, COMPLETED or WITHDRAWN (default PLANNED)")
	add.Flags().StringVar(&test.Result, "result", "", "Pass, Retry or Honors")
	add.Flags().StringVar(&test.EvaluatorNotes, "notes", "", "evaluator notes")
	_ = add.MarkFlagRequired("name")

	cmd.AddCommand(add)
	return cmd
}

func newResultsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Log competition results and view score analytics",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <skater-id>",
		Short: "List a skater's competition results",
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
			results, err := deps.Results.ListResults(cmd.Context(), sess.Token, id)
			if err != nil {
				return err
			}
			return a.print(results)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "stats <skater-id>",
		Short: "Show personal and season bests with the score history",
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
			stats, err := deps.Results.Stats(cmd.Context(), sess.Token, id)
			if err != nil {
				return err
			}
			return a.print(stats)
		},
	})

	var (
		result    domain.CompetitionResult
		placement int
		segments  []string
	)
	add := &cobra.Command{
		Use:   "add <skater-id>",
		Short: "Log a result at a competition",
		Long: `Segments are name:score or name:score:tes:pcs.

Examples:
  skateplan results add 12 --competition 7 --level Junior --placement 3 --score 148.20 \
    --segment Short:52.1:28.4:23.7 --segment Free:96.1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("skater-id", args[0])
			if err != nil {
				return err
			}
			if placement > 0 {
				result.Placement = &placement
			}
			for _, s := range segments {
				seg, err := parseSegment(s)
				if err != nil {
					return err
				}
				result.SegmentScores = append(result.SegmentScores, seg)
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			created, err := deps.Results.CreateResult(cmd.Context(), sess.Token, id, result)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	add.Flags().Int64Var(&result.CompetitionID, "competition", 0, "competition id")
	add.Flags().StringVar(&result.Level, "level", "", "competitive level")
	add.Flags().IntVar(&placement, "placement", 0, "final placement")
	add.Flags().StringVar(&result.TotalScore, "score", "", "total score")
	add.Flags().StringVar(&result.Status, "status", "", "PLANNED, REGISTERED or COMPLETED")
	add.Flags().StringArrayVar(&segments, "segment", nil, "segment score, repeatable")
	add.Flags().StringVar(&result.Notes, "notes", "", "notes")
	_ = add.MarkFlagRequired("competition")
	_ = add.MarkFlagRequired("level")

	cmd.AddCommand(add)
	return cmd
}

func newElementsCommand(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "elements [query]",
		Short: "Search the element library by name or abbreviation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			deps, sess, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			elements, err := deps.Results.SearchElements(cmd.Context(), sess.Token, query, category)
			if err != nil {
				return err
			}
			return a.print(elements)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "element category, e.g. JUMP or SPIN")
	return cmd
}

func parseSegment(s string) (domain.SegmentScore, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 4 {
		return domain.SegmentScore{}, fmt.Errorf("segment must be name:score or name:score:tes:pcs, got %q", s)
	}
	scores := make([]float64, len(parts)-1)
	for i, p := range parts[1:] {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return domain.SegmentScore{}, fmt.Errorf("segment %q: bad score %q", parts[0], p)
		}
		scores[i] = v
	}
	seg := domain.SegmentScore{Name: parts[0], Score: scores[0]}
	if len(scores) == 3 {
		seg.TES, seg.PCS = scores[1], scores[2]
	}
	return seg, nil
}
