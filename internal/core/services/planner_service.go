package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	"skateplan/pkg/utils"
	"skateplan/pkg/validation"
)

// ThemeDay is the day index that addresses the week's theme instead of a day.
const ThemeDay = -1

const daysPerWeek = 7

const maxThemeLength = 255

// PlannerService loads and saves weekly plans.
type PlannerService struct {
	gw ports.Gateway
}

func NewPlannerService(gw ports.Gateway) *PlannerService {
	return &PlannerService{gw: gw}
}

// MondayOf returns the Monday that starts t's week, at midnight.
func MondayOf(t time.Time) time.Time {
	return utils.StartOfWeek(t)
}

// WeekView returns every plan of the entity for the week containing date.
func (s *PlannerService) WeekView(ctx context.Context, token string, kind domain.EntityKind, id int64, date time.Time) (*domain.WeekView, error) {
	path, err := entityPath(kind, id, "week-view/")
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("date", utils.FormatDate(MondayOf(date)))

	view, err := call[*domain.WeekView](ctx, s.gw, withQuery(path, q), http.MethodGet, nil, token)
	if err != nil {
		return nil, err
	}
	if view == nil {
		view = &domain.WeekView{}
	}
	return view, nil
}

// SaveWeek writes the theme and day breakdown of plan back.
func (s *PlannerService) SaveWeek(ctx context.Context, token string, plan *domain.WeeklyPlan) (*domain.WeeklyPlan, error) {
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	path, err := idPath("weeks", plan.ID, "")
	if err != nil {
		return nil, err
	}
	breakdown := plan.SessionBreakdown
	if breakdown == nil {
		breakdown = map[string]domain.DayEntry{}
	}
	body := ports.JSONBody{Value: struct {
		Theme            string                     `json:"theme"`
		SessionBreakdown map[string]domain.DayEntry `json:"session_breakdown"`
	}{plan.Theme, breakdown}}

	saved, err := call[*domain.WeeklyPlan](ctx, s.gw, path, http.MethodPatch, body, token)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return plan, nil
	}
	return saved, nil
}

// FindPlan returns the slot holding the plan with the given id.
func FindPlan(view *domain.WeekView, planID int64) (*domain.PlanSlot, error) {
	if view != nil {
		for i := range view.Plans {
			slot := &view.Plans[i]
			if slot.PlanData != nil && slot.PlanData.ID == planID {
				return slot, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %d", domain.ErrPlanNotFound, planID)
}

// DayCards lays the week out as seven cards starting at monday, each
// holding every plan's entry for that day.
func DayCards(view *domain.WeekView, monday time.Time) []domain.DayCard {
	monday = MondayOf(monday)
	cards := make([]domain.DayCard, daysPerWeek)
	for i := range cards {
		date := monday.AddDate(0, 0, i)
		card := domain.DayCard{
			Index:   i,
			Date:    date,
			Weekday: date.Weekday().String(),
			Entries: []domain.DayCardRow{},
		}
		if view != nil {
			for _, slot := range view.Plans {
				if slot.PlanData == nil {
					continue
				}
				entry := slot.PlanData.SessionBreakdown[strconv.Itoa(i)]
				ghost := GhostSummary(entry)
				entry.Status = entry.EffectiveStatus()
				card.Entries = append(card.Entries, domain.DayCardRow{
					Label:  slot.Label,
					PlanID: slot.PlanData.ID,
					Active: entry.Active(),
					Entry:  entry,
					Ghost:  ghost,
				})
			}
		}
		card.Free = true
		for _, row := range card.Entries {
			if row.Active {
				card.Free = false
				break
			}
		}
		cards[i] = card
	}
	return cards
}

// SetDayField edits one field of the slot's plan. Day ThemeDay edits the
// theme; 0..6 edit that day's entry. Slots the backend did not mark
// editable are refused.
func SetDayField(slot *domain.PlanSlot, day int, field domain.DayField, value string) error {
	if slot == nil || slot.PlanData == nil {
		return domain.ErrPlanNotFound
	}
	if !slot.CanEdit {
		return domain.ErrReadOnly
	}
	plan := slot.PlanData

	if day == ThemeDay {
		if field != domain.FieldTheme {
			return fmt.Errorf("%w: %q on theme row", domain.ErrInvalidDayField, field)
		}
		if err := validation.ValidateStringLength(value, 0, maxThemeLength, "theme"); err != nil {
			return err
		}
		plan.Theme = value
		return nil
	}
	if day < 0 || day >= daysPerWeek {
		return fmt.Errorf("%w: %d", domain.ErrInvalidDay, day)
	}

	key := strconv.Itoa(day)
	entry := plan.SessionBreakdown[key]
	switch field {
	case domain.FieldStatus:
		status := domain.DayStatus(value)
		if !status.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrInvalidDayStatus, value)
		}
		entry.Status = status
	case domain.FieldOnIce:
		entry.OnIce = value
	case domain.FieldOffIce:
		entry.OffIce = value
	case domain.FieldNotes:
		entry.Notes = value
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidDayField, field)
	}

	if plan.SessionBreakdown == nil {
		plan.SessionBreakdown = make(map[string]domain.DayEntry, daysPerWeek)
	}
	plan.SessionBreakdown[key] = entry
	return nil
}

// GhostSummary is the one-line preview of a day shown on collapsed cards.
// A day with no status, or a training day with nothing filled in, has none.
func GhostSummary(entry domain.DayEntry) string {
	if entry.Status == "" {
		return ""
	}
	if entry.Status != domain.DayTraining {
		return string(entry.Status)
	}
	switch {
	case entry.OnIce != "":
		return entry.OnIce
	case entry.OffIce != "":
		return entry.OffIce
	case entry.Notes != "":
		return "Training"
	}
	return ""
}
