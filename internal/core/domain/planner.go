package domain

import "time"

type DayStatus string

const (
	DayTraining    DayStatus = "TRAINING"
	DayRest        DayStatus = "REST"
	DayTravel      DayStatus = "TRAVEL"
	DayCompetition DayStatus = "COMPETITION"
	DayTest        DayStatus = "TEST"
	DayInjury      DayStatus = "INJURY"
)

// DayStatuses lists the statuses the backend accepts, in display order.
var DayStatuses = []DayStatus{DayTraining, DayRest, DayTravel, DayCompetition, DayTest, DayInjury}

func (s DayStatus) Valid() bool {
	for _, v := range DayStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DayEntry is one day of a weekly plan's session breakdown.
type DayEntry struct {
	Status DayStatus `json:"status,omitempty" yaml:"status,omitempty"`
	OnIce  string    `json:"on_ice,omitempty" yaml:"on_ice,omitempty"`
	OffIce string    `json:"off_ice,omitempty" yaml:"off_ice,omitempty"`
	Notes  string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// EffectiveStatus is the status shown for the entry; unset means training.
func (e DayEntry) EffectiveStatus() DayStatus {
	if e.Status == "" {
		return DayTraining
	}
	return e.Status
}

// WeeklyPlan is the editable part of a week for one planning entity.
// SessionBreakdown is keyed by day index "0" (Monday) .. "6" (Sunday).
type WeeklyPlan struct {
	ID               int64               `json:"id" yaml:"id"`
	Theme            string              `json:"theme" yaml:"theme"`
	SessionBreakdown map[string]DayEntry `json:"session_breakdown" yaml:"session_breakdown"`
}

// PlanSlot is one labelled plan in a week view, e.g. "Singles" or a team name.
// CanEdit is decided by the backend per plan; a missing flag means read-only.
type PlanSlot struct {
	Label    string      `json:"label" yaml:"label"`
	CanEdit  bool        `json:"can_edit" yaml:"can_edit"`
	PlanData *WeeklyPlan `json:"plan_data" yaml:"plan_data"`
}

// WeekView is the response of GET /<kind>/<id>/week-view/.
type WeekView struct {
	Plans []PlanSlot `json:"plans" yaml:"plans"`
}

// Active reports whether the entry has anything to show: a non-training
// status, or a training day with some content.
func (e DayEntry) Active() bool {
	if e.EffectiveStatus() != DayTraining {
		return true
	}
	return e.OnIce != "" || e.OffIce != "" || e.Notes != ""
}

// DayCard is one day of the week with every plan's entry for it. Free is
// set when none of the entries is active.
type DayCard struct {
	Index   int          `json:"index" yaml:"index"`
	Date    time.Time    `json:"date" yaml:"date"`
	Weekday string       `json:"weekday" yaml:"weekday"`
	Free    bool         `json:"free" yaml:"free"`
	Entries []DayCardRow `json:"entries" yaml:"entries"`
}

type DayCardRow struct {
	Label  string   `json:"label" yaml:"label"`
	PlanID int64    `json:"plan_id" yaml:"plan_id"`
	Active bool     `json:"active" yaml:"active"`
	Entry  DayEntry `json:"entry" yaml:"entry"`
	Ghost  string   `json:"ghost,omitempty" yaml:"ghost,omitempty"`
}

// DayField names the editable fields of a day entry.
type DayField string

const (
	FieldTheme  DayField = "theme"
	FieldStatus DayField = "status"
	FieldOnIce  DayField = "on_ice"
	FieldOffIce DayField = "off_ice"
	FieldNotes  DayField = "notes"
)
