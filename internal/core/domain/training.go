package domain

// SessionLog is a single training session entry.
type SessionLog struct {
	ID             int64  `json:"id,omitempty" yaml:"id,omitempty"`
	SessionDate    string `json:"session_date" yaml:"session_date" validate:"required,isodate"`
	EnergyStamina  int    `json:"energy_stamina,omitempty" yaml:"energy_stamina,omitempty" validate:"omitempty,min=1,max=5"`
	SessionRating  int    `json:"session_rating,omitempty" yaml:"session_rating,omitempty" validate:"omitempty,min=1,max=5"`
	SentimentEmoji string `json:"sentiment_emoji,omitempty" yaml:"sentiment_emoji,omitempty"`
	CoachNotes     string `json:"coach_notes,omitempty" yaml:"coach_notes,omitempty"`
	SkaterNotes    string `json:"skater_notes,omitempty" yaml:"skater_notes,omitempty"`
	Attendance     string `json:"attendance,omitempty" yaml:"attendance,omitempty"`
	JumpFocus      string `json:"jump_focus,omitempty" yaml:"jump_focus,omitempty"`
	SpinFocus      string `json:"spin_focus,omitempty" yaml:"spin_focus,omitempty"`
}

type GoalStatus string

const (
	GoalDraft      GoalStatus = "DRAFT"
	GoalPending    GoalStatus = "PENDING"
	GoalApproved   GoalStatus = "APPROVED"
	GoalRevision   GoalStatus = "REVISION"
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalCompleted  GoalStatus = "COMPLETED"
	GoalArchived   GoalStatus = "ARCHIVED"
)

type Goal struct {
	ID               int64      `json:"id,omitempty" yaml:"id,omitempty"`
	Title            string     `json:"title" yaml:"title" validate:"required,max=255"`
	GoalType         string     `json:"goal_type,omitempty" yaml:"goal_type,omitempty"`
	GoalTimeframe    string     `json:"goal_timeframe,omitempty" yaml:"goal_timeframe,omitempty"`
	StartDate        string     `json:"start_date,omitempty" yaml:"start_date,omitempty" validate:"isodate"`
	TargetDate       string     `json:"target_date,omitempty" yaml:"target_date,omitempty" validate:"isodate"`
	SmartDescription string     `json:"smart_description,omitempty" yaml:"smart_description,omitempty"`
	ProgressNotes    string     `json:"progress_notes,omitempty" yaml:"progress_notes,omitempty"`
	CurrentStatus    GoalStatus `json:"current_status,omitempty" yaml:"current_status,omitempty" validate:"omitempty,oneof=DRAFT PENDING APPROVED REVISION IN_PROGRESS COMPLETED ARCHIVED"`
	CoachReviewNotes string     `json:"coach_review_notes,omitempty" yaml:"coach_review_notes,omitempty"`
}

type Injury struct {
	ID                int64    `json:"id,omitempty" yaml:"id,omitempty"`
	InjuryType        string   `json:"injury_type" yaml:"injury_type" validate:"required,max=100"`
	BodyArea          []string `json:"body_area" yaml:"body_area"`
	DateOfOnset       string   `json:"date_of_onset" yaml:"date_of_onset" validate:"required,isodate"`
	ReturnToSportDate *string  `json:"return_to_sport_date" yaml:"return_to_sport_date,omitempty" validate:"omitempty,isodate"`
	Severity          string   `json:"severity,omitempty" yaml:"severity,omitempty" validate:"omitempty,max=50"`
	RecoveryStatus    string   `json:"recovery_status,omitempty" yaml:"recovery_status,omitempty" validate:"omitempty,max=100"`
	RecoveryNotes     string   `json:"recovery_notes,omitempty" yaml:"recovery_notes,omitempty"`
}
