package domain

// Peak types a yearly plan can target.
const (
	PeakSingle = "SINGLE"
	PeakDouble = "DOUBLE"
	PeakTriple = "TRIPLE"
)

// AthleteSeason is one competitive season of a skater.
type AthleteSeason struct {
	ID        int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Skater    int64  `json:"skater,omitempty" yaml:"skater,omitempty"`
	Season    string `json:"season" yaml:"season" validate:"required,max=10"`
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty" validate:"isodate"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty" validate:"isodate"`
	IsActive  bool   `json:"is_active,omitempty" yaml:"is_active"`
}

// Macrocycle is a training phase inside a yearly plan.
type Macrocycle struct {
	ID             int64  `json:"id,omitempty" yaml:"id,omitempty"`
	YearlyPlan     int64  `json:"yearly_plan,omitempty" yaml:"yearly_plan,omitempty"`
	PhaseTitle     string `json:"phase_title" yaml:"phase_title" validate:"required,max=100"`
	PhaseStart     string `json:"phase_start" yaml:"phase_start" validate:"required,isodate"`
	PhaseEnd       string `json:"phase_end" yaml:"phase_end" validate:"required,isodate"`
	PhaseFocus     string `json:"phase_focus,omitempty" yaml:"phase_focus,omitempty"`
	TechnicalFocus string `json:"technical_focus,omitempty" yaml:"technical_focus,omitempty"`
	ComponentFocus string `json:"component_focus,omitempty" yaml:"component_focus,omitempty"`
	PhysicalFocus  string `json:"physical_focus,omitempty" yaml:"physical_focus,omitempty"`
	MentalFocus    string `json:"mental_focus,omitempty" yaml:"mental_focus,omitempty"`
}

// YearlyPlan is a season training plan (YTP) of one discipline.
type YearlyPlan struct {
	ID                int64          `json:"id" yaml:"id"`
	PlanningEntity    string         `json:"planning_entity,omitempty" yaml:"planning_entity,omitempty"`
	DisciplineName    string         `json:"discipline_name,omitempty" yaml:"discipline_name,omitempty"`
	Title             string         `json:"title,omitempty" yaml:"title,omitempty"`
	PeakType          string         `json:"peak_type,omitempty" yaml:"peak_type,omitempty"`
	PrimarySeasonGoal string         `json:"primary_season_goal,omitempty" yaml:"primary_season_goal,omitempty"`
	SeasonInfo        *AthleteSeason `json:"season_info,omitempty" yaml:"season_info,omitempty"`
	Macrocycles       []Macrocycle   `json:"macrocycles,omitempty" yaml:"macrocycles,omitempty"`
	AccessLevel       AccessLevel    `json:"access_level,omitempty" yaml:"access_level,omitempty"`
	CreatedAt         string         `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt         string         `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// CreateYearlyPlanRequest is the body of POST /<kind>/<id>/ytps/.
type CreateYearlyPlanRequest struct {
	PlanningEntityID   int64  `json:"planning_entity_id" validate:"gt=0"`
	PlanningEntityType string `json:"planning_entity_type" validate:"required"`
	PeakType           string `json:"peak_type" validate:"required,oneof=SINGLE DOUBLE TRIPLE"`
	PrimarySeasonGoal  string `json:"primary_season_goal,omitempty"`
}

// YearlyPlanUpdate is a partial update for PATCH /ytps/<id>/.
type YearlyPlanUpdate struct {
	Title             *string `json:"title,omitempty" validate:"omitempty,max=255"`
	PeakType          *string `json:"peak_type,omitempty" validate:"omitempty,oneof=SINGLE DOUBLE TRIPLE"`
	PrimarySeasonGoal *string `json:"primary_season_goal,omitempty"`
}
