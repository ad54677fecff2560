package domain

// Test statuses.
const (
	TestPlanned   = "PLANNED"
	TestScheduled = "SCHEDULED"
	TestCompleted = "COMPLETED"
	TestWithdrawn = "WITHDRAWN"
)

// SkaterTest is a skills, dance or free skate test attempt.
type SkaterTest struct {
	ID             int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Skater         int64  `json:"skater,omitempty" yaml:"skater,omitempty"`
	TestType       string `json:"test_type" yaml:"test_type" validate:"required,max=50"`
	TestName       string `json:"test_name" yaml:"test_name" validate:"required,max=255"`
	TestDate       string `json:"test_date,omitempty" yaml:"test_date,omitempty" validate:"isodate"`
	Status         string `json:"status" yaml:"status" validate:"required,oneof=PLANNED SCHEDULED COMPLETED WITHDRAWN"`
	Result         string `json:"result,omitempty" yaml:"result,omitempty" validate:"omitempty,oneof=Pass Retry Honors"`
	EvaluatorNotes string `json:"evaluator_notes,omitempty" yaml:"evaluator_notes,omitempty"`
	VideoURL       string `json:"video_url,omitempty" yaml:"video_url,omitempty" validate:"omitempty,url"`
}

// SegmentScore is the score of one competition segment (short, free...).
type SegmentScore struct {
	Name  string  `json:"name" yaml:"name" validate:"required"`
	Score float64 `json:"score" yaml:"score"`
	TES   float64 `json:"tes,omitempty" yaml:"tes,omitempty"`
	PCS   float64 `json:"pcs,omitempty" yaml:"pcs,omitempty"`
}

// Result statuses.
const (
	ResultPlanned    = "PLANNED"
	ResultRegistered = "REGISTERED"
	ResultCompleted  = "COMPLETED"
)

// CompetitionResult is a skater's entry at a competition. Scores are
// decimals the backend serializes as strings.
type CompetitionResult struct {
	ID            int64          `json:"id,omitempty" yaml:"id,omitempty"`
	Competition   *Competition   `json:"competition,omitempty" yaml:"competition,omitempty" validate:"-"`
	CompetitionID int64          `json:"competition_id,omitempty" yaml:"-" validate:"gt=0"`
	Status        string         `json:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,oneof=PLANNED REGISTERED COMPLETED"`
	Level         string         `json:"level" yaml:"level" validate:"required,max=50"`
	Placement     *int           `json:"placement,omitempty" yaml:"placement,omitempty" validate:"omitempty,gt=0"`
	TotalScore    string         `json:"total_score,omitempty" yaml:"total_score,omitempty" validate:"omitempty,numeric"`
	SegmentScores []SegmentScore `json:"segment_scores,omitempty" yaml:"segment_scores,omitempty" validate:"dive"`
	Notes         string         `json:"notes,omitempty" yaml:"notes,omitempty"`
	VideoURL      string         `json:"video_url,omitempty" yaml:"video_url,omitempty" validate:"omitempty,url"`
}

// ScoreMark is a best score and where it was set.
type ScoreMark struct {
	Score float64 `json:"score" yaml:"score"`
	Comp  string  `json:"comp,omitempty" yaml:"comp,omitempty"`
	Date  string  `json:"date,omitempty" yaml:"date,omitempty"`
}

// BestPair holds a personal best and a season best.
type BestPair struct {
	PB *ScoreMark `json:"pb,omitempty" yaml:"pb,omitempty"`
	SB *ScoreMark `json:"sb,omitempty" yaml:"sb,omitempty"`
}

type SegmentBests struct {
	Total BestPair `json:"total" yaml:"total"`
	TES   BestPair `json:"tes" yaml:"tes"`
	PCS   BestPair `json:"pcs" yaml:"pcs"`
}

type ScoreHistoryPoint struct {
	Date       string  `json:"date" yaml:"date"`
	Name       string  `json:"name" yaml:"name"`
	TotalScore float64 `json:"total_score" yaml:"total_score"`
	TES        float64 `json:"tes" yaml:"tes"`
	PlannedBV  float64 `json:"planned_bv" yaml:"planned_bv"`
	PCSApprox  float64 `json:"pcs_approx" yaml:"pcs_approx"`
}

// SkaterStats is the analytics summary of GET /skaters/<id>/stats/.
type SkaterStats struct {
	Overall    BestPair                `json:"overall" yaml:"overall"`
	Segments   map[string]SegmentBests `json:"segments" yaml:"segments"`
	Volume     int                     `json:"volume" yaml:"volume"`
	SeasonName string                  `json:"season_name,omitempty" yaml:"season_name,omitempty"`
	History    []ScoreHistoryPoint     `json:"history" yaml:"history"`
}

// SkatingElement is an entry of the element library (jumps, spins...).
type SkatingElement struct {
	ID              int64  `json:"id" yaml:"id"`
	ElementName     string `json:"element_name" yaml:"element_name"`
	Abbreviation    string `json:"abbreviation" yaml:"abbreviation"`
	DisciplineType  string `json:"discipline_type,omitempty" yaml:"discipline_type,omitempty"`
	ElementCategory string `json:"element_category,omitempty" yaml:"element_category,omitempty"`
}
