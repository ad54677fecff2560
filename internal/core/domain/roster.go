package domain

// Federation is a national skating federation.
type Federation struct {
	ID        int64  `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Code      string `json:"code" yaml:"code"`
	FlagEmoji string `json:"flag_emoji,omitempty" yaml:"flag_emoji,omitempty"`
}

// PlanningEntityRef is a discipline entry nested in a skater record.
type PlanningEntityRef struct {
	ID           int64  `json:"id" yaml:"id"`
	Type         string `json:"type" yaml:"type"`
	Name         string `json:"name" yaml:"name"`
	CurrentLevel string `json:"current_level,omitempty" yaml:"current_level,omitempty"`
}

type Skater struct {
	ID               int64               `json:"id" yaml:"id"`
	FullName         string              `json:"full_name" yaml:"full_name"`
	DateOfBirth      string              `json:"date_of_birth" yaml:"date_of_birth"`
	Gender           string              `json:"gender,omitempty" yaml:"gender,omitempty"`
	HomeClub         string              `json:"home_club,omitempty" yaml:"home_club,omitempty"`
	IsActive         bool                `json:"is_active" yaml:"is_active"`
	Federation       *Federation         `json:"federation,omitempty" yaml:"federation,omitempty"`
	PlanningEntities []PlanningEntityRef `json:"planning_entities,omitempty" yaml:"planning_entities,omitempty"`
	UserAccountEmail string              `json:"user_account_email,omitempty" yaml:"user_account_email,omitempty"`
	AccessLevel      AccessLevel         `json:"access_level" yaml:"access_level"`
}

func (s *Skater) Entity() *Entity {
	return &Entity{ID: s.ID, Kind: KindSkater, Name: s.FullName, AccessLevel: s.AccessLevel}
}

// CreateSkaterRequest is the body of POST /skaters/create/.
type CreateSkaterRequest struct {
	FullName     string `json:"full_name" validate:"required,max=255"`
	DateOfBirth  string `json:"date_of_birth" validate:"required,isodate"`
	Discipline   string `json:"discipline" validate:"required,oneof=SINGLES SOLO_DANCE"`
	Level        string `json:"level,omitempty" validate:"omitempty,max=100"`
	FederationID *int64 `json:"federation_id,omitempty"`
	Gender       string `json:"gender,omitempty" validate:"omitempty,max=20"`
	HomeClub     string `json:"home_club,omitempty" validate:"omitempty,max=255"`
}

// SkaterUpdate is a partial update for PATCH /skaters/<id>/.
type SkaterUpdate struct {
	FullName     *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=255"`
	DateOfBirth  *string `json:"date_of_birth,omitempty" validate:"omitempty,isodate"`
	HomeClub     *string `json:"home_club,omitempty" validate:"omitempty,max=255"`
	FederationID *int64  `json:"federation_id,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// DuplicateSkater is the body of a 409 from POST /skaters/create/.
type DuplicateSkater struct {
	Error    string `json:"error"`
	SkaterID int64  `json:"skater_id"`
	Action   string `json:"action"`
}

type TeamDiscipline string

const (
	DisciplinePairs    TeamDiscipline = "PAIRS"
	DisciplineIceDance TeamDiscipline = "ICE_DANCE"
)

type Team struct {
	ID              int64          `json:"id" yaml:"id"`
	Name            string         `json:"name,omitempty" yaml:"name,omitempty"`
	TeamName        string         `json:"team_name" yaml:"team_name"`
	Discipline      TeamDiscipline `json:"discipline" yaml:"discipline"`
	CurrentLevel    string         `json:"current_level,omitempty" yaml:"current_level,omitempty"`
	Federation      *Federation    `json:"federation,omitempty" yaml:"federation,omitempty"`
	PartnerADetails *Skater        `json:"partner_a_details,omitempty" yaml:"partner_a,omitempty"`
	PartnerBDetails *Skater        `json:"partner_b_details,omitempty" yaml:"partner_b,omitempty"`
	AccessLevel     AccessLevel    `json:"access_level" yaml:"access_level"`
}

func (t *Team) Entity() *Entity {
	return &Entity{ID: t.ID, Kind: KindTeam, Name: t.TeamName, AccessLevel: t.AccessLevel}
}

// CreateTeamRequest is the body of POST /teams/create/.
type CreateTeamRequest struct {
	TeamName     string         `json:"team_name" validate:"required,max=255"`
	Discipline   TeamDiscipline `json:"discipline" validate:"required,oneof=PAIRS ICE_DANCE"`
	PartnerA     int64          `json:"partner_a" validate:"required,gt=0"`
	PartnerB     int64          `json:"partner_b" validate:"required,gt=0,nefield=PartnerA"`
	CurrentLevel string         `json:"current_level,omitempty" validate:"omitempty,max=100"`
	FederationID *int64         `json:"federation_id,omitempty"`
}

type SynchroTeam struct {
	ID          int64       `json:"id" yaml:"id"`
	TeamName    string      `json:"team_name" yaml:"team_name"`
	Level       string      `json:"level,omitempty" yaml:"level,omitempty"`
	Federation  *Federation `json:"federation,omitempty" yaml:"federation,omitempty"`
	Roster      []Skater    `json:"roster,omitempty" yaml:"roster,omitempty"`
	AccessLevel AccessLevel `json:"access_level" yaml:"access_level"`
}

func (s *SynchroTeam) Entity() *Entity {
	return &Entity{ID: s.ID, Kind: KindSynchro, Name: s.TeamName, AccessLevel: s.AccessLevel}
}

// SynchroTeamRequest is the body of POST /synchro/create/ and
// PATCH /synchro/<id>/.
type SynchroTeamRequest struct {
	TeamName     string  `json:"team_name" validate:"required,max=255"`
	Level        string  `json:"level,omitempty" validate:"omitempty,max=100"`
	FederationID *int64  `json:"federation_id,omitempty"`
	RosterIDs    []int64 `json:"roster_ids,omitempty" validate:"omitempty,dive,gt=0"`
}
