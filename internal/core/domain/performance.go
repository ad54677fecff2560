package domain

type ProgramAsset struct {
	ID        int64  `json:"id" yaml:"id"`
	File      string `json:"file" yaml:"file"`
	AssetType string `json:"asset_type" yaml:"asset_type"`
}

type Program struct {
	ID              int64          `json:"id,omitempty" yaml:"id,omitempty"`
	Title           string         `json:"title" yaml:"title" validate:"required,max=255"`
	Season          string         `json:"season" yaml:"season" validate:"required,max=50"`
	ProgramCategory string         `json:"program_category,omitempty" yaml:"program_category,omitempty"`
	MusicTitle      string         `json:"music_title,omitempty" yaml:"music_title,omitempty"`
	Choreographer   string         `json:"choreographer,omitempty" yaml:"choreographer,omitempty"`
	IsActive        bool           `json:"is_active" yaml:"is_active"`
	EstBaseValue    string         `json:"est_base_value,omitempty" yaml:"est_base_value,omitempty"`
	MusicFile       *string        `json:"music_file,omitempty" yaml:"music_file,omitempty"`
	Assets          []ProgramAsset `json:"assets,omitempty" yaml:"assets,omitempty"`
}

type Competition struct {
	ID            int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Title         string `json:"title" yaml:"title" validate:"required,max=255"`
	LocationName  string `json:"location_name,omitempty" yaml:"location_name,omitempty"`
	City          string `json:"city" yaml:"city" validate:"required,max=100"`
	ProvinceState string `json:"province_state" yaml:"province_state" validate:"required,max=100"`
	Country       string `json:"country,omitempty" yaml:"country,omitempty" validate:"omitempty,max=100"`
	StartDate     string `json:"start_date" yaml:"start_date" validate:"required,isodate"`
	EndDate       string `json:"end_date" yaml:"end_date" validate:"required,isodate"`
}

// Invitation is the body of POST /invitations/send/.
type Invitation struct {
	Email      string      `json:"email" validate:"required,email"`
	Role       AccessLevel `json:"role" validate:"required,oneof=COACH SKATER GUARDIAN OBSERVER COLLABORATOR MANAGER VIEWER"`
	EntityType string      `json:"entity_type" validate:"required,oneof=Skater Team SynchroTeam"`
	EntityID   int64       `json:"entity_id" validate:"required,gt=0"`
}
