package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AccessLevel is the relationship between the acting user and one entity.
// The empty value means "not determined" and is encoded as JSON null.
type AccessLevel string

const (
	AccessNone         AccessLevel = "NONE"
	AccessOwner        AccessLevel = "OWNER"
	AccessCoach        AccessLevel = "COACH"
	AccessCollaborator AccessLevel = "COLLABORATOR"
	AccessManager      AccessLevel = "MANAGER"
	AccessViewer       AccessLevel = "VIEWER"
	AccessObserver     AccessLevel = "OBSERVER"
	AccessGuardian     AccessLevel = "GUARDIAN"
	AccessSkaterOwner  AccessLevel = "SKATER_OWNER"
)

func (a AccessLevel) MarshalJSON() ([]byte, error) {
	if a == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

func (a *AccessLevel) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("access_level: %w", err)
	}
	*a = AccessLevel(s)
	return nil
}

// EntityKind is the URL segment the backend uses for a planning entity.
type EntityKind string

const (
	KindSkater  EntityKind = "skaters"
	KindTeam    EntityKind = "teams"
	KindSynchro EntityKind = "synchro"
)

// ParseEntityKind accepts the URL segment or its singular form.
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skaters", "skater":
		return KindSkater, nil
	case "teams", "team":
		return KindTeam, nil
	case "synchro", "synchro-team", "synchro_team":
		return KindSynchro, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEntity, s)
}

// Entity is the part of a skater, team or synchro team that access
// derivation looks at.
type Entity struct {
	ID          int64       `json:"id"`
	Kind        EntityKind  `json:"kind,omitempty"`
	Name        string      `json:"name,omitempty"`
	AccessLevel AccessLevel `json:"access_level"`
}

// PermissionSet is the capability set derived for one (user, entity) pair.
type PermissionSet struct {
	Role AccessLevel `json:"role" yaml:"role"`

	IsOwner        bool `json:"isOwner" yaml:"is_owner"`
	IsCollaborator bool `json:"isCollaborator" yaml:"is_collaborator"`
	IsManager      bool `json:"isManager" yaml:"is_manager"`
	IsObserver     bool `json:"isObserver" yaml:"is_observer"`
	IsGuardian     bool `json:"isGuardian" yaml:"is_guardian"`
	IsSelf         bool `json:"isSelf" yaml:"is_self"`
	IsStaff        bool `json:"isStaff" yaml:"is_staff"`

	CanViewYearlyPlan  bool `json:"canViewYearlyPlan" yaml:"can_view_yearly_plan"`
	CanViewGapAnalysis bool `json:"canViewGapAnalysis" yaml:"can_view_gap_analysis"`
	CanViewPerformance bool `json:"canViewPerformance" yaml:"can_view_performance"`
	CanViewLogistics   bool `json:"canViewLogistics" yaml:"can_view_logistics"`
	CanViewHealth      bool `json:"canViewHealth" yaml:"can_view_health"`

	CanEditStructure bool `json:"canEditStructure" yaml:"can_edit_structure"`
	CanEditData      bool `json:"canEditData" yaml:"can_edit_data"`
	CanDelete        bool `json:"canDelete" yaml:"can_delete"`

	CanEditPlan           bool `json:"canEditPlan" yaml:"can_edit_plan"`
	CanCreateCompetitions bool `json:"canCreateCompetitions" yaml:"can_create_competitions"`
	CanEditCompetitions   bool `json:"canEditCompetitions" yaml:"can_edit_competitions"`
	CanEditGoals          bool `json:"canEditGoals" yaml:"can_edit_goals"`
	CanEditLogs           bool `json:"canEditLogs" yaml:"can_edit_logs"`
	CanEditHealth         bool `json:"canEditHealth" yaml:"can_edit_health"`
	CanManageStaff        bool `json:"canManageStaff" yaml:"can_manage_staff"`
	CanEditProfile        bool `json:"canEditProfile" yaml:"can_edit_profile"`

	ReadOnlyStructure bool `json:"readOnlyStructure" yaml:"read_only_structure"`
	ReadOnlyData      bool `json:"readOnlyData" yaml:"read_only_data"`
}

// Entitled is implemented by every backend record that can be evaluated
// for access.
type Entitled interface {
	Entity() *Entity
}

// EntityAccess pairs an entity with the permissions derived for it.
type EntityAccess struct {
	EntityID    int64         `json:"entity_id" yaml:"entity_id"`
	Kind        EntityKind    `json:"kind" yaml:"kind"`
	Name        string        `json:"name,omitempty" yaml:"name,omitempty"`
	Permissions PermissionSet `json:"permissions" yaml:"permissions"`
}
