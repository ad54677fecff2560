package services

import (
	"context"
	"fmt"

	"skateplan/internal/core/domain"
	"skateplan/internal/core/ports"
	"skateplan/pkg/tracing"
)

// DefaultPermissions is the most restrictive permission set, returned when
// the user or the entity is unknown.
func DefaultPermissions() domain.PermissionSet {
	return domain.PermissionSet{
		Role:              domain.AccessNone,
		ReadOnlyStructure: true,
		ReadOnlyData:      true,
	}
}

// DeriveAccess computes what user may do with entity. It is pure and total:
// nil inputs yield DefaultPermissions.
func DeriveAccess(user *domain.User, entity *domain.Entity) domain.PermissionSet {
	if user == nil || entity == nil {
		return DefaultPermissions()
	}

	// An explicit empty access level is treated like a missing one and
	// falls through to the identity and global role checks.
	role := entity.AccessLevel
	isSkaterSelf := user.IsSkater(entity.ID)
	if role == "" && isSkaterSelf {
		role = domain.AccessSkaterOwner
	}
	if role == "" && (user.Role == domain.RoleCoach || user.IsSuperuser) {
		role = domain.AccessCoach
	}

	isOwner := role == domain.AccessCoach || role == domain.AccessOwner
	isCollaborator := role == domain.AccessCollaborator
	isManager := role == domain.AccessManager
	isObserver := role == domain.AccessViewer || role == domain.AccessObserver
	isGuardian := role == domain.AccessGuardian
	isSelf := role == domain.AccessSkaterOwner || isSkaterSelf

	isStaff := isOwner || isCollaborator || isManager
	isFamily := isGuardian || isSelf
	isTechViewer := isOwner || isCollaborator || isObserver || isFamily
	canEditCore := isOwner || isCollaborator

	return domain.PermissionSet{
		Role: role,

		IsOwner:        isOwner,
		IsCollaborator: isCollaborator,
		IsManager:      isManager,
		IsObserver:     isObserver,
		IsGuardian:     isGuardian,
		IsSelf:         isSelf,
		IsStaff:        isStaff,

		CanViewYearlyPlan:  isTechViewer && !isManager,
		CanViewGapAnalysis: isOwner || isCollaborator || isObserver,
		CanViewPerformance: isTechViewer && !isManager,
		CanViewLogistics:   true,
		CanViewHealth:      isTechViewer && !isManager,

		CanEditStructure: canEditCore,
		CanEditData:      canEditCore || isFamily,
		CanDelete:        isOwner,

		CanEditPlan:           canEditCore,
		CanCreateCompetitions: canEditCore,
		CanEditCompetitions:   canEditCore || isFamily,
		CanEditGoals:          canEditCore || isFamily,
		CanEditLogs:           canEditCore || isFamily,
		CanEditHealth:         canEditCore || isFamily,
		CanManageStaff:        isOwner,
		CanEditProfile:        isOwner,

		ReadOnlyStructure: !canEditCore,
		ReadOnlyData:      isObserver,
	}
}

// AccessMetrics counts served permission sets.
type AccessMetrics interface {
	RecordAccessLookup(kind domain.EntityKind, role domain.AccessLevel)
}

type accessService struct {
	entities ports.EntityFetcher
	metrics  AccessMetrics
}

func NewAccessService(entities ports.EntityFetcher, metrics AccessMetrics) ports.AccessService {
	return &accessService{
		entities: entities,
		metrics:  metrics,
	}
}

func (s *accessService) Derive(user *domain.User, entity *domain.Entity) domain.PermissionSet {
	return DeriveAccess(user, entity)
}

// Lookup fetches the entity with the caller's token and derives the
// caller's permissions on it.
func (s *accessService) Lookup(ctx context.Context, token string, user *domain.User, kind domain.EntityKind, id int64) (*domain.EntityAccess, error) {
	ctx, span := tracing.TraceAccessLookup(ctx, string(kind), id)
	defer span.End()

	record, err := s.entities.FetchEntity(ctx, token, kind, id)
	if err != nil {
		tracing.RecordError(ctx, err)
		return nil, fmt.Errorf("fetch %s %d: %w", kind, id, err)
	}
	entity := record.Entity()
	perms := DeriveAccess(user, entity)

	tracing.AddSpanAttributes(ctx, tracing.AccessRoleKey.String(string(perms.Role)))
	if s.metrics != nil {
		s.metrics.RecordAccessLookup(kind, perms.Role)
	}

	return &domain.EntityAccess{
		EntityID:    entity.ID,
		Kind:        entity.Kind,
		Name:        entity.Name,
		Permissions: perms,
	}, nil
}
