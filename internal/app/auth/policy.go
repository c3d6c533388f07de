package auth

import (
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
)

// Resource identifies a resource type in the policy table.
type Resource string

const (
	ResourceCourse      Resource = "course"
	ResourceModule      Resource = "module"
	ResourceLesson      Resource = "lesson"
	ResourceContentItem Resource = "content_item"
	ResourceQuiz        Resource = "quiz"
	ResourceQuestion    Resource = "question"
	ResourceSubmission  Resource = "quiz_submission"
	ResourceAnswer      Resource = "answer"
	ResourcePayment     Resource = "payment"
	ResourceEnrollment  Resource = "enrollment"
	ResourceCapstone    Resource = "capstone_project"
	ResourceLiveSession Resource = "live_session"
)

// Action identifies the operation being attempted.
type Action string

const (
	ActionCreate   Action = "create"
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// Rule is the requirement a (resource, action) pair places on the actor.
type Rule int

const (
	// AllowAnyone permits the action for any actor, anonymous included.
	AllowAnyone Rule = iota
	// RequireAuthenticated permits any authenticated actor.
	RequireAuthenticated
	// RequireStudent permits only authenticated actors with the student role.
	RequireStudent
	// RequireAdmin permits only authenticated actors with the admin role.
	RequireAdmin
	// RequireOwnership permits authenticated actors at the type level and
	// defers the admin-or-owner decision to the instance check after the
	// record has been fetched.
	RequireOwnership
)

// Owned is implemented by resources whose instances carry an owner.
// Each ownable model exposes its owner through this single accessor,
// so the engine never probes for owner fields at runtime.
type Owned interface {
	OwnerID() int64
}

// Policy maps (resource, action) pairs to rules and evaluates them in
// one place. Type-level checks run before any instance is fetched;
// instance-level checks run against the loaded record.
type Policy struct {
	rules map[Resource]map[Action]Rule
}

// NewPolicy builds the policy table.
//
// Pairs absent from the table evaluate to allow. This fail-open default
// is preserved observed behavior: every mutating action below is listed
// explicitly, and integrators adding new actions must list them too or
// they will be permitted to anyone.
func NewPolicy() *Policy {
	adminAuthored := map[Action]Rule{
		ActionCreate:   RequireAdmin,
		ActionUpdate:   RequireAdmin,
		ActionDelete:   RequireAdmin,
		ActionList:     AllowAnyone,
		ActionRetrieve: AllowAnyone,
	}
	studentOwned := map[Action]Rule{
		ActionCreate:   RequireStudent,
		ActionList:     RequireAuthenticated,
		ActionRetrieve: RequireOwnership,
		ActionUpdate:   RequireOwnership,
		ActionDelete:   RequireOwnership,
	}

	return &Policy{
		rules: map[Resource]map[Action]Rule{
			ResourceCourse:      adminAuthored,
			ResourceModule:      adminAuthored,
			ResourceLesson:      adminAuthored,
			ResourceContentItem: adminAuthored,
			ResourceQuestion:    adminAuthored,
			ResourceLiveSession: adminAuthored,
			ResourceQuiz:        studentOwned,
			ResourceSubmission:  studentOwned,
			ResourceAnswer:      studentOwned,
			ResourcePayment:     studentOwned,
			ResourceEnrollment:  studentOwned,
			ResourceCapstone:    studentOwned,
		},
	}
}

// Authorize performs the type-level (pre-fetch) check for an action on a
// resource type. It returns ErrUnauthenticated when the rule needs an
// identity and none is present, ErrPermissionDenied when the identity's
// role does not satisfy the rule, and nil on allow.
func (p *Policy) Authorize(actor Actor, resource Resource, action Action) error {
	actions, ok := p.rules[resource]
	if !ok {
		return nil // fail-open default
	}
	rule, ok := actions[action]
	if !ok {
		return nil // fail-open default
	}

	switch rule {
	case AllowAnyone:
		return nil
	case RequireAuthenticated, RequireOwnership:
		if !actor.Authenticated {
			return apperrors.ErrUnauthenticated
		}
		return nil
	case RequireStudent:
		if !actor.Authenticated {
			return apperrors.ErrUnauthenticated
		}
		if actor.Role != RoleStudent {
			return apperrors.ErrPermissionDenied
		}
		return nil
	case RequireAdmin:
		if !actor.Authenticated {
			return apperrors.ErrUnauthenticated
		}
		if actor.Role != RoleAdmin {
			return apperrors.ErrPermissionDenied
		}
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// AuthorizeInstance performs the instance-level (post-fetch) check:
// admin always passes, otherwise the actor must be the record's owner.
// A nil owned means the resource type carries no owner field at all, in
// which case only admin passes. Denials here map to a forbidden outcome,
// not not-found; record existence is not hidden from non-owners.
func (p *Policy) AuthorizeInstance(actor Actor, owned Owned) error {
	if !actor.Authenticated {
		return apperrors.ErrUnauthenticated
	}
	if actor.Role == RoleAdmin {
		return nil
	}
	if owned != nil && owned.OwnerID() == actor.UserID {
		return nil
	}
	return apperrors.ErrPermissionDenied
}
