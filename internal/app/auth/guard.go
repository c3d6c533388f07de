package auth

import (
	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
)

// OwnerSettable is implemented by owner-bearing records whose owner
// field must be forced to the acting identity at creation.
type OwnerSettable interface {
	SetOwnerID(int64)
}

// Guard normalizes write payloads before persistence: it forces
// server-assigned ownership on owner-bearing creates and enforces
// cross-entity invariants. Callers must run its checks inside the same
// transaction as the write they protect.
type Guard struct{}

// NewGuard creates a new Guard.
func NewGuard() *Guard {
	return &Guard{}
}

// InjectOwner overwrites the record's owner field with the acting
// identity, discarding any client-supplied value. It is unconditional:
// even an admin creates owner-bearing records as itself. Runs only on
// create; update and delete paths never touch owner fields.
func (g *Guard) InjectOwner(actor Actor, record OwnerSettable) error {
	if !actor.Authenticated {
		return apperrors.ErrUnauthenticated
	}
	record.SetOwnerID(actor.UserID)
	return nil
}

// CheckQuizParent enforces the quiz parent-exclusivity invariant:
// exactly one of lesson, module or course must be set. Evaluated on
// every create and update, since an update can null one parent while
// leaving another unset.
func (g *Guard) CheckQuizParent(quiz *models.Quiz) error {
	if quiz.ParentCount() != 1 {
		return apperrors.NewInvariantError(
			"a quiz must be associated with exactly one of: lesson, module, or course")
	}
	return nil
}

// ResolveCapstoneGrade decides which grade value survives a capstone
// update: only admin-initiated updates may change it, student updates
// keep the stored value.
func (g *Guard) ResolveCapstoneGrade(actor Actor, current, requested *string) *string {
	if actor.IsAdmin() {
		return requested
	}
	return current
}
