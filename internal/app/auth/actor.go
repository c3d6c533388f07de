package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/models"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextEmail  = "email"
)

// Role is the closed set of roles the policy engine dispatches on.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleStudent   Role = "student"
	RoleAnonymous Role = "anonymous"
)

// Actor is the resolved identity of the caller for a single request:
// whether it is authenticated, which role it carries, and its user key.
// Role resolution is read-only here; role assignment is an external
// admin concern.
type Actor struct {
	Authenticated bool
	Role          Role
	UserID        int64
}

// Anonymous returns the actor for an unauthenticated request.
func Anonymous() Actor {
	return Actor{Role: RoleAnonymous}
}

// NewActor builds an authenticated actor from a stored role value.
// Unknown role strings resolve to student, the least-privileged
// authenticated role.
func NewActor(userID int64, role models.RoleType) Actor {
	r := RoleStudent
	if role == models.RoleAdmin {
		r = RoleAdmin
	}
	return Actor{
		Authenticated: true,
		Role:          r,
		UserID:        userID,
	}
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Authenticated && a.Role == RoleAdmin
}

// IsStudent reports whether the actor carries the student role.
func (a Actor) IsStudent() bool {
	return a.Authenticated && a.Role == RoleStudent
}

// ActorFromContext resolves the actor for the current request from the
// values the auth middleware stored. Requests that never passed through
// the middleware, or passed through the optional variant without a
// token, resolve to the anonymous actor.
func ActorFromContext(c *gin.Context) Actor {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return Anonymous()
	}
	id, ok := userID.(int64)
	if !ok {
		return Anonymous()
	}

	role, ok := c.Get(ContextRole)
	if !ok {
		return Anonymous()
	}
	roleStr, ok := role.(string)
	if !ok {
		return Anonymous()
	}

	return NewActor(id, models.RoleType(roleStr))
}
