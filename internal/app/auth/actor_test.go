package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/osmandemir/learnsphere/internal/app/models"
)

func TestNewActor(t *testing.T) {
	tests := []struct {
		name     string
		role     models.RoleType
		wantRole Role
	}{
		{"admin role", models.RoleAdmin, RoleAdmin},
		{"student role", models.RoleStudent, RoleStudent},
		{"unknown role defaults to student", models.RoleType("superuser"), RoleStudent},
		{"empty role defaults to student", models.RoleType(""), RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := NewActor(7, tt.role)
			assert.True(t, actor.Authenticated)
			assert.Equal(t, tt.wantRole, actor.Role)
			assert.Equal(t, int64(7), actor.UserID)
		})
	}
}

func TestActorRoleChecks(t *testing.T) {
	assert.True(t, NewActor(1, models.RoleAdmin).IsAdmin())
	assert.False(t, NewActor(1, models.RoleAdmin).IsStudent())
	assert.True(t, NewActor(2, models.RoleStudent).IsStudent())
	assert.False(t, NewActor(2, models.RoleStudent).IsAdmin())

	anon := Anonymous()
	assert.False(t, anon.Authenticated)
	assert.False(t, anon.IsAdmin())
	assert.False(t, anon.IsStudent())
}

func TestActorFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		return c
	}

	t.Run("resolves stored identity", func(t *testing.T) {
		c := newCtx()
		c.Set(ContextUserID, int64(5))
		c.Set(ContextRole, "admin")

		actor := ActorFromContext(c)
		assert.True(t, actor.Authenticated)
		assert.Equal(t, RoleAdmin, actor.Role)
		assert.Equal(t, int64(5), actor.UserID)
	})

	t.Run("missing identity resolves to anonymous", func(t *testing.T) {
		actor := ActorFromContext(newCtx())
		assert.Equal(t, Anonymous(), actor)
	})

	t.Run("user id without role resolves to anonymous", func(t *testing.T) {
		c := newCtx()
		c.Set(ContextUserID, int64(5))
		actor := ActorFromContext(c)
		assert.Equal(t, Anonymous(), actor)
	})

	t.Run("wrong user id type resolves to anonymous", func(t *testing.T) {
		c := newCtx()
		c.Set(ContextUserID, "5")
		c.Set(ContextRole, "admin")
		actor := ActorFromContext(c)
		assert.Equal(t, Anonymous(), actor)
	})
}
