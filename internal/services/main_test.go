package services

import (
	"path/filepath"
	"testing"
	"time"

	"gastropass_backend/internal/models"
	"gastropass_backend/internal/repositories"
	"gastropass_backend/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return st
}

func seedUser(t *testing.T, userRepo repositories.UserRepository, name, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	require.NoError(t, userRepo.Create(user))
	return user
}

func seedPlans(t *testing.T, planRepo repositories.PlanRepository) {
	t.Helper()
	_, err := planRepo.SeedDefaults()
	require.NoError(t, err)
}
