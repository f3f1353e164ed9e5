package services

import (
	"testing"

	"shophub_backend/internal/repositories"
	"shophub_backend/internal/services/dto"
	"shophub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() UserService {
	return NewUserService(repositories.NewUserRepository())
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService()

	user := createTestUser(t, db, "user@test.com")

	profile, err := svc.GetProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, "user@test.com", profile.Email)
	assert.Equal(t, "Test User", profile.FullName)

	_, err = svc.GetProfile(db, "missing")
	require.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService()

	user := createTestUser(t, db, "user@test.com")

	newName := "Renamed User"
	newMobile := "+77009876543"
	require.NoError(t, svc.UpdateProfile(db, user.ID, &dto.UpdateProfileRequest{
		FullName: &newName,
		Mobile:   &newMobile,
	}))

	profile, err := svc.GetProfile(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", profile.FullName)
	assert.Equal(t, "+77009876543", profile.Mobile)
	assert.Equal(t, "user@test.com", profile.Email, "email untouched")
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService()

	createTestUser(t, db, "taken@test.com")
	user := createTestUser(t, db, "user@test.com")

	taken := "taken@test.com"
	err := svc.UpdateProfile(db, user.ID, &dto.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUpdateProfile_NoFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService()

	user := createTestUser(t, db, "user@test.com")

	err := svc.UpdateProfile(db, user.ID, &dto.UpdateProfileRequest{})
	require.Error(t, err)
}
