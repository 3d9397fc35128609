package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusvoice/feedback-service/internal/models"
	"github.com/campusvoice/feedback-service/internal/store"
)

func TestEnsureDefaultsSeedsFreshStore(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, EnsureDefaults(ctx, st, testLogger()))

	users := []models.User{}
	found, err := st.Read(ctx, models.StorageKeyUsers, &users)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@college.edu", users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)

	courses := []models.Course{}
	found, err = st.Read(ctx, models.StorageKeyCourses, &courses)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, courses, 6)

	faculties := []models.Faculty{}
	found, err = st.Read(ctx, models.StorageKeyFaculties, &faculties)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, faculties, 5)

	// Feedback stays unseeded until InitializeSampleData runs.
	feedback := []models.Feedback{}
	found, err = st.Read(ctx, models.StorageKeyFeedback, &feedback)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEnsureDefaultsLeavesExistingDataAlone(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	custom := []models.Course{{ID: 99, Name: "Custom Course"}}
	require.NoError(t, st.Write(ctx, models.StorageKeyCourses, custom))

	require.NoError(t, EnsureDefaults(ctx, st, testLogger()))

	courses := []models.Course{}
	_, err := st.Read(ctx, models.StorageKeyCourses, &courses)
	require.NoError(t, err)
	assert.Equal(t, custom, courses)
}
