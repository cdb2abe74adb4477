package database_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/database"
	"github.com/ksalau/learnflow-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addResume(t *testing.T, repo *database.ResumeRepo, name string) *models.Resume {
	t.Helper()

	resume := models.NewResume(models.InsertResume{
		Filename:     name + ".pdf",
		OriginalName: name + " original.pdf",
		FileURL:      "/uploads/resumes/" + name + ".pdf",
	})
	require.NoError(t, repo.Add(resume))
	return resume
}

func TestResumeRepo_FindActiveNone(t *testing.T) {
	repo := newTestDatabase(t).ResumeRepo()
	addResume(t, repo, "first")

	active, err := repo.FindActive()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestResumeRepo_SetActiveSwitches(t *testing.T) {
	repo := newTestDatabase(t).ResumeRepo()
	first := addResume(t, repo, "first")
	second := addResume(t, repo, "second")

	activated, err := repo.SetActive(first.ID)
	require.NoError(t, err)
	require.NotNil(t, activated)
	assert.True(t, activated.IsActive)

	// activating the second deactivates the first in the same transaction
	activated, err = repo.SetActive(second.ID)
	require.NoError(t, err)
	require.NotNil(t, activated)
	assert.Equal(t, second.ID, activated.ID)

	active, err := repo.FindActive()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	all, err := repo.FindAll()
	require.NoError(t, err)
	activeCount := 0
	for _, r := range all {
		if r.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestResumeRepo_SetActiveMissingLeavesStateUntouched(t *testing.T) {
	repo := newTestDatabase(t).ResumeRepo()
	first := addResume(t, repo, "first")

	_, err := repo.SetActive(first.ID)
	require.NoError(t, err)

	activated, err := repo.SetActive(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, activated)

	// the previously active resume keeps its flag after the rollback
	active, err := repo.FindActive()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, first.ID, active.ID)
}

func TestResumeRepo_SetActiveConcurrent(t *testing.T) {
	repo := newTestDatabase(t).ResumeRepo()

	resumes := make([]*models.Resume, 5)
	for i := range resumes {
		resumes[i] = addResume(t, repo, fmt.Sprintf("resume-%d", i))
	}

	var wg sync.WaitGroup
	for _, r := range resumes {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := repo.SetActive(id)
			assert.NoError(t, err)
		}(r.ID)
	}
	wg.Wait()

	// whichever activation won, exactly one resume ends up active
	all, err := repo.FindAll()
	require.NoError(t, err)
	activeCount := 0
	for _, r := range all {
		if r.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestResumeRepo_FindAllNewestFirst(t *testing.T) {
	repo := newTestDatabase(t).ResumeRepo()
	first := addResume(t, repo, "first")
	second := addResume(t, repo, "second")
	second.UploadedAt = first.UploadedAt.Add(1)
	require.NoError(t, repo.Update(second))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
}

func TestResumeRepo_Delete(t *testing.T) {
	repo := newTestDatabase(t).ResumeRepo()
	resume := addResume(t, repo, "gone")

	deleted, err := repo.Delete(resume.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(resume.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
