package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/services/dto"
)

func TestResumeCreateAndGet(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	svc := services.NewResumeService(repo)

	created, err := svc.Create(context.Background(), "user-1", &dto.CreateResumeRequest{
		Title: "Backend Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", created.Title)
	assert.Equal(t, "user-1", created.UserID)

	fetched, err := svc.Get(context.Background(), "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestResumeGet_OtherUsersResumeLooksMissing(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	svc := services.NewResumeService(repo)

	created, err := svc.Create(context.Background(), "owner", &dto.CreateResumeRequest{Title: "Mine"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "intruder", created.ID)
	assert.Equal(t, repositories.ErrResumeNotFound, err)
}

func TestResumeUpdate_PartialFields(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	svc := services.NewResumeService(repo)

	created, err := svc.Create(context.Background(), "user-1", &dto.CreateResumeRequest{Title: "Draft"})
	require.NoError(t, err)

	newTitle := "Final"
	updated, err := svc.Update(context.Background(), "user-1", created.ID, &dto.UpdateResumeRequest{
		Title: &newTitle,
		Skills: []models.Skill{
			{Name: "Go", Progress: 90},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Final", updated.Title)
	require.Len(t, updated.Skills, 1)
	assert.Equal(t, "Go", updated.Skills[0].Name)

	// Fields not present in the request keep their values.
	assert.Equal(t, created.ThumbnailLink, updated.ThumbnailLink)
}

func TestResumeDelete(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	svc := services.NewResumeService(repo)

	created, err := svc.Create(context.Background(), "user-1", &dto.CreateResumeRequest{Title: "Gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "user-1", created.ID))

	_, err = svc.Get(context.Background(), "user-1", created.ID)
	assert.Equal(t, repositories.ErrResumeNotFound, err)

	// Deleting again reports not found.
	err = svc.Delete(context.Background(), "user-1", created.ID)
	assert.Equal(t, repositories.ErrResumeNotFound, err)
}

func TestResumeList(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	svc := services.NewResumeService(repo)

	_, err := svc.Create(context.Background(), "user-1", &dto.CreateResumeRequest{Title: "One"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "user-1", &dto.CreateResumeRequest{Title: "Two"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "user-2", &dto.CreateResumeRequest{Title: "Other"})
	require.NoError(t, err)

	list, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
