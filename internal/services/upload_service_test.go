package services_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/pkg/apperrors"
)

func fileHeader(t *testing.T, field, filename, contentType string, size int) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(size) + 1024)
	require.NoError(t, err)
	return form.File[field][0]
}

func uploadFixture(t *testing.T) (services.UploadService, *fakeUserRepo, *fakeResumeRepo, *fakeStorage) {
	t.Helper()

	userRepo := newFakeUserRepo()
	resumeRepo := newFakeResumeRepo()
	store := newFakeStorage()
	svc := services.NewUploadService(userRepo, resumeRepo, store, services.UploadConfig{
		MaxSize:      1 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png"},
	})
	return svc, userRepo, resumeRepo, store
}

func TestUploadProfileImage_Success(t *testing.T) {
	t.Parallel()

	svc, userRepo, _, store := uploadFixture(t)

	user := &models.User{Name: "Jamie", Email: "jamie@example.com"}
	require.NoError(t, userRepo.Create(user))

	file := fileHeader(t, "image", "avatar.jpg", "image/jpeg", 512)

	resp, err := svc.UploadProfileImage(context.Background(), user.ID, file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.ImageURL, "/uploads/profile/"))
	assert.Len(t, store.saved, 1)

	stored, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ImageURL, stored.ProfileImageURL)
}

func TestUploadProfileImage_TooLarge(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	svc := services.NewUploadService(userRepo, newFakeResumeRepo(), newFakeStorage(), services.UploadConfig{
		MaxSize:      100,
		AllowedTypes: []string{"image/jpeg"},
	})

	user := &models.User{Name: "Jamie", Email: "jamie@example.com"}
	require.NoError(t, userRepo.Create(user))

	file := fileHeader(t, "image", "avatar.jpg", "image/jpeg", 512)

	_, err := svc.UploadProfileImage(context.Background(), user.ID, file)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestUploadProfileImage_DisallowedType(t *testing.T) {
	t.Parallel()

	svc, userRepo, _, _ := uploadFixture(t)

	user := &models.User{Name: "Jamie", Email: "jamie@example.com"}
	require.NoError(t, userRepo.Create(user))

	file := fileHeader(t, "image", "avatar.gif", "image/gif", 128)

	_, err := svc.UploadProfileImage(context.Background(), user.ID, file)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestUploadResumeImages_UpdatesLinks(t *testing.T) {
	t.Parallel()

	svc, _, resumeRepo, _ := uploadFixture(t)

	resume := &models.Resume{UserID: "user-1", Title: "My Resume"}
	require.NoError(t, resumeRepo.Create(resume))

	thumbnail := fileHeader(t, "thumbnail", "thumb.png", "image/png", 256)
	profileImage := fileHeader(t, "profileImage", "me.jpg", "image/jpeg", 256)

	updated, err := svc.UploadResumeImages(context.Background(), "user-1", resume.ID, thumbnail, profileImage)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.ThumbnailLink, "/uploads/thumbnails/"))
	assert.True(t, strings.HasPrefix(updated.ProfileInfo.ProfilePreviewURL, "/uploads/profile/"))

	stored, err := resumeRepo.FindByUserIDAndID("user-1", resume.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.ThumbnailLink, stored.ThumbnailLink)
}

func TestUploadResumeImages_OtherUsersResume(t *testing.T) {
	t.Parallel()

	svc, _, resumeRepo, _ := uploadFixture(t)

	resume := &models.Resume{UserID: "user-1", Title: "My Resume"}
	require.NoError(t, resumeRepo.Create(resume))

	thumbnail := fileHeader(t, "thumbnail", "thumb.png", "image/png", 256)

	_, err := svc.UploadResumeImages(context.Background(), "someone-else", resume.ID, thumbnail, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrResumeNotFound)

	var appErr *apperrors.AppError
	assert.False(t, apperrors.As(err, &appErr))
}
