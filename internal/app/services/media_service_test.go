package services

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/filestorage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
const pngPixelBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type mediaFixture struct {
	svc      *MediaService
	media    *fakeMediaRepo
	profiles *fakeProfileRepo
	root     string
	admin    Actor
	editor   Actor
}

func newMediaFixture(t *testing.T) *mediaFixture {
	t.Helper()
	root := t.TempDir()
	storage, err := filestorage.NewLocalStorage(root, "http://localhost:8080/uploads")
	require.NoError(t, err)

	media := newFakeMediaRepo()
	profiles := newFakeProfileRepo()
	profileSvc := NewProfileService(profiles, storage, 5*megabyte)
	return &mediaFixture{
		svc:      NewMediaService(media, storage, profileSvc, 10*megabyte),
		media:    media,
		profiles: profiles,
		root:     root,
		admin:    Actor{UserID: uuid.New(), Role: models.RoleAdmin},
		editor:   Actor{UserID: uuid.New(), Role: models.RoleEditor},
	}
}

func (f *mediaFixture) exists(storagePath string) bool {
	_, err := os.Stat(filepath.Join(f.root, filepath.FromSlash(storagePath)))
	return err == nil
}

func uploadRequest(key string) *dto.StorageMediaRequest {
	return &dto.StorageMediaRequest{
		Action:    dto.ActionUploadFile,
		FileData:  pngPixelBase64,
		FileName:  "logo.png",
		MimeType:  "image/png",
		AssetKey:  key,
		AssetName: "Navbar logo",
		AltText:   "Big Binary logo",
	}
}

func TestMediaService_UploadFile(t *testing.T) {
	f := newMediaFixture(t)
	ctx := context.Background()

	out, err := f.svc.Dispatch(ctx, f.admin, uploadRequest("navbar_logo"))
	require.NoError(t, err)
	res := out.(*dto.UploadMediaResult)

	assert.True(t, strings.HasPrefix(res.URL, "http://localhost:8080/uploads/media/general/"))
	assert.True(t, strings.HasSuffix(res.URL, ".png"))
	assert.Equal(t, "image/png", res.Asset.MimeType)
	assert.Equal(t, models.DefaultMediaSection, res.Asset.Section)
	assert.Equal(t, "Navbar logo", res.Asset.AssetName)
	assert.True(t, f.exists(res.Asset.StoragePath))
}

func TestMediaService_UploadReplacesPreviousFile(t *testing.T) {
	f := newMediaFixture(t)
	ctx := context.Background()

	first, err := f.svc.UploadFile(ctx, uploadRequest("hero_banner"))
	require.NoError(t, err)

	req := uploadRequest("hero_banner")
	req.AltText = ""
	req.Section = "courses"
	second, err := f.svc.UploadFile(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Asset.StoragePath, second.Asset.StoragePath)
	assert.False(t, f.exists(first.Asset.StoragePath))
	assert.True(t, f.exists(second.Asset.StoragePath))
	assert.Equal(t, "Big Binary logo", second.Asset.AltText)
	assert.Equal(t, "courses", second.Asset.Section)
	assert.Len(t, f.media.items, 1)
}

func TestMediaService_UploadRejections(t *testing.T) {
	f := newMediaFixture(t)
	ctx := context.Background()

	notImage := uploadRequest("doc")
	notImage.FileData = base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 not an image"))
	notImage.MimeType = "application/pdf"
	_, err := f.svc.UploadFile(ctx, notImage)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedMediaType)
	assert.Equal(t, "Only image files are allowed", apperrors.Message(err, ""))

	small := NewMediaService(f.media, nil, nil, 10)
	_, err = small.UploadFile(ctx, uploadRequest("big"))
	assert.ErrorIs(t, err, apperrors.ErrPayloadTooLarge)

	noKey := uploadRequest("")
	_, err = f.svc.UploadFile(ctx, noKey)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	garbage := uploadRequest("garbage")
	garbage.FileData = "***"
	_, err = f.svc.UploadFile(ctx, garbage)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Empty(t, f.media.items)
}

func TestMediaService_UploadRemovesFileWhenRowFails(t *testing.T) {
	f := newMediaFixture(t)
	f.media.upsertErr = errBackend

	_, err := f.svc.UploadFile(context.Background(), uploadRequest("navbar_logo"))
	require.ErrorIs(t, err, errBackend)

	entries, err := os.ReadDir(filepath.Join(f.root, "media", "general"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMediaService_DeleteFile(t *testing.T) {
	f := newMediaFixture(t)
	ctx := context.Background()

	byKey, err := f.svc.UploadFile(ctx, uploadRequest("footer_logo"))
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, f.admin, &dto.StorageMediaRequest{Action: dto.ActionDeleteFile, AssetKey: "footer_logo"})
	require.NoError(t, err)
	assert.False(t, f.exists(byKey.Asset.StoragePath))
	assert.NotContains(t, f.media.items, "footer_logo")

	byPath, err := f.svc.UploadFile(ctx, uploadRequest("about_image"))
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteFile(ctx, "", byPath.Asset.StoragePath))
	assert.False(t, f.exists(byPath.Asset.StoragePath))
	assert.Empty(t, f.media.items)

	assert.ErrorIs(t, f.svc.DeleteFile(ctx, "missing", ""), apperrors.ErrMediaAssetNotFound)
	assert.ErrorIs(t, f.svc.DeleteFile(ctx, "", ""), apperrors.ErrValidationFailed)
}

func TestMediaService_DeleteFileStaysInMediaLibrary(t *testing.T) {
	f := newMediaFixture(t)
	ctx := context.Background()

	out, err := f.svc.Dispatch(ctx, f.admin, &dto.StorageMediaRequest{
		Action:   dto.ActionUploadAvatar,
		FileData: pngPixelBase64,
		MimeType: "image/png",
	})
	require.NoError(t, err)
	avatarURL := out.(*dto.AvatarResult).URL
	p, err := f.profiles.GetOrCreate(ctx, f.admin.UserID)
	require.NoError(t, err)
	avatarPath := p.AvatarPath
	require.True(t, f.exists(avatarPath))

	for _, target := range []string{
		avatarPath,
		"media/../" + avatarPath,
		"/" + avatarPath,
	} {
		_, err = f.svc.Dispatch(ctx, f.editor, &dto.StorageMediaRequest{Action: dto.ActionDeleteFile, StoragePath: target})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, target)
	}
	assert.True(t, f.exists(avatarPath))
	p, err = f.profiles.GetOrCreate(ctx, f.admin.UserID)
	require.NoError(t, err)
	assert.Equal(t, avatarURL, p.AvatarURL)

	hero, err := f.svc.UploadFile(ctx, uploadRequest("hero_banner"))
	require.NoError(t, err)
	_, err = f.svc.Dispatch(ctx, f.editor, &dto.StorageMediaRequest{Action: dto.ActionDeleteFile, StoragePath: "/" + hero.Asset.StoragePath})
	require.NoError(t, err)
	assert.False(t, f.exists(hero.Asset.StoragePath))
	assert.NotContains(t, f.media.items, "hero_banner")
}

func TestMediaService_UpdateAndList(t *testing.T) {
	f := newMediaFixture(t)
	ctx := context.Background()

	_, err := f.svc.UploadFile(ctx, uploadRequest("navbar_logo"))
	require.NoError(t, err)
	spec := uploadRequest("specialization_data-science")
	spec.Section = "specializations"
	spec.AssetName = "Data Science cover"
	_, err = f.svc.UploadFile(ctx, spec)
	require.NoError(t, err)

	out, err := f.svc.Dispatch(ctx, f.editor, &dto.StorageMediaRequest{
		Action:      dto.ActionUpdateMediaAsset,
		AssetKey:    "navbar_logo",
		Description: "Shown in the header",
	})
	require.NoError(t, err)
	updated := out.(*models.MediaAsset)
	assert.Equal(t, "Shown in the header", updated.Description)
	assert.Equal(t, "Navbar logo", updated.AssetName)

	out, err = f.svc.Dispatch(ctx, f.editor, &dto.StorageMediaRequest{Action: dto.ActionGetMediaAssets, Section: "specializations"})
	require.NoError(t, err)
	list := out.(*dto.MediaAssetsResult)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "specialization_data-science", list.Data[0].AssetKey)

	page, err := f.svc.Search(ctx, "", "LOGO", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Assets, 1)
	assert.Equal(t, int64(1), page.Pagination.TotalItems)

	page, err = f.svc.Search(ctx, "", "in the HEADER", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Assets, 1)
	assert.Equal(t, "navbar_logo", page.Assets[0].AssetKey)

	_, err = f.svc.Dispatch(ctx, f.editor, &dto.StorageMediaRequest{Action: dto.ActionUpdateMediaAsset, AssetKey: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrMediaAssetNotFound)
}

func TestMediaService_Resolve(t *testing.T) {
	f := newMediaFixture(t)
	ctx := context.Background()
	f.media.items["hero_banner"] = &models.MediaAsset{AssetKey: "hero_banner", AssetURL: "http://x/hero.png", AltText: "Hero", IsActive: true}
	f.media.items["old_banner"] = &models.MediaAsset{AssetKey: "old_banner", AssetURL: "http://x/old.png"}

	got, err := f.svc.Resolve(ctx, "hero_banner", "/fallback.png")
	require.NoError(t, err)
	assert.True(t, got.Found)
	assert.Equal(t, "http://x/hero.png", got.URL)

	got, err = f.svc.Resolve(ctx, "old_banner", "/fallback.png")
	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.Equal(t, "/fallback.png", got.URL)

	_, err = f.svc.Resolve(ctx, "missing", "")
	assert.ErrorIs(t, err, apperrors.ErrMediaAssetNotFound)

	public, err := f.svc.ListPublic(ctx, "")
	require.NoError(t, err)
	assert.Len(t, public, 1)
}

func TestMediaService_Avatars(t *testing.T) {
	f := newMediaFixture(t)
	ctx := context.Background()

	out, err := f.svc.Dispatch(ctx, f.editor, &dto.StorageMediaRequest{
		Action:   dto.ActionUploadAvatar,
		FileData: pngPixelBase64,
		MimeType: "image/png",
	})
	require.NoError(t, err)
	first := out.(*dto.AvatarResult)
	assert.Contains(t, first.URL, "/uploads/avatars/"+f.editor.UserID.String()+"/")
	firstPath := f.profiles.items[f.editor.UserID].AvatarPath
	assert.True(t, f.exists(firstPath))

	_, err = f.svc.Dispatch(ctx, f.editor, &dto.StorageMediaRequest{
		Action:   dto.ActionUploadAvatar,
		FileData: pngPixelBase64,
		UserID:   f.editor.UserID.String(),
	})
	require.NoError(t, err)
	assert.False(t, f.exists(firstPath))

	_, err = f.svc.Dispatch(ctx, f.editor, &dto.StorageMediaRequest{
		Action:   dto.ActionUploadAvatar,
		FileData: pngPixelBase64,
		UserID:   f.admin.UserID.String(),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.svc.Dispatch(ctx, f.admin, &dto.StorageMediaRequest{
		Action: dto.ActionDeleteAvatar,
		UserID: f.editor.UserID.String(),
	})
	require.NoError(t, err)
	p := f.profiles.items[f.editor.UserID]
	assert.Empty(t, p.AvatarURL)
	assert.Empty(t, p.AvatarPath)
}

func TestMediaService_UnknownAction(t *testing.T) {
	f := newMediaFixture(t)
	_, err := f.svc.Dispatch(context.Background(), f.admin, &dto.StorageMediaRequest{Action: "rename_file"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAction)
}
