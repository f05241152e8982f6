package services

import (
	"context"
	"testing"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecializationService_CreateGeneratesSlug(t *testing.T) {
	specs := newFakeSpecializationRepo()
	svc := NewSpecializationService(specs, newFakeCourseRepo(specs), newFakeMediaRepo(), testSite)
	ctx := context.Background()

	sp, err := svc.Create(ctx, &dto.SpecializationRequest{Name: "  Artificial Intelligence & ML "})
	require.NoError(t, err)
	assert.Equal(t, "Artificial Intelligence & ML", sp.Name)
	assert.Equal(t, "artificial-intelligence-ml", sp.Slug)
	assert.True(t, sp.IsActive)

	_, err = svc.Create(ctx, &dto.SpecializationRequest{Name: "Other", Slug: "Artificial Intelligence ML"})
	assert.ErrorIs(t, err, apperrors.ErrSpecializationExists)

	_, err = svc.Create(ctx, &dto.SpecializationRequest{Name: " "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSpecializationService_UpdateAndDelete(t *testing.T) {
	existing := &models.Specialization{ID: uuid.New(), Name: "Design", Slug: "design", SortOrder: 2, IsActive: true}
	specs := newFakeSpecializationRepo(existing)
	svc := NewSpecializationService(specs, newFakeCourseRepo(specs), newFakeMediaRepo(), testSite)
	ctx := context.Background()

	updated, err := svc.Update(ctx, existing.ID, &dto.SpecializationRequest{Name: "Graphic Design"})
	require.NoError(t, err)
	assert.Equal(t, "graphic-design", updated.Slug)
	assert.Equal(t, 2, updated.SortOrder)
	assert.True(t, updated.IsActive)

	_, err = svc.Update(ctx, uuid.New(), &dto.SpecializationRequest{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrSpecializationNotFound)

	specs.inUse[existing.ID] = true
	err = svc.Delete(ctx, existing.ID)
	assert.ErrorIs(t, err, apperrors.ErrSpecializationInUse)

	specs.inUse[existing.ID] = false
	require.NoError(t, svc.Delete(ctx, existing.ID))
	assert.ErrorIs(t, svc.Delete(ctx, existing.ID), apperrors.ErrSpecializationNotFound)
}

func TestSpecializationService_ImageResolution(t *testing.T) {
	withAsset := &models.Specialization{ID: uuid.New(), Name: "Cyber Security", Slug: "cyber-security",
		ImageURL: "https://img.example.com/stored.png", IsActive: true, SortOrder: 1}
	plain := &models.Specialization{ID: uuid.New(), Name: "Networking", Slug: "networking",
		ImageURL: "https://img.example.com/net.png", IsActive: true, SortOrder: 2}
	specs := newFakeSpecializationRepo(withAsset, plain)
	media := newFakeMediaRepo(&models.MediaAsset{
		AssetKey: "specialization_cyber-security",
		AssetURL: "http://localhost:8080/uploads/media/specializations/a.png",
		IsActive: true,
	})
	svc := NewSpecializationService(specs, newFakeCourseRepo(specs), media, testSite)
	ctx := context.Background()

	list, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "http://localhost:8080/uploads/media/specializations/a.png", list[0].ImageURL)
	assert.Equal(t, "https://img.example.com/net.png", list[1].ImageURL)

	detail, err := svc.GetDetail(ctx, "networking")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/net.png", detail.ImageURL)
	assert.Empty(t, detail.Courses)
	assert.Equal(t, "https://bigbinarytech.com/specializations/networking", detail.Meta.Canonical)

	media.items["specialization_cyber-security"].IsActive = false
	assert.Equal(t, withAsset.ImageURL, svc.ResolveImage(ctx, withAsset))
}

func TestSpecializationService_DetailHidesInactive(t *testing.T) {
	hidden := &models.Specialization{ID: uuid.New(), Name: "Hidden", Slug: "hidden"}
	specs := newFakeSpecializationRepo(hidden)
	svc := NewSpecializationService(specs, newFakeCourseRepo(specs), newFakeMediaRepo(), testSite)

	_, err := svc.GetDetail(context.Background(), "hidden")
	assert.ErrorIs(t, err, apperrors.ErrSpecializationNotFound)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
