package services

import (
	"context"
	"testing"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/helpers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSite = SiteSettings{SiteURL: "https://bigbinarytech.com", EnrollmentFormURL: "https://forms.example.com/enroll"}

func courseFixture(t *testing.T) (*CourseService, *fakeCourseRepo, *models.Specialization) {
	t.Helper()
	sp := &models.Specialization{ID: uuid.New(), Name: "Data Science", Slug: "data-science", IsActive: true}
	specs := newFakeSpecializationRepo(sp)
	courses := newFakeCourseRepo(specs)
	return NewCourseService(courses, specs, newFakeMediaRepo(), testSite), courses, sp
}

func TestCourseService_CreateInsertsOnce(t *testing.T) {
	svc, repo, sp := courseFixture(t)

	c, err := svc.Create(context.Background(), &dto.CourseRequest{
		Title:            "Python for Data Analysis",
		Price:            450,
		SpecializationID: sp.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "python-for-data-analysis", c.Slug)
	assert.Equal(t, models.DefaultCourseDuration, c.Duration)
	assert.True(t, c.IsActive)
	assert.NotNil(t, c.Modules)
	assert.NotNil(t, c.ExtraFields.LearningOutcomes)
}

func TestCourseService_CreateBackendErrorLeavesStateUnchanged(t *testing.T) {
	svc, repo, sp := courseFixture(t)
	repo.createErr = errBackend

	c, err := svc.Create(context.Background(), &dto.CourseRequest{
		Title:            "Web Development",
		SpecializationID: sp.ID.String(),
	})
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Equal(t, 1, repo.createCalls)
	assert.NotEmpty(t, err.Error())

	list, err := svc.ListAll(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCourseService_CreateValidation(t *testing.T) {
	svc, repo, sp := courseFixture(t)

	tests := []struct {
		name string
		req  dto.CourseRequest
	}{
		{name: "blank title", req: dto.CourseRequest{Title: "   ", SpecializationID: sp.ID.String()}},
		{name: "symbols only", req: dto.CourseRequest{Title: "!!!", SpecializationID: sp.ID.String()}},
		{name: "bad specialization id", req: dto.CourseRequest{Title: "Go", SpecializationID: "nope"}},
		{name: "negative price", req: dto.CourseRequest{Title: "Go", Price: -1, SpecializationID: sp.ID.String()}},
		{name: "untitled module", req: dto.CourseRequest{Title: "Go", SpecializationID: sp.ID.String(),
			Modules: []models.CourseModule{{Title: ""}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
	assert.Zero(t, repo.createCalls)
}

func TestCourseService_DuplicateSlugAndMissingSpecialization(t *testing.T) {
	svc, _, sp := courseFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CourseRequest{Title: "Machine Learning", SpecializationID: sp.ID.String()})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dto.CourseRequest{Title: "Machine   Learning!", SpecializationID: sp.ID.String()})
	assert.ErrorIs(t, err, apperrors.ErrCourseExists)
	assert.Contains(t, apperrors.Message(err, ""), "machine-learning")

	_, err = svc.Create(ctx, &dto.CourseRequest{Title: "Orphan", SpecializationID: uuid.NewString()})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSpecialization)
}

func TestCourseService_UpdateKeepsUnsetFlags(t *testing.T) {
	svc, _, sp := courseFixture(t)
	ctx := context.Background()
	order := 3

	c, err := svc.Create(ctx, &dto.CourseRequest{Title: "Cloud", SpecializationID: sp.ID.String(), SortOrder: &order})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, c.ID, &dto.CourseRequest{
		Title:            "Cloud Computing",
		Slug:             "Cloud Computing 101",
		SpecializationID: sp.ID.String(),
		IsActive:         &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "cloud-computing-101", updated.Slug)
	assert.Equal(t, 3, updated.SortOrder)
	assert.False(t, updated.IsActive)

	_, err = svc.Update(ctx, uuid.New(), &dto.CourseRequest{Title: "x", SpecializationID: sp.ID.String()})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseService_PublicReads(t *testing.T) {
	svc, _, sp := courseFixture(t)
	ctx := context.Background()
	hidden := false

	_, err := svc.Create(ctx, &dto.CourseRequest{Title: "Visible", Summary: "Learn things", SpecializationID: sp.ID.String()})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CourseRequest{Title: "Hidden", SpecializationID: sp.ID.String(), IsActive: &hidden})
	require.NoError(t, err)

	list, err := svc.ListPublic(ctx, "data-science")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Visible", list[0].Title)

	_, err = svc.ListPublic(ctx, "unknown")
	assert.ErrorIs(t, err, apperrors.ErrSpecializationNotFound)

	detail, err := svc.GetDetail(ctx, "visible")
	require.NoError(t, err)
	assert.Equal(t, "Data Science", detail.Course.SpecializationName)
	assert.Equal(t, "Visible | "+BaseTitle, detail.Meta.Title)
	assert.Equal(t, "https://bigbinarytech.com/courses/visible", detail.Meta.Canonical)

	_, err = svc.GetDetail(ctx, "hidden")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseService_DetailImage(t *testing.T) {
	sp := &models.Specialization{ID: uuid.New(), Name: "Data Science", Slug: "data-science", IsActive: true}
	specs := newFakeSpecializationRepo(sp)
	courses := newFakeCourseRepo(specs)
	media := newFakeMediaRepo(&models.MediaAsset{
		AssetKey: "course_python-basics",
		AssetURL: "http://localhost:8080/uploads/media/courses/hero.png",
		IsActive: true,
	})
	svc := NewCourseService(courses, specs, media, testSite)
	ctx := context.Background()

	for _, title := range []string{"Python Basics", "SQL Essentials"} {
		_, err := svc.Create(ctx, &dto.CourseRequest{
			Title:            title,
			ImageURL:         "https://cdn.example.com/" + helpers.GenerateSlug(title) + ".jpg",
			SpecializationID: sp.ID.String(),
		})
		require.NoError(t, err)
	}

	detail, err := svc.GetDetail(ctx, "python-basics")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/media/courses/hero.png", detail.ImageURL)

	detail, err = svc.GetDetail(ctx, "sql-essentials")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/sql-essentials.jpg", detail.ImageURL)

	media.items["course_python-basics"].IsActive = false
	detail, err = svc.GetDetail(ctx, "python-basics")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/python-basics.jpg", detail.ImageURL)
}
