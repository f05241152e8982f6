package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/app/services"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidation()
}

type stubCourseService struct {
	CourseService
	listSlug string
	created  *dto.CourseRequest
	err      error
}

func (s *stubCourseService) ListPublic(_ context.Context, slug string) ([]*models.Course, error) {
	s.listSlug = slug
	if s.err != nil {
		return nil, s.err
	}
	return []*models.Course{{Title: "Python for Data Analysis", Slug: "python-for-data-analysis"}}, nil
}

func (s *stubCourseService) Create(_ context.Context, req *dto.CourseRequest) (*models.Course, error) {
	s.created = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Course{ID: uuid.New(), Title: req.Title}, nil
}

func (s *stubCourseService) Delete(_ context.Context, _ uuid.UUID) error {
	return s.err
}

type stubMediaService struct {
	MediaService
	actor services.Actor
	req   *dto.StorageMediaRequest
	page  int
	size  int
	err   error
}

func (s *stubMediaService) Dispatch(_ context.Context, actor services.Actor, req *dto.StorageMediaRequest) (interface{}, error) {
	s.actor, s.req = actor, req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AvatarResult{URL: "http://localhost/uploads/avatars/a.png"}, nil
}

func (s *stubMediaService) Search(_ context.Context, _, _ string, page, size int) (*dto.MediaListResponse, error) {
	s.page, s.size = page, size
	return &dto.MediaListResponse{Assets: []*models.MediaAsset{}}, nil
}

func (s *stubMediaService) Resolve(_ context.Context, key, fallback string) (*dto.MediaURLResponse, error) {
	if fallback == "" {
		return nil, apperrors.ErrMediaAssetNotFound
	}
	return &dto.MediaURLResponse{AssetKey: key, URL: fallback}, nil
}

type stubTeamService struct {
	TeamService
	category models.TeamCategory
}

func (s *stubTeamService) ListPublic(_ context.Context, category models.TeamCategory) ([]*models.TeamMember, error) {
	s.category = category
	return []*models.TeamMember{}, nil
}

type stubContentService struct {
	ContentService
	section string
	content json.RawMessage
}

func (s *stubContentService) Update(_ context.Context, section string, content json.RawMessage) (*models.WebsiteContent, error) {
	s.section, s.content = section, content
	return &models.WebsiteContent{Section: section, Content: content}, nil
}

func perform(h gin.HandlerFunc, method, route, target, body string, setup ...gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	handlers := append(setup, h)
	r.Handle(method, route, handlers...)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func asUser(id uuid.UUID, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	return errObj["message"].(string)
}

func TestCourseController_ListPublic(t *testing.T) {
	svc := &stubCourseService{}
	ctrl := NewCourseController(svc)

	w := perform(ctrl.ListPublic, http.MethodGet, "/courses", "/courses?specialization=data-science", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "data-science", svc.listSlug)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "python-for-data-analysis", data[0].(map[string]interface{})["slug"])
}

func TestCourseController_ListPublicUnknownSpecialization(t *testing.T) {
	ctrl := NewCourseController(&stubCourseService{err: apperrors.ErrSpecializationNotFound})

	w := perform(ctrl.ListPublic, http.MethodGet, "/courses", "/courses?specialization=nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseController_CreateValidation(t *testing.T) {
	svc := &stubCourseService{}
	ctrl := NewCourseController(svc)

	w := perform(ctrl.Create, http.MethodPost, "/admin/courses", "/admin/courses",
		`{"title":"","specializationId":"not-a-uuid"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.created, "service must not be called on invalid input")
	assert.Contains(t, w.Body.String(), "specializationId")

	w = perform(ctrl.Create, http.MethodPost, "/admin/courses", "/admin/courses",
		`{"title":"Go","specializationId":"`+uuid.NewString()+`","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.created)
}

func TestCourseController_Create(t *testing.T) {
	svc := &stubCourseService{}
	ctrl := NewCourseController(svc)

	w := perform(ctrl.Create, http.MethodPost, "/admin/courses", "/admin/courses",
		`{"title":"Go Basics","specializationId":"`+uuid.NewString()+`","price":120}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "Go Basics", svc.created.Title)
	assert.Equal(t, "Course created successfully", decodeBody(t, w)["message"])
}

func TestCourseController_CreateConflict(t *testing.T) {
	ctrl := NewCourseController(&stubCourseService{
		err: apperrors.NewCustomError(apperrors.ErrCourseExists, `A course with slug "go-basics" already exists`),
	})

	w := perform(ctrl.Create, http.MethodPost, "/admin/courses", "/admin/courses",
		`{"title":"Go Basics","specializationId":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, `A course with slug "go-basics" already exists`, errorMessage(t, w))
}

func TestCourseController_DeleteBadID(t *testing.T) {
	ctrl := NewCourseController(&stubCourseService{})

	w := perform(ctrl.Delete, http.MethodDelete, "/admin/courses/:id", "/admin/courses/42", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(ctrl.Delete, http.MethodDelete, "/admin/courses/:id", "/admin/courses/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMediaController_StorageMediaPassesActor(t *testing.T) {
	svc := &stubMediaService{}
	ctrl := NewMediaController(svc)
	userID := uuid.New()

	w := perform(ctrl.StorageMedia, http.MethodPost, "/fn", "/fn",
		`{"action":"upload_avatar","file_data":"abc","mime_type":"image/png"}`,
		asUser(userID, models.RoleEditor))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, svc.actor.UserID)
	assert.Equal(t, models.RoleEditor, svc.actor.Role)
	assert.Equal(t, dto.ActionUploadAvatar, svc.req.Action)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "http://localhost/uploads/avatars/a.png", data["url"])
}

func TestMediaController_StorageMediaErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"missing action", `{}`, nil, http.StatusBadRequest},
		{"unknown action", `{"action":"explode"}`, apperrors.NewCustomError(apperrors.ErrUnknownAction, "Unknown action: explode"), http.StatusBadRequest},
		{"too large", `{"action":"upload_file"}`, apperrors.NewCustomError(apperrors.ErrPayloadTooLarge, "File size must be less than 10MB"), http.StatusRequestEntityTooLarge},
		{"not image", `{"action":"upload_file"}`, apperrors.NewCustomError(apperrors.ErrUnsupportedMediaType, "Only image files are allowed"), http.StatusUnsupportedMediaType},
		{"other avatar", `{"action":"delete_avatar","user_id":"x"}`, apperrors.NewForbiddenError("You can only change your own avatar"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewMediaController(&stubMediaService{err: tt.err})
			w := perform(ctrl.StorageMedia, http.MethodPost, "/fn", "/fn", tt.body, asUser(uuid.New(), models.RoleAdmin))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestMediaController_StorageMediaRequiresUser(t *testing.T) {
	ctrl := NewMediaController(&stubMediaService{})
	w := perform(ctrl.StorageMedia, http.MethodPost, "/fn", "/fn", `{"action":"get_media_assets"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMediaController_SearchPagination(t *testing.T) {
	svc := &stubMediaService{}
	ctrl := NewMediaController(svc)

	w := perform(ctrl.Search, http.MethodGet, "/admin/media", "/admin/media?page=3&size=500", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, svc.page)
	assert.Equal(t, 24, svc.size)
}

func TestMediaController_Resolve(t *testing.T) {
	ctrl := NewMediaController(&stubMediaService{})

	w := perform(ctrl.Resolve, http.MethodGet, "/media/*key", "/media/navbar_logo?fallback=/logo.svg", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "navbar_logo", data["assetKey"])
	assert.Equal(t, "/logo.svg", data["url"])
	assert.Equal(t, false, data["found"])

	w = perform(ctrl.Resolve, http.MethodGet, "/media/*key", "/media/navbar_logo", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(ctrl.Resolve, http.MethodGet, "/media/*key", "/media/specialization_ui/ux-design?fallback=/ux.png", "")
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "specialization_ui/ux-design", data["assetKey"])

	w = perform(ctrl.Resolve, http.MethodGet, "/media/*key", "/media/specialization_c++-programming?fallback=/cpp.png", "")
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "specialization_c++-programming", data["assetKey"])
}

func TestTeamController_Category(t *testing.T) {
	svc := &stubTeamService{}
	ctrl := NewTeamController(svc)

	w := perform(ctrl.ListPublic, http.MethodGet, "/team", "/team?category=Leadership", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.TeamCategory("leadership"), svc.category)
	assert.Equal(t, []interface{}{}, decodeBody(t, w)["data"])

	w = perform(ctrl.ListPublic, http.MethodGet, "/team", "/team?category=interns", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentController_Update(t *testing.T) {
	svc := &stubContentService{}
	ctrl := NewContentController(svc)

	w := perform(ctrl.Update, http.MethodPut, "/admin/content/:section", "/admin/content/hero",
		`{"content":{"title":"Learn with us"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hero", svc.section)
	assert.JSONEq(t, `{"title":"Learn with us"}`, string(svc.content))

	w = perform(ctrl.Update, http.MethodPut, "/admin/content/:section", "/admin/content/hero", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
