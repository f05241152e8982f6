package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/auth"
	"github.com/google/uuid"
)

var errBackend = errors.New("connection refused")

type fakeSpecializationRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]*models.Specialization
	inUse     map[uuid.UUID]bool
	createErr error
}

func newFakeSpecializationRepo(items ...*models.Specialization) *fakeSpecializationRepo {
	r := &fakeSpecializationRepo{items: map[uuid.UUID]*models.Specialization{}, inUse: map[uuid.UUID]bool{}}
	for _, s := range items {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		r.items[s.ID] = s
	}
	return r
}

func (r *fakeSpecializationRepo) slugTaken(slug string, except uuid.UUID) bool {
	for _, s := range r.items {
		if s.Slug == slug && s.ID != except {
			return true
		}
	}
	return false
}

func (r *fakeSpecializationRepo) Create(_ context.Context, s *models.Specialization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if r.slugTaken(s.Slug, uuid.Nil) {
		return apperrors.ErrSpecializationExists
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSpecializationRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Specialization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrSpecializationNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSpecializationRepo) GetBySlug(_ context.Context, slug string, activeOnly bool) (*models.Specialization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if s.Slug == slug && (!activeOnly || s.IsActive) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrSpecializationNotFound
}

func (r *fakeSpecializationRepo) List(_ context.Context, activeOnly bool) ([]*models.Specialization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Specialization
	for _, s := range r.items {
		if !activeOnly || s.IsActive {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *fakeSpecializationRepo) Update(_ context.Context, s *models.Specialization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; !ok {
		return apperrors.ErrSpecializationNotFound
	}
	if r.slugTaken(s.Slug, s.ID) {
		return apperrors.ErrSpecializationExists
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSpecializationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrSpecializationNotFound
	}
	if r.inUse[id] {
		return apperrors.ErrSpecializationInUse
	}
	delete(r.items, id)
	return nil
}

func (r *fakeSpecializationRepo) Count(_ context.Context) (models.EntityCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c models.EntityCount
	for _, s := range r.items {
		c.Total++
		if s.IsActive {
			c.Active++
		}
	}
	return c, nil
}

type fakeCourseRepo struct {
	mu          sync.Mutex
	items       map[uuid.UUID]*models.Course
	specs       *fakeSpecializationRepo
	createCalls int
	createErr   error
	updateErr   error
}

func newFakeCourseRepo(specs *fakeSpecializationRepo) *fakeCourseRepo {
	return &fakeCourseRepo{items: map[uuid.UUID]*models.Course{}, specs: specs}
}

func (r *fakeCourseRepo) spec(id uuid.UUID) (*models.Specialization, bool) {
	r.specs.mu.Lock()
	defer r.specs.mu.Unlock()
	s, ok := r.specs.items[id]
	return s, ok
}

func (r *fakeCourseRepo) write(c *models.Course, isNew bool) error {
	for _, other := range r.items {
		if other.Slug == c.Slug && other.ID != c.ID {
			return apperrors.ErrCourseExists
		}
	}
	sp, ok := r.spec(c.SpecializationID)
	if !ok {
		return apperrors.ErrInvalidSpecialization
	}
	if isNew {
		c.ID = uuid.New()
		c.CreatedAt = time.Now()
	}
	c.SpecializationName = sp.Name
	c.SpecializationSlug = sp.Slug
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) Create(_ context.Context, c *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	return r.write(c, true)
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) GetBySlug(_ context.Context, slug string, activeOnly bool) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Slug != slug {
			continue
		}
		sp, _ := r.spec(c.SpecializationID)
		if activeOnly && (!c.IsActive || sp == nil || !sp.IsActive) {
			continue
		}
		cp := *c
		return &cp, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepo) List(_ context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Course
	for _, c := range r.items {
		sp, _ := r.spec(c.SpecializationID)
		if filter.ActiveOnly && (!c.IsActive || sp == nil || !sp.IsActive) {
			continue
		}
		if filter.SpecializationSlug != "" && (sp == nil || sp.Slug != filter.SpecializationSlug) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, c *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.items[c.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	return r.write(c, false)
}

func (r *fakeCourseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCourseRepo) Count(_ context.Context) (models.EntityCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c models.EntityCount
	for _, item := range r.items {
		c.Total++
		if item.IsActive {
			c.Active++
		}
	}
	return c, nil
}

type fakeTeamRepo struct {
	items map[uuid.UUID]*models.TeamMember
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{items: map[uuid.UUID]*models.TeamMember{}}
}

func (r *fakeTeamRepo) Create(_ context.Context, m *models.TeamMember) error {
	m.ID = uuid.New()
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id uuid.UUID) (*models.TeamMember, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrTeamMemberNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeTeamRepo) List(_ context.Context, filter models.TeamFilter) ([]*models.TeamMember, error) {
	var out []*models.TeamMember
	for _, m := range r.items {
		if filter.ActiveOnly && !m.IsActive {
			continue
		}
		if filter.Category != "" && m.Category != filter.Category {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, m *models.TeamMember) error {
	if _, ok := r.items[m.ID]; !ok {
		return apperrors.ErrTeamMemberNotFound
	}
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrTeamMemberNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeTeamRepo) Count(_ context.Context) (models.EntityCount, error) {
	var c models.EntityCount
	for _, m := range r.items {
		c.Total++
		if m.IsActive {
			c.Active++
		}
	}
	return c, nil
}

type fakeFAQRepo struct {
	items map[uuid.UUID]*models.FAQ
}

func newFakeFAQRepo() *fakeFAQRepo {
	return &fakeFAQRepo{items: map[uuid.UUID]*models.FAQ{}}
}

func (r *fakeFAQRepo) Create(_ context.Context, f *models.FAQ) error {
	f.ID = uuid.New()
	cp := *f
	r.items[f.ID] = &cp
	return nil
}

func (r *fakeFAQRepo) GetByID(_ context.Context, id uuid.UUID) (*models.FAQ, error) {
	f, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrFAQNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFAQRepo) List(_ context.Context, activeOnly bool) ([]*models.FAQ, error) {
	var out []*models.FAQ
	for _, f := range r.items {
		if !activeOnly || f.IsActive {
			cp := *f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeFAQRepo) Update(_ context.Context, f *models.FAQ) error {
	if _, ok := r.items[f.ID]; !ok {
		return apperrors.ErrFAQNotFound
	}
	cp := *f
	r.items[f.ID] = &cp
	return nil
}

func (r *fakeFAQRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrFAQNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeFAQRepo) Count(_ context.Context) (models.EntityCount, error) {
	var c models.EntityCount
	for _, f := range r.items {
		c.Total++
		if f.IsActive {
			c.Active++
		}
	}
	return c, nil
}

type fakeContentRepo struct {
	items map[string]*models.WebsiteContent
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: map[string]*models.WebsiteContent{}}
}

func (r *fakeContentRepo) Get(_ context.Context, section string) (*models.WebsiteContent, error) {
	wc, ok := r.items[section]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	return wc, nil
}

func (r *fakeContentRepo) List(_ context.Context) ([]*models.WebsiteContent, error) {
	var out []*models.WebsiteContent
	for _, wc := range r.items {
		out = append(out, wc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out, nil
}

func (r *fakeContentRepo) Upsert(_ context.Context, section string, content json.RawMessage) (*models.WebsiteContent, error) {
	wc := &models.WebsiteContent{Section: section, Content: content, UpdatedAt: time.Now()}
	r.items[section] = wc
	return wc, nil
}

type fakeMediaRepo struct {
	items     map[string]*models.MediaAsset
	upsertErr error
}

func newFakeMediaRepo(items ...*models.MediaAsset) *fakeMediaRepo {
	r := &fakeMediaRepo{items: map[string]*models.MediaAsset{}}
	for _, a := range items {
		r.items[a.AssetKey] = a
	}
	return r
}

func (r *fakeMediaRepo) GetByKey(_ context.Context, key string, activeOnly bool) (*models.MediaAsset, error) {
	a, ok := r.items[key]
	if !ok || (activeOnly && !a.IsActive) {
		return nil, apperrors.ErrMediaAssetNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeMediaRepo) GetByKeys(_ context.Context, keys []string) (map[string]*models.MediaAsset, error) {
	out := map[string]*models.MediaAsset{}
	for _, k := range keys {
		if a, ok := r.items[k]; ok && a.IsActive {
			cp := *a
			out[k] = &cp
		}
	}
	return out, nil
}

func (r *fakeMediaRepo) List(_ context.Context, filter models.MediaFilter) ([]*models.MediaAsset, int64, error) {
	var all []*models.MediaAsset
	for _, a := range r.items {
		if filter.ActiveOnly && !a.IsActive {
			continue
		}
		if filter.Section != "" && a.Section != filter.Section {
			continue
		}
		if q := strings.ToLower(filter.Query); q != "" &&
			!strings.Contains(strings.ToLower(a.AssetName), q) && !strings.Contains(strings.ToLower(a.AssetKey), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) {
			continue
		}
		cp := *a
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].AssetKey < all[j].AssetKey })
	total := int64(len(all))
	if filter.Offset > 0 {
		if int(filter.Offset) >= len(all) {
			all = nil
		} else {
			all = all[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}
	return all, total, nil
}

func (r *fakeMediaRepo) Upsert(_ context.Context, a *models.MediaAsset) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	if prev, ok := r.items[a.AssetKey]; ok {
		a.ID = prev.ID
		if a.AltText == "" {
			a.AltText = prev.AltText
		}
		if a.Description == "" {
			a.Description = prev.Description
		}
	} else {
		a.ID = uuid.New()
	}
	a.IsActive = true
	cp := *a
	r.items[a.AssetKey] = &cp
	return nil
}

func (r *fakeMediaRepo) UpdateMetadata(_ context.Context, key, name, altText, description string) (*models.MediaAsset, error) {
	a, ok := r.items[key]
	if !ok {
		return nil, apperrors.ErrMediaAssetNotFound
	}
	if name != "" {
		a.AssetName = name
	}
	if altText != "" {
		a.AltText = altText
	}
	if description != "" {
		a.Description = description
	}
	cp := *a
	return &cp, nil
}

func (r *fakeMediaRepo) DeleteByKey(_ context.Context, key string) error {
	if _, ok := r.items[key]; !ok {
		return apperrors.ErrMediaAssetNotFound
	}
	delete(r.items, key)
	return nil
}

func (r *fakeMediaRepo) DeleteByStoragePath(_ context.Context, path string) (int64, error) {
	var n int64
	for k, a := range r.items {
		if a.StoragePath == path {
			delete(r.items, k)
			n++
		}
	}
	return n, nil
}

func (r *fakeMediaRepo) Count(_ context.Context) (models.EntityCount, error) {
	var c models.EntityCount
	for _, a := range r.items {
		c.Total++
		if a.IsActive {
			c.Active++
		}
	}
	return c, nil
}

type fakeUserRepo struct {
	users      map[uuid.UUID]*models.User
	roles      map[uuid.UUID]models.Role
	lastLogins int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}, roles: map[uuid.UUID]models.Role{}}
}

func (r *fakeUserRepo) add(email, password string, role models.Role, active bool) *models.User {
	hash, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}
	u := &models.User{ID: uuid.New(), Email: email, PasswordHash: hash, IsActive: active}
	r.users[u.ID] = u
	if role != "" {
		r.roles[u.ID] = role
	}
	return u
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID) error {
	r.lastLogins++
	return nil
}

func (r *fakeUserRepo) GetAdminRole(_ context.Context, userID uuid.UUID) (models.Role, error) {
	role, ok := r.roles[userID]
	if !ok {
		return "", apperrors.ErrNotAdmin
	}
	return role, nil
}

func (r *fakeUserRepo) CountAdmins(_ context.Context) (int64, error) {
	return int64(len(r.roles)), nil
}

func (r *fakeUserRepo) CreateAdmin(_ context.Context, u *models.User, role models.Role, _ string) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	u.ID = uuid.New()
	cp := *u
	r.users[u.ID] = &cp
	r.roles[u.ID] = role
	return nil
}

type fakeToken struct {
	userID  uuid.UUID
	revoked bool
}

type fakeTokenRepo struct {
	tokens map[string]*fakeToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*fakeToken{}}
}

func (r *fakeTokenRepo) CreateToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	r.tokens[token] = &fakeToken{userID: userID}
	return nil
}

func (r *fakeTokenRepo) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	t, ok := r.tokens[token]
	if !ok {
		return uuid.Nil, apperrors.ErrTokenNotFound
	}
	if t.revoked {
		return uuid.Nil, apperrors.ErrTokenRevoked
	}
	return t.userID, nil
}

func (r *fakeTokenRepo) RevokeToken(_ context.Context, token string) error {
	t, ok := r.tokens[token]
	if !ok || t.revoked {
		return apperrors.ErrTokenRevoked
	}
	t.revoked = true
	return nil
}

// staleTokenRepo answers GetUserID as if no revocation had happened yet, the view a
// concurrent refresh can have between its read and its revoke.
type staleTokenRepo struct {
	*fakeTokenRepo
}

func (r staleTokenRepo) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	t, ok := r.tokens[token]
	if !ok {
		return uuid.Nil, apperrors.ErrTokenNotFound
	}
	return t.userID, nil
}

func (r *fakeTokenRepo) RevokeAllUserTokens(_ context.Context, userID uuid.UUID) error {
	for _, t := range r.tokens {
		if t.userID == userID {
			t.revoked = true
		}
	}
	return nil
}

type fakeProfileRepo struct {
	items map[uuid.UUID]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{items: map[uuid.UUID]*models.Profile{}}
}

func (r *fakeProfileRepo) GetOrCreate(_ context.Context, userID uuid.UUID) (*models.Profile, error) {
	p, ok := r.items[userID]
	if !ok {
		p = &models.Profile{UserID: userID, CreatedAt: time.Now()}
		r.items[userID] = p
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) UpdateFullName(_ context.Context, userID uuid.UUID, fullName string) (*models.Profile, error) {
	p, ok := r.items[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	p.FullName = fullName
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) SetAvatar(_ context.Context, userID uuid.UUID, url, path string) (*models.Profile, error) {
	p, ok := r.items[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	p.AvatarURL = url
	p.AvatarPath = path
	cp := *p
	return &cp, nil
}
