package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"zenzone-admin/internal/domain"
	"zenzone-admin/internal/feature/upload"
)

// function-field mocks: each test wires only the calls it expects,
// an unexpected call panics on the nil func and fails loudly

type blogRepoMock struct {
	listFn   func(ctx context.Context, f domain.ContentFilter) ([]domain.Blog, error)
	findFn   func(ctx context.Context, id int64) (*domain.Blog, error)
	createFn func(ctx context.Context, b *domain.Blog) error
	updateFn func(ctx context.Context, id int64, updates map[string]any) (*domain.Blog, error)
	deleteFn func(ctx context.Context, id int64) (*domain.Blog, error)
}

func (m *blogRepoMock) List(ctx context.Context, f domain.ContentFilter) ([]domain.Blog, error) {
	return m.listFn(ctx, f)
}
func (m *blogRepoMock) FindByID(ctx context.Context, id int64) (*domain.Blog, error) {
	return m.findFn(ctx, id)
}
func (m *blogRepoMock) Create(ctx context.Context, b *domain.Blog) error { return m.createFn(ctx, b) }
func (m *blogRepoMock) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Blog, error) {
	return m.updateFn(ctx, id, updates)
}
func (m *blogRepoMock) SoftDelete(ctx context.Context, id int64) (*domain.Blog, error) {
	return m.deleteFn(ctx, id)
}

type guideRepoMock struct {
	listFn   func(ctx context.Context, f domain.ContentFilter) ([]domain.BreathingGuide, error)
	findFn   func(ctx context.Context, id int64) (*domain.BreathingGuide, error)
	createFn func(ctx context.Context, g *domain.BreathingGuide) error
	updateFn func(ctx context.Context, id int64, updates map[string]any) (*domain.BreathingGuide, error)
	deleteFn func(ctx context.Context, id int64) (*domain.BreathingGuide, error)
	serialFn func(ctx context.Context, serial int, liveOnly bool) (bool, error)
}

func (m *guideRepoMock) List(ctx context.Context, f domain.ContentFilter) ([]domain.BreathingGuide, error) {
	return m.listFn(ctx, f)
}
func (m *guideRepoMock) FindByID(ctx context.Context, id int64) (*domain.BreathingGuide, error) {
	return m.findFn(ctx, id)
}
func (m *guideRepoMock) Create(ctx context.Context, g *domain.BreathingGuide) error {
	return m.createFn(ctx, g)
}
func (m *guideRepoMock) Update(ctx context.Context, id int64, updates map[string]any) (*domain.BreathingGuide, error) {
	return m.updateFn(ctx, id, updates)
}
func (m *guideRepoMock) SoftDelete(ctx context.Context, id int64) (*domain.BreathingGuide, error) {
	return m.deleteFn(ctx, id)
}
func (m *guideRepoMock) SerialExists(ctx context.Context, serial int, liveOnly bool) (bool, error) {
	return m.serialFn(ctx, serial, liveOnly)
}

type userRepoMock struct {
	createFn       func(ctx context.Context, u *domain.User) error
	findByIDFn     func(ctx context.Context, id int64) (*domain.User, error)
	findByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	emailExistsFn  func(ctx context.Context, email string) (bool, error)
	listFn         func(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
	updateFn       func(ctx context.Context, id int64, updates map[string]any) (*domain.User, error)
	updateRoleFn   func(ctx context.Context, id int64, role string) (*domain.User, error)
	updateStatusFn func(ctx context.Context, id int64, status string) (*domain.User, error)
	markWatchedFn  func(ctx context.Context, id int64) (*domain.User, error)
	markReadFn     func(ctx context.Context, id int64) (*domain.User, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User) error { return m.createFn(ctx, u) }
func (m *userRepoMock) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *userRepoMock) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emailExistsFn(ctx, email)
}
func (m *userRepoMock) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	return m.listFn(ctx, f)
}
func (m *userRepoMock) Update(ctx context.Context, id int64, updates map[string]any) (*domain.User, error) {
	return m.updateFn(ctx, id, updates)
}
func (m *userRepoMock) UpdateRole(ctx context.Context, id int64, role string) (*domain.User, error) {
	return m.updateRoleFn(ctx, id, role)
}
func (m *userRepoMock) UpdateStatus(ctx context.Context, id int64, status string) (*domain.User, error) {
	return m.updateStatusFn(ctx, id, status)
}
func (m *userRepoMock) MarkWatched(ctx context.Context, id int64) (*domain.User, error) {
	return m.markWatchedFn(ctx, id)
}
func (m *userRepoMock) MarkRead(ctx context.Context, id int64) (*domain.User, error) {
	return m.markReadFn(ctx, id)
}
func (m *userRepoMock) Delete(ctx context.Context, id int64) error { return m.deleteFn(ctx, id) }

type uploaderMock struct {
	uploadFn func(ctx context.Context, name, contentType string, data []byte) (*upload.Result, error)
}

func (m *uploaderMock) Upload(ctx context.Context, name, contentType string, data []byte) (*upload.Result, error) {
	return m.uploadFn(ctx, name, contentType, data)
}

// mountable lets the helpers accept any handler in this package
type mountable interface{ MountAPI(*gin.RouterGroup) }

func newTestRouter(h mountable) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.MountAPI(r.Group("/api"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return m
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, code, w.Body.String())
	}
}
