package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/apperrors"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthedRouter builds an engine whose requests carry user 7, the way the
// JWT middleware would set it
func newAuthedRouter(register func(r *gin.Engine)) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", int64(7)) })
	register(r)
	return r
}

func performRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return &resp
}

type fakeDiscoveryService struct {
	called bool
	page   int
	size   int
}

func (f *fakeDiscoveryService) Discover(_ context.Context, _ int64, _ dto.DiscoveryFilter, page, size int) (*dto.DiscoveryResponse, error) {
	f.called = true
	f.page = page
	f.size = size
	return &dto.DiscoveryResponse{Users: []dto.DiscoveredUser{}}, nil
}

func TestDiscoverPaginationValidation(t *testing.T) {
	newRouter := func(svc *fakeDiscoveryService) *gin.Engine {
		return newAuthedRouter(func(r *gin.Engine) {
			r.GET("/discovery", NewDiscoveryController(svc).Discover)
		})
	}

	rejected := []struct {
		name  string
		query string
	}{
		{name: "zero page", query: "?page=0"},
		{name: "negative page", query: "?page=-1"},
		{name: "non numeric page", query: "?page=abc"},
		{name: "zero size", query: "?size=0"},
		{name: "negative size", query: "?size=-5"},
		{name: "non numeric size", query: "?size=ten"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeDiscoveryService{}
			w := performRequest(t, newRouter(svc), http.MethodGet, "/discovery"+tt.query, "")

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if svc.called {
				t.Error("service was called despite invalid pagination")
			}
			resp := decodeErrorResponse(t, w)
			if resp.Error == nil || resp.Error.Code != dto.ErrorCodeValidationFailed {
				t.Errorf("error = %+v, want code %s", resp.Error, dto.ErrorCodeValidationFailed)
			}
		})
	}

	t.Run("absent parameters use defaults", func(t *testing.T) {
		svc := &fakeDiscoveryService{}
		w := performRequest(t, newRouter(svc), http.MethodGet, "/discovery", "")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if !svc.called {
			t.Fatal("service was not called")
		}
		if svc.page != helpers.DefaultPage || svc.size != helpers.DefaultPageSize {
			t.Errorf("pagination = (%d, %d), want (%d, %d)", svc.page, svc.size, helpers.DefaultPage, helpers.DefaultPageSize)
		}
	})
}

type fakeConnectionService struct {
	created bool
}

func (f *fakeConnectionService) SendRequest(_ context.Context, initiatorID, targetID int64) (*dto.ConnectionResponse, bool, error) {
	return &dto.ConnectionResponse{ID: 1, InitiatorID: initiatorID, Status: models.ConnectionPending}, f.created, nil
}

func (f *fakeConnectionService) Respond(_ context.Context, _, _ int64, _ bool) (*dto.ConnectionResponse, error) {
	return nil, nil
}

func (f *fakeConnectionService) ListConnections(_ context.Context, _ int64, _ models.ConnectionStatus) ([]dto.ConnectionResponse, error) {
	return nil, nil
}

func (f *fakeConnectionService) ListPendingReceived(_ context.Context, _ int64) ([]dto.ConnectionResponse, error) {
	return nil, nil
}

func (f *fakeConnectionService) GetStatusWith(_ context.Context, _, _ int64) (*dto.ConnectionStatusResponse, error) {
	return nil, nil
}

func (f *fakeConnectionService) DeleteConnection(_ context.Context, _, _ int64) error {
	return nil
}

func TestSendRequestStatusCodes(t *testing.T) {
	newRouter := func(svc *fakeConnectionService) *gin.Engine {
		return newAuthedRouter(func(r *gin.Engine) {
			r.POST("/connections/requests", NewConnectionController(svc).SendRequest)
		})
	}

	t.Run("fresh request is created", func(t *testing.T) {
		w := performRequest(t, newRouter(&fakeConnectionService{created: true}),
			http.MethodPost, "/connections/requests", `{"requestedUserId": 2}`)

		if w.Code != http.StatusCreated {
			t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
		}
	})

	t.Run("reopened request reads OK", func(t *testing.T) {
		w := performRequest(t, newRouter(&fakeConnectionService{created: false}),
			http.MethodPost, "/connections/requests", `{"requestedUserId": 2}`)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})
}

func TestLogout(t *testing.T) {
	r := gin.New()
	r.DELETE("/auth/logout", NewAuthController(nil).Logout)

	w := performRequest(t, r, http.MethodDelete, "/auth/logout", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

type fakeProfileService struct {
	deletedFor int64
	deleteErr  error
}

func (f *fakeProfileService) CreateProfile(_ context.Context, _ int64, _ dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	return nil, nil
}

func (f *fakeProfileService) GetProfile(_ context.Context, _ int64) (*dto.ProfileResponse, error) {
	return nil, nil
}

func (f *fakeProfileService) UpdateProfile(_ context.Context, _ int64, _ dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	return nil, nil
}

func (f *fakeProfileService) DeleteProfile(_ context.Context, userID int64) error {
	f.deletedFor = userID
	return f.deleteErr
}

func TestDeleteProfile(t *testing.T) {
	newRouter := func(svc *fakeProfileService) *gin.Engine {
		return newAuthedRouter(func(r *gin.Engine) {
			r.DELETE("/profile", NewProfileController(svc).DeleteProfile)
		})
	}

	t.Run("removes the caller's profile", func(t *testing.T) {
		svc := &fakeProfileService{}
		w := performRequest(t, newRouter(svc), http.MethodDelete, "/profile", "")

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if svc.deletedFor != 7 {
			t.Errorf("deleted for user %d, want 7", svc.deletedFor)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		svc := &fakeProfileService{deleteErr: apperrors.ErrProfileNotFound}
		w := performRequest(t, newRouter(svc), http.MethodDelete, "/profile", "")

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}
