package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// newTestRouter returns a router whose services answer every call with
// zero values.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	h, m := newMockedHandler(t)
	m.prefs.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	m.prefs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.TypedValue{}, nil).AnyTimes()
	m.prefs.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.prefs.EXPECT().Clear(gomock.Any()).Return(nil).AnyTimes()
	m.prefs.EXPECT().Flush(gomock.Any()).Return(nil).AnyTimes()
	m.keys.EXPECT().List(gomock.Any()).Return(models.KeysInfo{}, nil).AnyTimes()
	m.keys.EXPECT().Backup(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.keys.EXPECT().Clear(gomock.Any()).Return(nil).AnyTimes()
	m.tokens.EXPECT().ParseToken(gomock.Any(), "stub-token").Return(adminToken(), nil).AnyTimes()
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.AppBuildInfo{}).AnyTimes()

	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/version", http.StatusOK},
		{http.MethodGet, "/api/prefs", http.StatusOK},
		{http.MethodGet, "/api/prefs/theme?type=string", http.StatusOK},
		{http.MethodDelete, "/api/prefs/theme", http.StatusNoContent},
		{http.MethodDelete, "/api/prefs", http.StatusNoContent},
		{http.MethodPost, "/api/prefs/flush", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ---- Key routes: 401 without token ----

func TestInit_KeyRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/keys"},
		{http.MethodPost, "/api/keys"},
		{http.MethodDelete, "/api/keys"},
		{http.MethodDelete, "/api/keys/0"},
		{http.MethodPut, "/api/keys/delimiter"},
		{http.MethodGet, "/api/keys/backup"},
		{http.MethodPost, "/api/keys/restore"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Key routes: pass with valid token ----

func TestInit_KeyRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/keys", http.StatusOK},
		{http.MethodDelete, "/api/keys", http.StatusNoContent},
		{http.MethodGet, "/api/keys/backup", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", validAuthHeader())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method  string
		path    string
		addAuth bool // /api/keys защищён auth — нужен токен чтобы дойти до 404
	}{
		{http.MethodGet, "/api/nonexistent", false},
		{http.MethodGet, "/totally/wrong", false},
		{http.MethodGet, "/api/prefs/a/b", false},
		{http.MethodPost, "/api/keys/unknown/deeper", true},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", validAuthHeader())
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 405 (CheckHTTPMethod) ----

func TestInit_WrongMethod_Returns405(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name      string
		method    string
		path      string
		addAuth   bool // маршруты под h.auth требуют токен чтобы дойти до MethodNotAllowed
		wantAllow []string
	}{
		{
			name:      "POST on /api/version (GET only)",
			method:    http.MethodPost,
			path:      "/api/version",
			wantAllow: []string{http.MethodGet},
		},
		{
			name:      "PUT on /api/prefs (list and clear only)",
			method:    http.MethodPut,
			path:      "/api/prefs",
			wantAllow: []string{http.MethodGet, http.MethodDelete},
		},
		{
			name:      "POST on /api/prefs/theme",
			method:    http.MethodPost,
			path:      "/api/prefs/theme",
			wantAllow: []string{http.MethodGet, http.MethodPut, http.MethodDelete},
		},
		{
			name:    "GET on /api/keys/delimiter",
			method:  http.MethodGet,
			path:    "/api/keys/delimiter",
			addAuth: true,
			// DELETE comes from the /{index} route
			wantAllow: []string{http.MethodPut, http.MethodDelete},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", validAuthHeader())
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.ElementsMatch(t, tt.wantAllow, rr.Header().Values("Allow"))
		})
	}
}

// ---- "flush" and "encrypt" stay usable as preference keys ----

// Статические маршруты POST /flush и POST /encrypt не должны перехватывать
// GET, PUT и DELETE для ключей с такими именами.
func TestInit_ActionNamesAreReadablePreferenceKeys(t *testing.T) {
	for _, key := range []string{"flush", "encrypt"} {
		t.Run(key, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.prefs.EXPECT().
				Get(gomock.Any(), models.GetPreferenceRequest{Key: key, Type: models.TypeString}).
				Return(models.TypedValue{Key: key, Type: models.TypeString, Value: "v"}, nil)
			m.prefs.EXPECT().
				Set(gomock.Any(), key, models.SetPreferenceRequest{Type: models.TypeString, Value: "v"}).
				Return(nil)
			m.prefs.EXPECT().Delete(gomock.Any(), key).Return(nil)
			router := h.Init()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/prefs/"+key+"?type=string", nil))
			assert.Equal(t, http.StatusOK, rr.Code)

			body := strings.NewReader(`{"type":"string","value":"v"}`)
			rr = httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/prefs/"+key, body))
			assert.Equal(t, http.StatusNoContent, rr.Code)

			rr = httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/prefs/"+key, nil))
			assert.Equal(t, http.StatusNoContent, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
