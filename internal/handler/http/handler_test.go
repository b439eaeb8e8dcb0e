package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/mock"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
)

// ─────────────────────────────────────────────
// Test fixture
// ─────────────────────────────────────────────

type handlerMocks struct {
	prefs   *mock.MockPreferenceService
	keys    *mock.MockKeyService
	tokens  *mock.MockTokenService
	appInfo *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are all gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := handlerMocks{
		prefs:   mock.NewMockPreferenceService(ctrl),
		keys:    mock.NewMockKeyService(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		PreferenceService: m.prefs,
		KeyService:        m.keys,
		TokenService:      m.tokens,
		AppInfoService:    m.appInfo,
	}

	return NewHandler(svcs, 0, logger.Nop()), m
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, 0, logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_StoresFields(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, 5*time.Second, log)

	assert.Equal(t, svc, h.services)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, 0, logger.Nop())
	h2 := NewHandler(&service.Services{}, 0, logger.Nop())

	assert.NotSame(t, h1, h2)
}
