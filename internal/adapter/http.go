package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/internal/utils"
)

// Adapters bundles the remote implementations of the prefsd services.
type Adapters struct {
	Preferences service.PreferenceService
	Keys        service.KeyService
	Version     VersionAdapter
}

type httpAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPAdapters builds REST adapters against cfg.HTTPAddress. cfg.Token
// is sent as a bearer token on key administration requests.
//
// Returns ErrInvalidAddress if the address is empty or can't be parsed.
func NewHTTPAdapters(cfg config.Adapter, logger *logger.Logger) (*Adapters, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	base := &httpAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		token:  strings.TrimSpace(cfg.Token),
		logger: logger,
	}

	return &Adapters{
		Preferences: &preferencesAdapter{base},
		Keys:        &keysAdapter{base},
		Version:     base,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.WithToken(h.token).SetContext(ctx)
}

// do runs req and maps a failed status to the package sentinels.
func (h *httpAdapter) do(req *resty.Request, method, path, funcName string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", funcName).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s request: %w", funcName, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", funcName).Int("status", resp.StatusCode()).Send()
		return resp, err
	}
	return resp, nil
}

func (h *httpAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.do(h.request(ctx).SetHeader("Accept", "text/plain"),
		resty.MethodGet, "/api/version", "httpAdapter.ServerVersion")
	if err != nil {
		return "", err
	}
	return resp.String(), nil
}
