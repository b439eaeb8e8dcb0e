package adapter

import (
	"context"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// preferencesAdapter implements service.PreferenceService over /api/prefs.
type preferencesAdapter struct {
	*httpAdapter
}

func prefPath(key string) string {
	return "/api/prefs/" + url.PathEscape(key)
}

func (p *preferencesAdapter) List(ctx context.Context) ([]models.PreferenceEntry, error) {
	var entries []models.PreferenceEntry
	_, err := p.do(p.request(ctx).SetResult(&entries),
		resty.MethodGet, "/api/prefs", "preferencesAdapter.List")
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (p *preferencesAdapter) Get(ctx context.Context, req models.GetPreferenceRequest) (models.TypedValue, error) {
	var value models.TypedValue

	r := p.request(ctx).
		SetQueryParam("type", string(req.Type)).
		SetResult(&value)
	if req.Encrypted {
		r.SetQueryParam("encrypted", "true").
			SetQueryParam("key_index", strconv.Itoa(req.KeyIndex))
	}

	if _, err := p.do(r, resty.MethodGet, prefPath(req.Key), "preferencesAdapter.Get"); err != nil {
		return models.TypedValue{}, err
	}
	return value, nil
}

func (p *preferencesAdapter) Set(ctx context.Context, key string, req models.SetPreferenceRequest) error {
	_, err := p.do(p.request(ctx).SetBody(req),
		resty.MethodPut, prefPath(key), "preferencesAdapter.Set")
	return err
}

func (p *preferencesAdapter) Delete(ctx context.Context, key string) error {
	_, err := p.do(p.request(ctx), resty.MethodDelete, prefPath(key), "preferencesAdapter.Delete")
	return err
}

func (p *preferencesAdapter) Clear(ctx context.Context) error {
	_, err := p.do(p.request(ctx), resty.MethodDelete, "/api/prefs", "preferencesAdapter.Clear")
	return err
}

func (p *preferencesAdapter) Flush(ctx context.Context) error {
	_, err := p.do(p.request(ctx), resty.MethodPost, "/api/prefs/flush", "preferencesAdapter.Flush")
	return err
}

func (p *preferencesAdapter) Encrypt(ctx context.Context, req models.EncryptRequest) (string, error) {
	var resp models.EncryptResponse
	_, err := p.do(p.request(ctx).SetBody(req).SetResult(&resp),
		resty.MethodPost, "/api/prefs/encrypt", "preferencesAdapter.Encrypt")
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
