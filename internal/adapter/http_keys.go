package adapter

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-prefs-keeper/models"
)

// keysAdapter implements service.KeyService over /api/keys. Every call
// carries the configured admin token.
type keysAdapter struct {
	*httpAdapter
}

func (k *keysAdapter) List(ctx context.Context) (models.KeysInfo, error) {
	var info models.KeysInfo
	if _, err := k.do(k.authedRequest(ctx).SetResult(&info),
		resty.MethodGet, "/api/keys", "keysAdapter.List"); err != nil {
		return models.KeysInfo{}, err
	}
	return info, nil
}

func (k *keysAdapter) Add(ctx context.Context, req models.AddKeyRequest) (models.AddKeyResponse, error) {
	var resp models.AddKeyResponse
	if _, err := k.do(k.authedRequest(ctx).SetBody(req).SetResult(&resp),
		resty.MethodPost, "/api/keys", "keysAdapter.Add"); err != nil {
		return models.AddKeyResponse{}, err
	}
	return resp, nil
}

func (k *keysAdapter) Remove(ctx context.Context, index int) error {
	_, err := k.do(k.authedRequest(ctx),
		resty.MethodDelete, "/api/keys/"+strconv.Itoa(index), "keysAdapter.Remove")
	return err
}

func (k *keysAdapter) Clear(ctx context.Context) error {
	_, err := k.do(k.authedRequest(ctx), resty.MethodDelete, "/api/keys", "keysAdapter.Clear")
	return err
}

func (k *keysAdapter) SetDelimiter(ctx context.Context, delimiter string) error {
	_, err := k.do(k.authedRequest(ctx).SetBody(models.DelimiterRequest{Delimiter: delimiter}),
		resty.MethodPut, "/api/keys/delimiter", "keysAdapter.SetDelimiter")
	return err
}

// Backup downloads the backup file and copies it to w.
func (k *keysAdapter) Backup(ctx context.Context, w io.Writer) error {
	resp, err := k.do(k.authedRequest(ctx).SetHeader("Accept", "text/csv"),
		resty.MethodGet, "/api/keys/backup", "keysAdapter.Backup")
	if err != nil {
		return err
	}
	if _, err = w.Write(resp.Body()); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// Restore uploads the backup read from r.
func (k *keysAdapter) Restore(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read backup: %w", err)
	}

	var resp models.RestoreResponse
	if _, err = k.do(k.authedRequest(ctx).
		SetHeader("Content-Type", "text/csv").
		SetBody(data).
		SetResult(&resp),
		resty.MethodPost, "/api/keys/restore", "keysAdapter.Restore"); err != nil {
		return 0, err
	}
	return resp.Restored, nil
}
