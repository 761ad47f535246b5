package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/eskrenkovic/storefront-admin/internal/config"
	"github.com/eskrenkovic/storefront-admin/internal/env"
	"github.com/eskrenkovic/storefront-admin/internal/format"
	"github.com/eskrenkovic/storefront-admin/internal/metrics"
	"github.com/eskrenkovic/storefront-admin/internal/modules/core"

	"go.uber.org/zap"
)

const bodyPreviewLength = 200

// ProbeResponse never contains configuration values, only whether they are
// set.
type ProbeResponse struct {
	Env        map[string]string `json:"env"`
	RestStatus int               `json:"restStatus,omitempty"`
	RestBody   string            `json:"restBody,omitempty"`
	Error      string            `json:"error,omitempty"`
}

type Prober struct {
	client *http.Client
	table  string
}

func NewProber(client *http.Client, table string) *Prober {
	return &Prober{client: client, table: table}
}

// HandleProbe reads the Supabase settings from the process environment at
// request time and performs one read-only request against the product table.
func (p *Prober) HandleProbe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := ProbeResponse{
		Env: map[string]string{
			config.SupabaseURLEnv:            env.Presence(config.SupabaseURLEnv),
			config.SupabaseServiceRoleKeyEnv: env.Presence(config.SupabaseServiceRoleKeyEnv),
		},
	}

	baseURL, _ := env.GetString(config.SupabaseURLEnv)
	key, _ := env.GetString(config.SupabaseServiceRoleKeyEnv)

	probeURL, err := restURL(baseURL, p.table)
	if err == nil {
		response.RestStatus, response.RestBody, err = p.probe(ctx, probeURL, key)
	}

	if err != nil {
		core.LogError(ctx, "diagnostic probe failed", zap.Error(err))
		response.Error = err.Error()
	}

	metrics.ProbeRequests.WithLabelValues(metrics.Outcome(err)).Inc()
	core.WriteOK(w, r, response)
}

func (p *Prober) probe(ctx context.Context, probeURL, key string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		// url.Error repeats the request URL, which must not be reported.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return 0, "", fmt.Errorf("probe request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Only the preview is reported, so there is no reason to read more.
	body, err := io.ReadAll(io.LimitReader(resp.Body, bodyPreviewLength*4))
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to read probe response: %w", err)
	}

	return resp.StatusCode, format.Head(string(body), bodyPreviewLength), nil
}

func restURL(baseURL, table string) (string, error) {
	if baseURL == "" {
		return "", fmt.Errorf("%s is not set", config.SupabaseURLEnv)
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid %s", config.SupabaseURLEnv)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid %s: missing scheme or host", config.SupabaseURLEnv)
	}

	u.Path += "/rest/v1/" + url.PathEscape(table)
	u.RawQuery = url.Values{"select": {"*"}, "limit": {"1"}}.Encode()

	return u.String(), nil
}
