package bookingapi

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"escapade/config"
	"escapade/infras/otel"
	"escapade/shared/constant"
	"escapade/shared/failure"
)

const maxErrorBodyBytes = 512

// Client is the JSON surface of the external booking/content API. All
// persistence and scheduling of sessions and bookings lives behind it.
type Client interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		baseURL: strings.TrimRight(cfg.External.BookingAPI.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(cfg.External.BookingAPI.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

func (c *clientImpl) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *clientImpl) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *clientImpl) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *clientImpl) do(ctx context.Context, method, path string, body, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".bookingapi")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"http.method": method,
		"http.path":   path,
	})

	var payload io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("booking API call failed")

		return failure.InternalError(fmt.Errorf("booking API unreachable: %w", err)) //nolint:wrapcheck
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		log.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Str("body", string(snippet)).
			Msg("booking API returned an error")

		return &failure.Failure{
			Code:    resp.StatusCode,
			Message: fmt.Sprintf("booking API: %s", strings.TrimSpace(string(snippet))),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode booking API response: %w", err)
	}

	return nil
}
