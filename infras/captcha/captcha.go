package captcha

//go:generate go run go.uber.org/mock/mockgen -source=./captcha.go -destination=./mocks/captcha_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"escapade/config"
	"escapade/infras/otel"
	"escapade/shared/constant"
)

const verifyTimeout = 10 * time.Second

// Verifier checks a client-side captcha token with the provider before any
// email is sent on a visitor's behalf.
type Verifier interface {
	Verify(ctx context.Context, token string) (ok bool, err error)
}

type verifierImpl struct {
	config *config.Config
	http   *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Verifier {
	return &verifierImpl{
		config: cfg,
		http:   &http.Client{Timeout: verifyTimeout},
		otel:   ot,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *verifierImpl) Verify(ctx context.Context, token string) (ok bool, err error) {
	ctx, scope := v.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".captcha.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	form := url.Values{}
	form.Set("secret", v.config.External.Captcha.SecretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.config.External.Captcha.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to build captcha verify request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	resp, err := v.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("captcha verification call failed")

		return false, fmt.Errorf("captcha verification call failed: %w", err)
	}
	defer resp.Body.Close()

	var result verifyResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode captcha verify response: %w", err)
	}

	if !result.Success {
		log.Warn().Strs("error_codes", result.ErrorCodes).Msg("captcha verification rejected")
	}

	return result.Success, nil
}
