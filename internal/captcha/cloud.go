package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// codeSuccess is the provider's only passing result code. Every other code,
// malformed body, or transport failure counts as a failed verification.
const codeSuccess = 1

// CloudVerifier checks proofs against the external captcha provider's
// result-lookup endpoint.
type CloudVerifier struct {
	verifyURL string
	appID     string
	appSecret string
	client    *http.Client
	log       zerolog.Logger
}

// NewCloudVerifier creates a CloudVerifier for the given provider endpoint
// and credentials.
func NewCloudVerifier(verifyURL, appID, appSecret string, log zerolog.Logger) *CloudVerifier {
	return &CloudVerifier{
		verifyURL: verifyURL,
		appID:     appID,
		appSecret: appSecret,
		client:    &http.Client{Timeout: 5 * time.Second},
		log:       log.With().Str("component", "captcha_cloud").Logger(),
	}
}

type cloudResult struct {
	CaptchaCode int    `json:"CaptchaCode"`
	CaptchaMsg  string `json:"CaptchaMsg"`
}

// Verify submits the proof to the provider and returns true only for the
// success code. Transport and provider errors are logged, never surfaced:
// the caller sees a plain failed verification.
func (v *CloudVerifier) Verify(ctx context.Context, proof Proof) bool {
	form := url.Values{}
	form.Set("CaptchaAppId", v.appID)
	form.Set("AppSecretKey", v.appSecret)
	form.Set("Ticket", proof.Ticket)
	form.Set("Randstr", proof.Randstr)
	form.Set("UserIp", proof.UserIP)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		v.log.Error().Err(err).Msg("build verify request")
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		v.log.Warn().Err(err).Msg("captcha provider unreachable")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.Warn().Int("status", resp.StatusCode).Msg("captcha provider returned non-200")
		return false
	}

	var result cloudResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		v.log.Warn().Err(err).Msg("decode captcha provider response")
		return false
	}

	if result.CaptchaCode != codeSuccess {
		v.log.Debug().
			Int("code", result.CaptchaCode).
			Str("msg", result.CaptchaMsg).
			Msg("captcha verification rejected")
		return false
	}

	return true
}
