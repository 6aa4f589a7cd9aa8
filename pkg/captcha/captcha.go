package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ora-booking/pkg/utils"
)

var ErrVerificationFailed = errors.New("captcha verification failed")

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks a bot-mitigation token submitted with public forms.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

type RecaptchaVerifier struct {
	cfg    utils.CaptchaConfig
	client *http.Client
}

func NewRecaptchaVerifier(cfg utils.CaptchaConfig) *RecaptchaVerifier {
	return &RecaptchaVerifier{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if !v.cfg.Enabled {
		return nil
	}
	if token == "" {
		return ErrVerificationFailed
	}

	form := url.Values{}
	form.Set("secret", v.cfg.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("verify captcha: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode captcha response: %w", err)
	}

	if !result.Success {
		return ErrVerificationFailed
	}
	return nil
}
