package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/black301/quiz-system-client/internal/config"
	"github.com/black301/quiz-system-client/session"
	"github.com/black301/quiz-system-client/token"
)

// Endpoint paths, relative to the configured base URL.
const (
	loginPath         = "/auth/instructor-login/"
	passwordResetPath = "/auth/request-password-reset/"
	verifyOTPPath     = "/auth/verify-otp/"
	resetPasswordPath = "/auth/reset-password/"
)

// Service drives the credential lifecycle: sign-in, sign-out and the OTP
// password-recovery flow. A successful sign-in seeds the session store that
// the API client reads on every call. These endpoints are the only ones the
// platform serves unauthenticated, so the service talks plain HTTP instead
// of going through the bearer-injecting client.
type Service struct {
	baseURL    string
	logoutPath string
	store      session.Store
	httpClient *http.Client
	logger     zerolog.Logger
}

type Option func(*Service)

func WithHTTPClient(hc *http.Client) Option {
	return func(s *Service) {
		s.httpClient = hc
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(cfg config.EndpointConfig, store session.Store, options ...Option) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("[auth.NewService] config is required")
	}
	if store == nil {
		return nil, errors.New("[auth.NewService] store is required")
	}

	service := &Service{
		baseURL:    cfg.GetBaseURL(),
		logoutPath: cfg.GetLogoutPath(),
		store:      store,
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(service)
	}
	return service, nil
}

type loginResponse struct {
	Access  string           `json:"access"`
	Refresh string           `json:"refresh"`
	User    *session.Profile `json:"user"`
	Detail  string           `json:"detail"`
}

// Login authenticates an instructor. remember selects the long session
// duration class, mirroring the sign-in form's "remember me" box.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) (*session.Profile, error) {
	status, raw, err := s.postJSON(ctx, loginPath, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Login]")
	}

	var result loginResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrap(err, "[Service.Login] decode response")
	}

	if status < 200 || status >= 300 {
		if result.Detail != "" {
			return nil, errors.New(result.Detail)
		}
		return nil, InvalidCredentialsErr
	}
	if result.Access == "" || result.Refresh == "" {
		return nil, MissingTokensErr
	}

	class := session.Standard
	if remember {
		class = session.Remembered
	}
	if err := s.store.SetCredentials(session.Credentials{
		Access:  result.Access,
		Refresh: result.Refresh,
		User:    result.User,
	}, class); err != nil {
		return nil, errors.Wrap(err, "[Service.Login] store credentials")
	}

	if claims, err := token.Peek(result.Access); err == nil {
		s.logger.Debug().
			Str("email", email).
			Time("access_expires", claims.ExpiresAt).
			Bool("remembered", remember).
			Msg("signed in")
	}
	return result.User, nil
}

// Logout notifies the backend with the refresh token, best effort, then
// clears the local session. Calling it when already signed out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	if refresh := s.store.Refresh(); refresh != "" {
		if _, _, err := s.postJSON(ctx, s.logoutPath, map[string]string{"refresh": refresh}); err != nil {
			s.logger.Warn().Err(err).Msg("logout notification failed")
		}
	}
	if err := s.store.Clear(); err != nil {
		return errors.Wrap(err, "[Service.Logout] clear session")
	}
	return nil
}

// RequestPasswordReset starts the OTP recovery flow by mailing a code.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	return s.recoveryStep(ctx, passwordResetPath, map[string]string{"email": email})
}

// VerifyOTP checks the mailed code before the new password is accepted.
func (s *Service) VerifyOTP(ctx context.Context, email, otp string) error {
	return s.recoveryStep(ctx, verifyOTPPath, map[string]string{"email": email, "otp": otp})
}

// ResetPassword completes the recovery flow.
func (s *Service) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	return s.recoveryStep(ctx, resetPasswordPath, map[string]string{
		"email":        email,
		"otp":          otp,
		"new_password": newPassword,
	})
}

func (s *Service) recoveryStep(ctx context.Context, path string, payload map[string]string) error {
	status, raw, err := s.postJSON(ctx, path, payload)
	if err != nil {
		return errors.Wrapf(err, "[Service.recoveryStep] %s", path)
	}
	if status >= 200 && status < 300 {
		return nil
	}

	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Detail != "" {
		return errors.New(envelope.Detail)
	}
	return errors.Errorf("password recovery step failed with status %d", status)
}

func (s *Service) postJSON(ctx context.Context, path string, payload map[string]string) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "read response")
	}
	return resp.StatusCode, raw, nil
}
