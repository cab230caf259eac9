package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/utils"
	"github.com/MKhiriev/agil-auth/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	basePath string
	token    string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The base URL is normalised from cfg.HTTPAddress; account routes are
// resolved under cfg.BasePath.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		basePath: "/" + strings.Trim(cfg.BasePath, "/"),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register POSTs req to {base}/register and returns the created user id.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var created models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post(h.route("register"))
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("user_id", created.UserID).Msg("registered")
	return created.UserID, nil
}

// Login POSTs req to {base}/login and keeps the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&login).
		Post(h.route("login"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.Token)
	return login, nil
}

// Session GETs {base}/session with the stored bearer token.
func (h *httpServerAdapter) Session(ctx context.Context) (models.Session, error) {
	if h.token == "" {
		return models.Session{}, ErrNoToken
	}

	var session models.Session
	resp, err := h.authedRequest(ctx).
		SetResult(&session).
		Get(h.route("session"))
	if err != nil {
		return models.Session{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session.Token = h.token
	return session, nil
}

// Version GETs /version, which is served as plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Health GETs /health; a 503 maps to [ErrServiceUnavailable].
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token)
}

func (h *httpServerAdapter) route(name string) string {
	if h.basePath == "/" {
		return "/" + name
	}
	return h.basePath + "/" + name
}
