package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/sessionview/internal/client/models"
	"github.com/dmitrijs2005/sessionview/internal/common"
	"github.com/dmitrijs2005/sessionview/internal/logging"
	"github.com/google/uuid"
)

// maxResponseSize caps how much of a response body is read. Listings are
// rendered HTML and can be large, but never megabytes.
const maxResponseSize = 4 << 20

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPClient builds a client for the service at baseURL. A zero timeout
// means requests wait until the context is done.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *HTTPClient) Identify(ctx context.Context, token string) (models.Identity, error) {
	body, err := c.do(ctx, http.MethodGet, PathIdentifyUser, token, nil)
	if err != nil {
		return models.Identity{}, err
	}

	var identity models.Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return models.Identity{}, fmt.Errorf("failed to decode identity: %w", err)
	}
	return identity, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	body, err := c.do(ctx, http.MethodPost, PathRegisterUser, "", req)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// SignIn returns the access token issued by the server. Persisting it is the
// caller's job.
func (c *HTTPClient) SignIn(ctx context.Context, req models.SignInRequest) (string, error) {
	body, err := c.do(ctx, http.MethodPost, PathSignInUser, "", req)
	if err != nil {
		return "", err
	}

	var resp models.SignInResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode sign-in response: %w", err)
	}
	if resp.AccessToken == "" {
		return "", errors.New("sign-in response has no access token")
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, patch models.ProfilePatch) (string, error) {
	body, err := c.do(ctx, http.MethodPost, PathUpdateUser, token, patch)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, token string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, PathAllUsers, token, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *HTTPClient) ChangeUserStatus(ctx context.Context, token string, uid string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, PathChangeUserStatus, token, models.StatusChangeRequest{UID: uid})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// do sends one request and returns the body of a 2xx answer. payload, when
// non-nil, is sent as JSON; token, when non-empty, goes into the credential
// header.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.CredentialHeaderName, token)
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	log.Debug(ctx, "sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Warn(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn(ctx, "request rejected", "status", resp.StatusCode)
		return nil, &ServerError{Status: resp.StatusCode, Message: string(body)}
	}

	log.Debug(ctx, "request completed", "status", resp.StatusCode)
	return body, nil
}
