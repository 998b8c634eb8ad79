// Package linkedin talks to the LinkedIn OAuth and UGC post APIs.
package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"

	"github.com/heartmarshall/postcal-backend/internal/config"
	"github.com/heartmarshall/postcal-backend/internal/domain"
)

const (
	restliVersion   = "2.0.0"
	defaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 4 << 10
)

var scopes = []string{"openid", "profile", "email", "w_member_social"}

// Client exchanges OAuth codes and publishes member posts.
type Client struct {
	oauth      *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a LinkedIn client from config.LinkedInConfig.
func NewClient(cfg config.LinkedInConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     endpoint(cfg.AuthBaseURL),
			Scopes:       scopes,
		},
		apiBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "linkedin"),
	}
}

// endpoint returns linkedin.Endpoint, rebased onto authBaseURL when one is
// configured.
func endpoint(authBaseURL string) oauth2.Endpoint {
	ep := linkedin.Endpoint
	base := strings.TrimRight(authBaseURL, "/")
	if base == "" {
		return ep
	}
	ep.AuthURL = base + "/oauth/v2/authorization"
	ep.TokenURL = base + "/oauth/v2/accessToken"
	return ep
}

// TokenGrant is the result of a successful code exchange.
type TokenGrant struct {
	AccessToken string
	ExpiresIn   time.Duration
}

type userinfoResponse struct {
	Sub string `json:"sub"`
}

// apiErrorResponse is the REST.li error envelope.
type apiErrorResponse struct {
	Message     string `json:"message"`
	Status      int    `json:"status"`
	ServiceCode int    `json:"serviceErrorCode"`
}

type postResponse struct {
	ID string `json:"id"`
}

// AuthorizationURL builds the consent screen URL the user is sent to.
func (c *Client) AuthorizationURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for an access token.
// A rejected code is a validation error; an unreachable or failing
// LinkedIn is domain.ErrExternal. Codes are single-use, so the exchange
// is attempted exactly once.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenGrant, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if !errors.As(err, &rerr) || rerr.Response == nil {
			c.log.ErrorContext(ctx, "linkedin token exchange failed", slog.String("error", err.Error()))
			return nil, &domain.PublishError{Reason: "linkedin unavailable"}
		}

		status := rerr.Response.StatusCode
		c.log.ErrorContext(ctx, "linkedin token exchange failed",
			slog.Int("status", status),
			slog.String("error", rerr.ErrorCode))

		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			msg := rerr.ErrorDescription
			if msg == "" {
				msg = "invalid or expired code"
			}
			return nil, domain.NewValidationError("code", msg)
		}
		return nil, &domain.PublishError{Reason: "linkedin unavailable", StatusCode: status}
	}

	expiresIn := time.Duration(tok.ExpiresIn) * time.Second
	if expiresIn <= 0 && !tok.Expiry.IsZero() {
		expiresIn = time.Until(tok.Expiry)
	}

	return &TokenGrant{
		AccessToken: tok.AccessToken,
		ExpiresIn:   expiresIn,
	}, nil
}

// MemberID returns the OpenID subject of the token owner, used as the
// person URN when posting.
func (c *Client) MemberID(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/v2/userinfo", nil)
	if err != nil {
		return "", fmt.Errorf("create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "linkedin userinfo failed", slog.String("error", err.Error()))
		return "", &domain.PublishError{Reason: "linkedin unavailable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "linkedin userinfo failed", slog.Int("status", resp.StatusCode))
		return "", c.apiError(resp)
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Sub == "" {
		return "", &domain.PublishError{Reason: "failed to fetch linkedin profile", StatusCode: resp.StatusCode}
	}
	return info.Sub, nil
}

// Publish creates a public text post authored by memberID and returns
// the post URN. A non-2xx answer becomes a *domain.PublishError carrying
// LinkedIn's message.
func (c *Client) Publish(ctx context.Context, accessToken, memberID, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.NewValidationError("text", "required")
	}

	payload, err := json.Marshal(map[string]any{
		"author":         "urn:li:person:" + memberID,
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]any{
			"com.linkedin.ugc.ShareContent": map[string]any{
				"shareCommentary":    map[string]string{"text": text},
				"shareMediaCategory": "NONE",
			},
		},
		"visibility": map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+"/v2/ugcPosts", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create post request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", restliVersion)

	// ugcPosts is not idempotent, so it gets a single attempt.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "linkedin publish failed", slog.String("error", err.Error()))
		return "", &domain.PublishError{Reason: "linkedin unavailable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		perr := c.apiError(resp)
		c.log.ErrorContext(ctx, "linkedin publish failed",
			slog.Int("status", resp.StatusCode),
			slog.String("reason", perr.Reason))
		return "", perr
	}

	postID := resp.Header.Get("X-RestLi-Id")
	var pr postResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err == nil && pr.ID != "" {
		postID = pr.ID
	}

	c.log.InfoContext(ctx, "linkedin post published", slog.String("post_id", postID))
	return postID, nil
}

// apiError converts a failed API response into a PublishError.
func (c *Client) apiError(resp *http.Response) *domain.PublishError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))

	var er apiErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return &domain.PublishError{Reason: er.Message, StatusCode: resp.StatusCode}
	}

	reason := http.StatusText(resp.StatusCode)
	if resp.StatusCode == http.StatusUnauthorized {
		reason = "access token expired or revoked"
	}
	return &domain.PublishError{Reason: reason, StatusCode: resp.StatusCode}
}

// doWithRetry executes a bodiless, idempotent request (GET) with retry
// logic. Retries once on 5xx errors or network errors after retryDelay.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return nil, fmt.Errorf("doWithRetry: %s is not retryable", req.Method)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case <-time.After(c.retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return c.httpClient.Do(req.Clone(ctx))
}
