// Package bnet implements the Battle.net authenticator restore flow. A web
// session token is exchanged for an OAuth bearer token at the SSO endpoint,
// and the bearer token is used to retrieve the authenticator device secret
// from the authenticator REST API.
package bnet

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultSSOEndpoint is the Battle.net OAuth SSO token exchange endpoint.
	DefaultSSOEndpoint = "https://oauth.battle.net/oauth/sso"

	// DefaultRestoreBaseURL is the base URL of the authenticator REST API.
	// The restore call goes to its /device resource.
	DefaultRestoreBaseURL = "https://authenticator-rest-api.bnet-identity.blizzard.net/v1/authenticator"

	// DefaultTimeout bounds each of the two HTTP exchanges.
	DefaultTimeout = 30 * time.Second

	// clientID is the public OAuth client identifier used by the Battle.net
	// mobile app for the client_sso grant.
	//nolint:gosec // This is a public client identifier, not a credential.
	clientID = "baedda12fe054e4abdfc3ad7bdea970a"

	defaultUserAgent = "bnet-auth-export/0.1"

	// Restore error bodies tend to be longer than SSO ones, so the restore
	// diagnostic keeps more of the raw response.
	ssoBodyLimit     = 500
	restoreBodyLimit = 1000
)

// Client talks to the Battle.net SSO and authenticator REST endpoints.
type Client struct {
	// SSOEndpoint and RestoreBaseURL may be overridden before the first
	// request, mainly to point tests at a local server.
	SSOEndpoint    string
	RestoreBaseURL string
	UserAgent      string

	client *http.Client
}

// NewClient returns a Client using the production Battle.net endpoints. A
// zero or negative timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		SSOEndpoint:    DefaultSSOEndpoint,
		RestoreBaseURL: DefaultRestoreBaseURL,
		UserAgent:      defaultUserAgent,
		client:         &http.Client{Timeout: timeout},
	}
}

// Session holds the bearer token obtained from ExchangeSessionToken. The
// restore call is only reachable through a Session, so it cannot run before
// the token exchange has succeeded.
type Session struct {
	client      *Client
	bearerToken string
}

type ssoResponse struct {
	AccessToken string `json:"access_token"`
}

type restoreRequest struct {
	Serial      string `json:"serial"`
	RestoreCode string `json:"restoreCode"`
}

type restoreResponse struct {
	DeviceSecret string `json:"deviceSecret"`
}

// ExchangeSessionToken exchanges a Battle.net web session token for an OAuth
// bearer token scoped to the authenticator API. The session token may carry
// the "ST="/"st=" cookie prefix; it is normalized before being sent.
func (c *Client) ExchangeSessionToken(sessionToken string) (*Session, error) {
	token := NormalizeSessionToken(sessionToken)
	if token == "" {
		return nil, errors.New("session token is required")
	}

	data := url.Values{}
	data.Set("client_id", clientID)
	data.Set("grant_type", "client_sso")
	data.Set("scope", "auth.authenticator")
	data.Set("token", token)

	req, err := http.NewRequest("POST", c.SSOEndpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrapf(err, "create POST %s request failed", c.SSOEndpoint)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	c.setDefaultHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed for Battle.net SSO token exchange")
	}

	var parsed ssoResponse
	if err := decodeJSONResponse(resp, "SSO token exchange", ssoBodyLimit, &parsed); err != nil {
		return nil, err
	}

	accessToken := strings.TrimSpace(parsed.AccessToken)
	if accessToken == "" {
		return nil, errors.New("SSO response did not include access_token")
	}

	return &Session{client: c, bearerToken: accessToken}, nil
}

// RestoreDeviceSecret retrieves the hex-encoded device secret for the given
// authenticator serial using its restore code. Serial and restore code are
// sent exactly as given.
func (s *Session) RestoreDeviceSecret(serial, restoreCode string) (string, error) {
	if s == nil || s.bearerToken == "" {
		return "", errors.New("bearer token not set; SSO token exchange must run first")
	}
	if strings.TrimSpace(serial) == "" {
		return "", errors.New("authenticator serial is required")
	}
	if strings.TrimSpace(restoreCode) == "" {
		return "", errors.New("restore code is required")
	}

	body, err := json.Marshal(restoreRequest{Serial: serial, RestoreCode: restoreCode})
	if err != nil {
		return "", errors.Wrap(err, "error marshaling restore request")
	}

	restoreURL := s.client.RestoreBaseURL + "/device"
	req, err := http.NewRequest("POST", restoreURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrapf(err, "create POST %s request failed", restoreURL)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.bearerToken)
	s.client.setDefaultHeaders(req)

	resp, err := s.client.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "request failed for %s", restoreURL)
	}

	var parsed restoreResponse
	if err := decodeJSONResponse(resp, "restore request", restoreBodyLimit, &parsed); err != nil {
		return "", err
	}

	deviceSecret := strings.TrimSpace(parsed.DeviceSecret)
	if deviceSecret == "" {
		return "", errors.New("restore response missing deviceSecret")
	}
	return deviceSecret, nil
}

func (c *Client) setDefaultHeaders(req *http.Request) {
	// Prevents re-use of TCP connections between requests.
	req.Close = true
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
}

// decodeJSONResponse validates the response and decodes its JSON body into v.
// Status and content type are checked before decoding so that an HTML error
// page from a load balancer yields a readable diagnostic with the truncated
// raw body instead of a parse error.
func decodeJSONResponse(resp *http.Response, label string, bodyLimit int, v interface{}) error {
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed reading response body")
	}
	body := string(b)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("%s failed with HTTP %d. Response: %s", label, resp.StatusCode, truncate(body, bodyLimit))
	}
	if !strings.Contains(strings.ToLower(contentType), "json") {
		if contentType == "" {
			contentType = "(missing)"
		}
		return errors.Errorf("%s returned non-JSON content (Content-Type: %s). Response: %s", label, contentType, truncate(body, bodyLimit))
	}
	if err := json.Unmarshal(b, v); err != nil {
		return errors.Wrapf(err, "failed to parse %s JSON response", label)
	}
	return nil
}

// truncate limits s to max characters, not bytes, so a multibyte body is
// never cut mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// NormalizeSessionToken trims the value and strips one leading "ST=" or
// "st=" cookie prefix. A bare token is returned unchanged.
func NormalizeSessionToken(input string) string {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "ST=") || strings.HasPrefix(trimmed, "st=") {
		trimmed = trimmed[3:]
	}
	return strings.TrimSpace(trimmed)
}
