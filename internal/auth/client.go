package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Skpow1234/oxilauncher/internal/util"
	"github.com/rs/zerolog"
)

// Default API paths on the lobby server.
const (
	DefaultLoginEndpoint    = "/sapphire-api/lobby/login"
	DefaultRegisterEndpoint = "/sapphire-api/lobby/createAccount"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 15 * time.Second

// maxResponseBytes caps how much of a reply body is read.
const maxResponseBytes = 1 << 20

// RejectedError is returned when the server answers with a non-2xx status.
type RejectedError struct {
	Status int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: status %d %s", util.ErrAuthRejected, e.Status, http.StatusText(e.Status))
}

// Unwrap lets errors.Is match both ErrAuthRejected and ErrAuth.
func (e *RejectedError) Unwrap() []error {
	return []error{util.ErrAuthRejected, util.ErrAuth}
}

// Client posts credentials to the lobby API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  zerolog.Logger
}

// New creates a client for scheme://host:port with the default timeout.
func New(scheme, host string, port int) *Client {
	return &Client{
		BaseURL: fmt.Sprintf("%s://%s", scheme, net.JoinHostPort(host, strconv.Itoa(port))),
		HTTP:    &http.Client{Timeout: DefaultTimeout},
		Logger:  zerolog.Nop(),
	}
}

// Login authenticates an existing account.
func (c *Client) Login(ctx context.Context, creds Credentials) (Session, error) {
	if creds.Endpoint == "" {
		creds.Endpoint = DefaultLoginEndpoint
	}
	return c.send(ctx, creds)
}

// Register creates an account. The reply carries a session like Login does.
func (c *Client) Register(ctx context.Context, creds Credentials) (Session, error) {
	if creds.Endpoint == "" {
		creds.Endpoint = DefaultRegisterEndpoint
	}
	return c.send(ctx, creds)
}

func (c *Client) send(ctx context.Context, creds Credentials) (Session, error) {
	body, err := json.Marshal(loginRequest{Username: creds.Username, Pass: creds.Password})
	if err != nil {
		return Session{}, fmt.Errorf("%w: encode request: %w", util.ErrAuth, err)
	}

	url := c.BaseURL + creds.Endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("%w: build request: %w", util.ErrAuth, err)
	}
	// The lobby API reads a JSON body but expects the form content type.
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	c.Logger.Debug().Str("url", url).Str("username", creds.Username).Msg("posting credentials")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("%w: send request: %w", util.ErrAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return Session{}, &RejectedError{Status: resp.StatusCode}
	}

	var lr loginResponse
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err := dec.Decode(&lr); err != nil {
		return Session{}, fmt.Errorf("%w: %w: %w", util.ErrAuth, util.ErrMalformedResponse, err)
	}
	if lr.SID == "" {
		return Session{}, fmt.Errorf("%w: %w: missing sId", util.ErrAuth, util.ErrMalformedResponse)
	}

	c.Logger.Debug().
		Str("lobby_host", lr.LobbyHost).
		Str("frontier_host", lr.FrontierHost).
		Msg("session issued")
	return newSession(lr), nil
}

// IsRejected reports the HTTP status of a server rejection, if err is one.
func IsRejected(err error) (int, bool) {
	var re *RejectedError
	if errors.As(err, &re) {
		return re.Status, true
	}
	return 0, false
}
