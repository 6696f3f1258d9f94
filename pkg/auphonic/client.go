package auphonic

import (
	"net/http"
	"sync"
	"time"

	httpclient "github.com/akordowski/auphonic-go/pkg/http"
	"github.com/akordowski/auphonic-go/pkg/precondition"
	"go.uber.org/zap"
)

// DefaultBaseURL is the Auphonic API origin.
const DefaultBaseURL = "https://auphonic.com"

const defaultUserAgent = "auphonic-go"

// Client is the main client for the Auphonic API
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	userAgent    string

	httpClient *httpclient.Client
	hooks      Hooks
	logger     *zap.Logger

	session *session
}

// session holds the access token with thread-safe access
type session struct {
	mu          sync.RWMutex
	accessToken string
}

type clientOptions struct {
	httpClient *http.Client
	logger     *zap.Logger
	hooks      Hooks
	timeout    time.Duration
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// WithHTTPClient uses a custom *http.Client for all requests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithHooks registers request/response observers.
func WithHooks(hooks Hooks) ClientOption {
	return func(o *clientOptions) {
		o.hooks = hooks
	}
}

// WithTimeout sets the per-request timeout. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// New creates a client for the given OAuth application credentials. The
// client starts without a session; call Authenticate or
// AuthenticateWithPassword before using account operations.
func New(clientID, clientSecret string, opts ...ClientOption) (*Client, error) {
	if err := precondition.First(
		precondition.NotBlank(clientID, "clientId"),
		precondition.NotBlank(clientSecret, "clientSecret"),
	); err != nil {
		return nil, err
	}

	o := clientOptions{
		timeout:   httpclient.DefaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:      DefaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    o.userAgent,
		httpClient:   httpclient.NewClientWith(o.httpClient, o.logger),
		hooks:        o.hooks,
		logger:       o.logger,
		session:      &session{},
	}, nil
}

// Authenticate starts a session with an access token obtained elsewhere.
func (c *Client) Authenticate(accessToken string) error {
	if err := precondition.NotBlank(accessToken, "accessToken"); err != nil {
		return err
	}
	c.setAccessToken(accessToken)
	return nil
}

// AccessToken returns the session token, or "" without a session.
func (c *Client) AccessToken() string {
	c.session.mu.RLock()
	defer c.session.mu.RUnlock()
	return c.session.accessToken
}

func (c *Client) ClientID() string {
	return c.clientID
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) setAccessToken(token string) {
	c.session.mu.Lock()
	c.session.accessToken = token
	c.session.mu.Unlock()
	c.logger.Info("Session access token set")
}

// checkAuthentication fails locally when there is no session.
func (c *Client) checkAuthentication() error {
	if c.AccessToken() == "" {
		return &AuthenticationError{Message: msgNoCredentials}
	}
	return nil
}
