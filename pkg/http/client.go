package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single request when no custom *http.Client is used.
const DefaultTimeout = 30 * time.Second

// Client executes single HTTP requests. It never retries.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// FilePart is a file attached to a multipart/form-data body.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

type RequestOptions struct {
	Method  string
	URL     string
	Headers map[string]string
	// Body is sent as-is when it is []byte, string or io.Reader, encoded as a
	// form when it is url.Values, and JSON-encoded otherwise.
	Body    interface{}
	File    *FilePart
	Context context.Context
}

// Response is the raw result of a request.
type Response struct {
	StatusCode int
	// Status is the reason phrase without the numeric code, e.g. "Not Found".
	Status  string
	Headers http.Header
	Body    []byte
	URL     string
}

// ContentType returns the response Content-Type header.
func (r *Response) ContentType() string {
	return r.Headers.Get("Content-Type")
}

// NewClientWith wraps an existing *http.Client.
func NewClientWith(httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Do sends the request once and returns the response whatever its status.
// Only transport failures are returned as errors.
func (c *Client) Do(opts RequestOptions) (*Response, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := c.buildRequest(ctx, opts)
	if err != nil {
		c.logger.Error("Failed to build request", zap.Error(err), zap.String("method", opts.Method), zap.String("url", opts.URL))
		return nil, err
	}

	c.logger.Debug("Making HTTP request",
		zap.String("method", opts.Method),
		zap.String("url", opts.URL))

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("HTTP request failed",
			zap.Error(err),
			zap.String("method", opts.Method),
			zap.String("url", opts.URL))
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     reasonPhrase(httpResp),
		Headers:    httpResp.Header,
		Body:       body,
		URL:        opts.URL,
	}
	if httpResp.Request != nil && httpResp.Request.URL != nil {
		resp.URL = httpResp.Request.URL.String()
	}

	c.logger.Debug("HTTP request completed",
		zap.Int("status_code", resp.StatusCode),
		zap.String("method", opts.Method),
		zap.String("url", opts.URL))

	return resp, nil
}

func (c *Client) buildRequest(ctx context.Context, opts RequestOptions) (*http.Request, error) {
	var bodyReader io.Reader
	contentType := ""

	switch {
	case opts.File != nil:
		data, ct, err := encodeMultipart(opts.File)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(data)
		contentType = ct
	case opts.Body != nil:
		switch v := opts.Body.(type) {
		case []byte:
			bodyReader = bytes.NewReader(v)
		case string:
			bodyReader = strings.NewReader(v)
		case io.Reader:
			bodyReader = v
		case url.Values:
			bodyReader = strings.NewReader(v.Encode())
			contentType = "application/x-www-form-urlencoded"
		default:
			bodyJSON, err := json.Marshal(opts.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal request body: %w", err)
			}
			bodyReader = bytes.NewReader(bodyJSON)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set default headers
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	// Set custom headers; a multipart boundary is never overridden
	for key, value := range opts.Headers {
		if opts.File != nil && strings.EqualFold(key, "Content-Type") {
			continue
		}
		req.Header.Set(key, value)
	}

	return req, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func encodeMultipart(file *FilePart) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(file.FieldName), quoteEscaper.Replace(file.FileName)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, "", fmt.Errorf("failed to write multipart content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

func reasonPhrase(resp *http.Response) string {
	status := strings.TrimSpace(resp.Status)
	code := fmt.Sprintf("%d", resp.StatusCode)
	if strings.HasPrefix(status, code) {
		status = strings.TrimSpace(strings.TrimPrefix(status, code))
	}
	if status == "" {
		status = http.StatusText(resp.StatusCode)
	}
	return status
}
