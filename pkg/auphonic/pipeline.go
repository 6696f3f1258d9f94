package auphonic

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	httpclient "github.com/akordowski/auphonic-go/pkg/http"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const jsonContentType = "application/json; charset=utf-8"

// Envelope is the wrapper around every API response body.
type Envelope struct {
	Data         json.RawMessage `json:"data"`
	ErrorCode    *string         `json:"error_code"`
	ErrorMessage *string         `json:"error_message"`
	FormErrors   json.RawMessage `json:"form_errors"`
	StatusCode   int             `json:"status_code"`
}

func (e *Envelope) hasError() bool {
	return e.ErrorCode != nil || e.ErrorMessage != nil
}

// execute runs req and decodes the body into out, which is either an
// *Envelope or a concrete payload such as *OAuthToken.
func (c *Client) execute(ctx context.Context, req *Request, auth AuthKind, body BodyKind, out any) error {
	headers := make(map[string]string, len(req.Headers)+2)
	for k, v := range req.Headers {
		headers[k] = v
	}
	headers["User-Agent"] = c.userAgent

	switch auth {
	case AuthBasic:
		credentials := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
		headers["Authorization"] = "Basic " + credentials
	case AuthBearer:
		token := c.AccessToken()
		if token == "" {
			return &AuthenticationError{Message: msgNoCredentials}
		}
		headers["Authorization"] = "Bearer " + token
	}

	opts := httpclient.RequestOptions{
		Method:  req.Method,
		Headers: headers,
		Context: ctx,
	}

	if req.File != nil {
		opts.File = &httpclient.FilePart{
			FieldName:   req.File.FieldName,
			FileName:    req.File.FileName,
			ContentType: mime.TypeByExtension(filepath.Ext(req.File.FileName)),
			Content:     req.File.Content,
		}
	} else if body == BodyJSON {
		payload := req.RawBody
		if payload == nil && req.Body != nil {
			b, err := json.Marshal(req.Body)
			if err != nil {
				c.logger.Error("Failed to marshal request body", zap.Error(err), zap.String("resource", req.Resource))
				return fmt.Errorf("failed to marshal request body: %w", err)
			}
			payload = b
		}
		if payload != nil {
			headers["Content-Type"] = jsonContentType
			opts.Body = payload
		}
	}

	var query url.Values
	if len(req.Params) > 0 {
		values := url.Values{}
		for _, p := range req.Params {
			values.Add(p.Name, p.Value)
		}
		if req.paramsInQuery() {
			query = values
		} else {
			opts.Body = values
		}
	}

	endpoint, err := httpclient.BuildURL(c.baseURL, req.Resource, req.Segments, query)
	if err != nil {
		c.logger.Error("Failed to build URL", zap.Error(err), zap.String("resource", req.Resource))
		return fmt.Errorf("failed to build URL: %w", err)
	}
	opts.URL = endpoint

	requestID := uuid.New()
	c.hooks.sendRequest(RequestEvent{
		ID:         requestID,
		Method:     req.Method,
		Resource:   req.Resource,
		URL:        endpoint,
		Parameters: redactParams(req.Params),
		Headers:    redactHeaders(headers),
	})
	c.logger.Debug("Sending request",
		zap.String("request_id", requestID.String()),
		zap.String("method", req.Method),
		zap.String("resource", req.Resource),
		zap.String("auth", auth.String()))

	resp, err := c.httpClient.Do(opts)
	if err != nil {
		c.logger.Error("Request failed",
			zap.Error(err),
			zap.String("request_id", requestID.String()),
			zap.String("resource", req.Resource))
		return fmt.Errorf("failed to execute %s %s: %w", req.Method, req.Resource, err)
	}

	c.hooks.receiveResponse(ResponseEvent{
		RequestID:       requestID,
		ContentType:     resp.ContentType(),
		ContentLength:   int64(len(resp.Body)),
		ContentEncoding: resp.Headers.Get("Content-Encoding"),
		Content:         string(resp.Body),
		ResponseURI:     resp.URL,
		StatusCode:      resp.StatusCode,
		Status:          resp.Status,
		Server:          resp.Headers.Get("Server"),
	})
	c.logger.Debug("Received response",
		zap.String("request_id", requestID.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.String("content_type", resp.ContentType()),
		zap.Int("content_length", len(resp.Body)))

	if err := classifyResponse(resp, out); err != nil {
		c.logger.Warn("API call failed",
			zap.String("request_id", requestID.String()),
			zap.String("resource", req.Resource),
			zap.Int("status_code", resp.StatusCode),
			zap.String("error_kind", Classify(err).String()),
			zap.Error(err))
		return err
	}
	return nil
}

// classifyResponse decodes resp into out and turns failed calls into
// *AuthenticationError or *APIError.
func classifyResponse(resp *httpclient.Response, out any) error {
	content := string(resp.Body)
	authStatus := resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized
	empty := len(bytes.TrimSpace(resp.Body)) == 0

	decoded := false
	if !empty {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			if authStatus {
				if authErr := decodeAuthError(resp.Body); authErr != nil {
					authErr.Err = err
					return authErr
				}
			}
			return &APIError{
				ErrorMessage: err.Error(),
				StatusCode:   resp.StatusCode,
				Content:      content,
				Err:          err,
			}
		}
		decoded = true
	}

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	if env, ok := out.(*Envelope); ok && decoded && env.hasError() {
		message := ""
		if env.ErrorMessage != nil {
			message = *env.ErrorMessage
		}
		// The API reports an expired or unknown session only through the message text.
		if strings.Contains(strings.ToLower(message), "token") {
			return &AuthenticationError{Message: message}
		}
		return &APIError{
			ErrorCode:    env.ErrorCode,
			ErrorMessage: message,
			StatusCode:   resp.StatusCode,
			Content:      content,
		}
	}

	if authStatus {
		if authErr := decodeAuthError(resp.Body); authErr != nil {
			return authErr
		}
	}

	return &APIError{
		ErrorCode:    strPtr(strconv.Itoa(resp.StatusCode)),
		ErrorMessage: resp.Status,
		StatusCode:   resp.StatusCode,
		Content:      content,
	}
}

// decodeAuthError returns nil when body is not an OAuth error payload.
func decodeAuthError(body []byte) *AuthenticationError {
	var payload ResponseError
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	if payload.Error == "" && payload.ErrorDescription == "" {
		return nil
	}
	return &AuthenticationError{Message: fmt.Sprintf("%s: %s", payload.Error, payload.ErrorDescription)}
}

// call executes an enveloped request and decodes its data field into T.
func call[T any](ctx context.Context, c *Client, req *Request, auth AuthKind, body BodyKind) (T, error) {
	var env Envelope
	var zero T
	if err := c.execute(ctx, req, auth, body, &env); err != nil {
		return zero, err
	}
	return decodeData[T](&env)
}

// callNoData executes an enveloped request whose payload is not needed.
func callNoData(ctx context.Context, c *Client, req *Request, auth AuthKind, body BodyKind) error {
	var env Envelope
	return c.execute(ctx, req, auth, body, &env)
}

func decodeData[T any](env *Envelope) (T, error) {
	var data T
	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return data, nil
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return data, &APIError{
			ErrorMessage: err.Error(),
			StatusCode:   http.StatusOK,
			Content:      string(env.Data),
			Err:          err,
		}
	}
	return data, nil
}

func redactHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if strings.EqualFold(k, "Authorization") {
			if i := strings.IndexByte(v, ' '); i > 0 {
				v = v[:i] + " [REDACTED]"
			} else {
				v = "[REDACTED]"
			}
		}
		out[k] = v
	}
	return out
}

// secretParams are never handed to hooks in clear text.
var secretParams = []string{"password", "client_secret"}

func redactParams(params []Param) []Param {
	if len(params) == 0 {
		return nil
	}
	out := make([]Param, len(params))
	for i, p := range params {
		for _, name := range secretParams {
			if strings.EqualFold(p.Name, name) {
				p.Value = "[REDACTED]"
				break
			}
		}
		out[i] = p
	}
	return out
}
