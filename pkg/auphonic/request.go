package auphonic

import (
	"fmt"
	"net/http"
	"strings"
)

// AuthKind selects the credentials attached to a request.
type AuthKind int

const (
	// AuthNone sends no Authorization header.
	AuthNone AuthKind = iota
	// AuthBasic sends the client ID and secret.
	AuthBasic
	// AuthBearer sends the session access token.
	AuthBearer
)

func (k AuthKind) String() string {
	switch k {
	case AuthNone:
		return "none"
	case AuthBasic:
		return "basic"
	case AuthBearer:
		return "bearer"
	default:
		return "unknown"
	}
}

// BodyKind selects the body framing of a request.
type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyJSON
)

// Param is a request parameter. Order is preserved.
type Param struct {
	Name  string
	Value string
}

func (p Param) String() string {
	return p.Name + "=" + p.Value
}

// FileUpload is a file sent as multipart/form-data.
type FileUpload struct {
	FieldName string
	FileName  string
	Content   []byte
}

// Request describes one API call before it is executed.
type Request struct {
	Resource string
	Method   string
	Params   []Param
	Segments map[string]string
	Body     any
	RawBody  []byte
	File     *FileUpload
	Headers  map[string]string
}

// NewRequest creates a request for resource, a path relative to the base URL
// that may contain {name} placeholders.
func NewRequest(resource, method string) *Request {
	return &Request{
		Resource: resource,
		Method:   method,
		Segments: map[string]string{},
		Headers:  map[string]string{},
	}
}

// AddParameter appends a parameter. GET and DELETE parameters, and those of
// requests that carry a body, go into the query string; otherwise they are
// form encoded.
func (r *Request) AddParameter(name, value string) *Request {
	r.Params = append(r.Params, Param{Name: name, Value: value})
	return r
}

// AddURLSegment sets the value of the {name} placeholder in the resource.
func (r *Request) AddURLSegment(name, value string) *Request {
	r.Segments[name] = value
	return r
}

// AddJSONBody sets an object to be JSON encoded as the body.
func (r *Request) AddJSONBody(body any) *Request {
	r.Body = body
	r.RawBody = nil
	return r
}

// AddRawJSONBody sets an already encoded JSON body.
func (r *Request) AddRawJSONBody(body []byte) *Request {
	r.RawBody = body
	r.Body = nil
	return r
}

// AddFile attaches a file as a multipart field.
func (r *Request) AddFile(fieldName, fileName string, content []byte) *Request {
	r.File = &FileUpload{FieldName: fieldName, FileName: fileName, Content: content}
	return r
}

func (r *Request) AddHeader(name, value string) *Request {
	r.Headers[name] = value
	return r
}

func (r *Request) hasBody() bool {
	return r.Body != nil || r.RawBody != nil || r.File != nil
}

func (r *Request) paramsInQuery() bool {
	switch strings.ToUpper(r.Method) {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		return true
	}
	return r.hasBody()
}

func (r *Request) String() string {
	return fmt.Sprintf("%s %s", r.Method, r.Resource)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
