package auphonic

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const transcriptSeparator = "----------------------------------------------------------------------------------------------------"

// RequestEvent is emitted right before a request is sent.
type RequestEvent struct {
	ID         uuid.UUID
	Method     string
	Resource   string
	URL        string
	Parameters []Param
	// Headers has the Authorization value redacted.
	Headers map[string]string
}

// ResponseEvent is emitted right after a response is received.
type ResponseEvent struct {
	RequestID       uuid.UUID
	ContentType     string
	ContentLength   int64
	ContentEncoding string
	Content         string
	ResponseURI     string
	StatusCode      int
	Status          string
	Server          string
}

// Hooks observe the pipeline. They must not block for long; they run on the
// calling goroutine.
type Hooks struct {
	OnSendRequest     func(RequestEvent)
	OnReceiveResponse func(ResponseEvent)
}

func (h Hooks) sendRequest(e RequestEvent) {
	if h.OnSendRequest != nil {
		h.OnSendRequest(e)
	}
}

func (h Hooks) receiveResponse(e ResponseEvent) {
	if h.OnReceiveResponse != nil {
		h.OnReceiveResponse(e)
	}
}

// CombineHooks calls each hook set in order.
func CombineHooks(hooks ...Hooks) Hooks {
	return Hooks{
		OnSendRequest: func(e RequestEvent) {
			for _, h := range hooks {
				h.sendRequest(e)
			}
		},
		OnReceiveResponse: func(e ResponseEvent) {
			for _, h := range hooks {
				h.receiveResponse(e)
			}
		},
	}
}

// NewTranscriptHooks writes a plain text request/response transcript to w.
// Writes from concurrent calls do not interleave.
func NewTranscriptHooks(w io.Writer) Hooks {
	var mu sync.Mutex
	write := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = io.WriteString(w, s)
	}

	return Hooks{
		OnSendRequest: func(e RequestEvent) {
			params := make([]string, len(e.Parameters))
			for i, p := range e.Parameters {
				params[i] = p.String()
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "Method: %s\n", e.Method)
			fmt.Fprintf(&sb, "Resource: %s\n", e.Resource)
			fmt.Fprintf(&sb, "Parameters: %s\n", strings.Join(params, "\n"))
			sb.WriteString(transcriptSeparator + "\n")
			write(sb.String())
		},
		OnReceiveResponse: func(e ResponseEvent) {
			var sb strings.Builder
			fmt.Fprintf(&sb, "ContentType: %s\n", e.ContentType)
			fmt.Fprintf(&sb, "ContentLength: %d\n", e.ContentLength)
			fmt.Fprintf(&sb, "ContentEncoding: %s\n", e.ContentEncoding)
			fmt.Fprintf(&sb, "Content: %s\n", e.Content)
			fmt.Fprintf(&sb, "ResponseUri: %s\n", e.ResponseURI)
			fmt.Fprintf(&sb, "StatusCode: %d %s\n", e.StatusCode, e.Status)
			fmt.Fprintf(&sb, "Server: %s\n", e.Server)
			sb.WriteString(transcriptSeparator + "\n")
			write(sb.String())
		},
	}
}
