package mcpadapter

import (
	"bytes"
	"net/http"
	"strings"

	"mcp-funcs/internal/host"
)

// recorder buffers a complete response in memory. Flush is a no-op so
// streamed event bodies are drained into the buffer.
type recorder struct {
	header      http.Header
	sent        http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func newRecorder() *recorder {
	return &recorder{header: make(http.Header)}
}

func (r *recorder) Header() http.Header { return r.header }

func (r *recorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.wroteHeader = true
	r.status = code
	r.sent = r.header.Clone()
}

func (r *recorder) Write(p []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.body.Write(p)
}

func (r *recorder) Flush() {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
}

// result flattens the recorded response; repeated header values are joined
// with ", ".
func (r *recorder) result() host.HTTPResponse {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	headers := make(map[string]string, len(r.sent))
	for k, v := range r.sent {
		headers[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	return host.HTTPResponse{
		StatusCode: r.status,
		Headers:    headers,
		Body:       r.body.String(),
	}
}
