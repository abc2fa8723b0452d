package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"joke-mcp/pkg/logger"
)

const (
	codeMethodNotAllowed = -32000
	codeInternalError    = -32603
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcErrorResponse struct {
	JSONRPC string   `json:"jsonrpc"`
	Error   rpcError `json:"error"`
	ID      any      `json:"id"`
}

func writeRPCError(w http.ResponseWriter, status, code int, message string, id any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(rpcErrorResponse{
		JSONRPC: "2.0",
		Error:   rpcError{Code: code, Message: message},
		ID:      id,
	})
}

// guardMethods rejects everything but POST on the protocol endpoint with the
// fixed method-not-allowed envelope, before the request reaches dispatch.
func guardMethods(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeRPCError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed.", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverDispatch converts a dispatch-time panic into the fixed internal
// error envelope, echoing the inbound request id. If response bytes were
// already written the panic is logged and swallowed so the client never
// sees a second response.
func recoverDispatch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestID(r)
		tw := &trackingWriter{ResponseWriter: w}

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic during request dispatch", logger.Any("panic", rec))
				if !tw.wrote {
					writeRPCError(tw, http.StatusInternalServerError, codeInternalError, "Internal server error", id)
				}
			}
		}()

		next.ServeHTTP(tw, r)
	})
}

// requestID peeks at the JSON-RPC id of the inbound request and restores the
// body for the downstream handler.
func requestID(r *http.Request) any {
	if r.Body == nil {
		return nil
	}

	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var probe struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil
	}
	return probe.ID
}

type trackingWriter struct {
	http.ResponseWriter
	wrote bool
}

func (t *trackingWriter) WriteHeader(status int) {
	t.wrote = true
	t.ResponseWriter.WriteHeader(status)
}

func (t *trackingWriter) Write(b []byte) (int, error) {
	t.wrote = true
	return t.ResponseWriter.Write(b)
}

func (t *trackingWriter) Flush() {
	if f, ok := t.ResponseWriter.(http.Flusher); ok {
		t.wrote = true
		f.Flush()
	}
}
