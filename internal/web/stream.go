package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"joke-mcp/pkg/logger"
)

// streamErrEvent is sent in place of a joke when the upstream fetch fails.
// A failed fetch never ends the stream.
const streamErrEvent = "Error fetching joke"

// handleSSE owns one push session. The handler goroutine is the only writer
// for the session: the select over the ticker and the request context
// serializes ticks against disconnect, so no write can follow the stream
// being closed, and the deferred Stop releases the ticker exactly once.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	logger.Info("Stream client connected", logger.String("remote", r.RemoteAddr))

	// One event straight away, then one per tick.
	s.pushJoke(r.Context(), w, flusher)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			logger.Info("Stream client disconnected", logger.String("remote", r.RemoteAddr))
			return
		case <-ticker.C:
			s.pushJoke(r.Context(), w, flusher)
		}
	}
}

func (s *Server) pushJoke(ctx context.Context, w io.Writer, flusher http.Flusher) {
	joke, err := s.jokes.RandomJoke(ctx)
	if err != nil {
		logger.Error("Failed to fetch joke for stream", logger.Err(err))
		joke = streamErrEvent
	}

	writeEvent(w, joke)
	flusher.Flush()
}

// writeEvent frames one SSE event; payload newlines become multiple data
// lines so multi-line jokes stay one event.
func writeEvent(w io.Writer, data string) {
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(w, "data: %s\n", line)
	}
	fmt.Fprint(w, "\n")
}
