// Package web wires the plain HTTP surface: the joke page, the health check,
// the SSE joke stream and the guarded /mcp protocol endpoint.
package web

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"joke-mcp/internal/config"
	"joke-mcp/pkg/logger"
)

type JokeSource interface {
	RandomJoke(ctx context.Context) (string, error)
}

type Server struct {
	jokes    JokeSource
	mcp      http.Handler
	interval time.Duration
}

// New assembles a web server around a joke source and the MCP protocol
// handler. The protocol handler is wrapped so that non-POST requests and
// dispatch-time panics never reach it.
func New(jokes JokeSource, mcpHandler http.Handler, cfg config.StreamConfig) *Server {
	interval := cfg.Interval
	if interval == 0 {
		interval = 10 * time.Second
	}

	return &Server{
		jokes:    jokes,
		mcp:      guardMethods(recoverDispatch(mcpHandler)),
		interval: interval,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/sse", s.handleSSE)
	mux.Handle("/mcp", s.mcp)
	return mux
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Joke of the Moment</title>
</head>
<body>
  <h1>Joke of the Moment</h1>
  <p>{{.Joke}}</p>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	joke, err := s.jokes.RandomJoke(r.Context())
	if err != nil {
		logger.Error("Failed to fetch joke for index page", logger.Err(err))
		http.Error(w, "Error fetching joke", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, struct{ Joke string }{Joke: joke}); err != nil {
		logger.Error("Failed to render index page", logger.Err(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Healthy"))
}
