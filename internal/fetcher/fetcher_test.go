package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"joke-mcp/internal/config"
)

func newTestClient(chuckURL, dadURL string) *Client {
	return New(config.UpstreamConfig{
		ChuckAPIURL:   chuckURL,
		DadJokeAPIURL: dadURL,
	})
}

func TestRandomJoke(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jokes/random" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"value": "Chuck can divide by zero."}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "")

	got, err := c.RandomJoke(context.Background())
	if err != nil {
		t.Fatalf("RandomJoke() error = %v", err)
	}
	if got != "Chuck can divide by zero." {
		t.Errorf("RandomJoke() = %q, want %q", got, "Chuck can divide by zero.")
	}
}

func TestJokeByCategory(t *testing.T) {
	var gotCategory string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("category")
		w.Write([]byte(`{"value": "A dev joke."}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "")

	got, err := c.JokeByCategory(context.Background(), "dev")
	if err != nil {
		t.Fatalf("JokeByCategory() error = %v", err)
	}
	if got != "A dev joke." {
		t.Errorf("JokeByCategory() = %q, want %q", got, "A dev joke.")
	}
	if gotCategory != "dev" {
		t.Errorf("category query param = %q, want %q", gotCategory, "dev")
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"several", `["animal","career","dev"]`, "animal, career, dev"},
		{"single", `["dev"]`, "dev"},
		{"empty", `[]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/jokes/categories" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			c := newTestClient(ts.URL, "")

			got, err := c.Categories(context.Background())
			if err != nil {
				t.Fatalf("Categories() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Categories() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDadJoke(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("Accept header = %q, want application/json", accept)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header is empty")
		}
		w.Write([]byte(`{"id": "abc", "joke": "I'm reading a book about anti-gravity.", "status": 200}`))
	}))
	defer ts.Close()

	c := newTestClient("", ts.URL)

	got, err := c.DadJoke(context.Background())
	if err != nil {
		t.Fatalf("DadJoke() error = %v", err)
	}
	if got != "I'm reading a book about anti-gravity." {
		t.Errorf("DadJoke() = %q", got)
	}
}

func TestUpstreamStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, ts.URL)

	if _, err := c.RandomJoke(context.Background()); err == nil {
		t.Error("RandomJoke() with upstream 500 should fail")
	}
	if _, err := c.DadJoke(context.Background()); err == nil {
		t.Error("DadJoke() with upstream 500 should fail")
	}
}

func TestNonJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, ts.URL)

	if _, err := c.Categories(context.Background()); err == nil {
		t.Error("Categories() with non-JSON body should fail")
	}
}

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{}
	c := New(config.UpstreamConfig{}, WithHTTPClient(custom))
	if c.client != custom {
		t.Error("WithHTTPClient did not replace the http client")
	}
}
