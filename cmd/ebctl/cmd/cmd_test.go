package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingsReply = `{
	"status": {"code": 200},
	"response": {"results": [{"data": {"records": [
		{"id": 12, "elements": {"Id": "12", "kaufpreis": "250000.00", "lage": "Berlin Mitte"}},
		{"id": 13, "elements": {"kaufpreis": 199000, "lage": ""}}
	]}}]}
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/chat":
			_, _ = w.Write([]byte(`{"response":"I found 2 properties in Berlin under 300000."}`))
		case "/api/v1/properties/all", "/api/v1/properties/search":
			_, _ = w.Write([]byte(listingsReply))
		case "/api/v1/properties":
			_, _ = w.Write([]byte(`{"results": []}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name     string
		args     []string
		want     []string
		wantNot  []string
		wantJSON bool
	}{
		{
			name: "chat joins arguments",
			args: []string{"chat", "under", "300000", "in", "Berlin"},
			want: []string{"I found 2 properties in Berlin under 300000."},
		},
		{
			name:     "chat json",
			args:     []string{"chat", "hello"},
			want:     []string{`"response": "I found 2 properties`},
			wantJSON: true,
		},
		{
			name:    "default properties table",
			args:    []string{"properties", "--all=false"},
			want:    []string{"ID", "PRICE", "LOCATION"},
			wantNot: []string{"Berlin"},
		},
		{
			name: "all properties table",
			args: []string{"properties", "--all"},
			want: []string{"12", "250000.00", "Berlin Mitte", "13", "199000", "-"},
		},
		{
			name:     "search json",
			args:     []string{"search", "--price-max", "300000", "--location", "Berlin"},
			want:     []string{`"records"`, `"Berlin Mitte"`},
			wantJSON: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := "table"
			if tt.wantJSON {
				output = "json"
			}
			args := append(tt.args, "--server", srv.URL, "--output", output)

			out, err := run(t, args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.wantNot {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestSearch_PriceMaxOnlyWhenGiven(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listingsReply))
	}))
	defer srv.Close()

	search, _, err := rootCmd.Find([]string{"search"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		args      []string
		wantPrice string
		wantSet   bool
	}{
		{name: "explicit zero", args: []string{"--price-max", "0"}, wantPrice: "0", wantSet: true},
		{name: "flag omitted", args: nil, wantSet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search.Flags().Lookup("price-max").Changed = false

			args := append([]string{"search"}, tt.args...)
			args = append(args, "--server", srv.URL, "--output", "json")
			_, err := run(t, args...)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSet, gotQuery.Has("price_max"))
			assert.Equal(t, tt.wantPrice, gotQuery.Get("price_max"))
		})
	}
}

func TestCommands_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"status":422,"detail":"Sorry, the prompt cannot be empty."}`))
	}))
	defer srv.Close()

	_, err := run(t, "chat", " ", "--server", srv.URL, "--output", "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 422): Sorry, the prompt cannot be empty.")
}

func TestField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		elems    map[string]any
		key      string
		fallback any
		want     string
	}{
		{name: "string value", elems: map[string]any{"lage": "Köln"}, key: "lage", want: "Köln"},
		{name: "float value", elems: map[string]any{"kaufpreis": float64(250000)}, key: "kaufpreis", want: "250000"},
		{name: "fallback used", elems: map[string]any{}, key: "Id", fallback: float64(7), want: "7"},
		{name: "empty string falls back to dash", elems: map[string]any{"lage": ""}, key: "lage", want: "-"},
		{name: "nil map", key: "lage", want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, field(tt.elems, tt.key, tt.fallback))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
