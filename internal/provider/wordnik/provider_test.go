package wordnik

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_FetchDefinitions_Success(t *testing.T) {
	t.Parallel()

	body := `[
		{"text": "a fruit", "partOfSpeech": "noun", "sourceDictionary": "wiktionary", "attributionText": "from Wiktionary"},
		{"text": "a company", "partOfSpeech": "noun"}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/apple/definitions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key = %q, want %q", got, "test-key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", newTestLogger())
	defs, err := p.FetchDefinitions(context.Background(), "apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(defs) != 2 {
		t.Fatalf("len(defs) = %d, want 2", len(defs))
	}
	if defs[0].Text != "a fruit" {
		t.Errorf("defs[0].Text = %q, want %q", defs[0].Text, "a fruit")
	}
	if defs[0].PartOfSpeech != "noun" {
		t.Errorf("defs[0].PartOfSpeech = %q, want %q", defs[0].PartOfSpeech, "noun")
	}
	if defs[0].Source != "wiktionary" {
		t.Errorf("defs[0].Source = %q, want %q", defs[0].Source, "wiktionary")
	}
	if defs[0].Attribution != "from Wiktionary" {
		t.Errorf("defs[0].Attribution = %q, want %q", defs[0].Attribution, "from Wiktionary")
	}
	if defs[1].Text != "a company" {
		t.Errorf("defs[1].Text = %q, want %q", defs[1].Text, "a company")
	}
}

func TestProvider_FetchDefinitions_EscapesWord(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/食べる/definitions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"text": "to eat"}]`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", newTestLogger())
	defs, err := p.FetchDefinitions(context.Background(), "食べる")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(defs) != 1 || defs[0].Text != "to eat" {
		t.Fatalf("defs = %+v, want one record %q", defs, "to eat")
	}
}

func TestProvider_FetchDefinitions_EmptyArray(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", newTestLogger())
	defs, err := p.FetchDefinitions(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(defs) != 0 {
		t.Fatalf("len(defs) = %d, want 0", len(defs))
	}
}

func TestProvider_FetchDefinitions_SkipsRecordsWithoutText(t *testing.T) {
	t.Parallel()

	body := `[
		{"text": "a fruit", "partOfSpeech": "noun"},
		{"partOfSpeech": "noun", "attributionText": "stub entry"},
		{"text": "", "partOfSpeech": "verb"},
		{"text": "a company"}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", newTestLogger())
	defs, err := p.FetchDefinitions(context.Background(), "apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("len(defs) = %d, want 2", len(defs))
	}
	if defs[0].Text != "a fruit" || defs[1].Text != "a company" {
		t.Errorf("defs = %+v, want the two records with text", defs)
	}
}

func TestProvider_FetchDefinitions_NotFoundIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not Found"}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", newTestLogger())
	_, err := p.FetchDefinitions(context.Background(), "asdfxyz")
	if err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestProvider_FetchDefinitions_UnauthorizedIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "bad-key", newTestLogger())
	_, err := p.FetchDefinitions(context.Background(), "apple")
	if err == nil {
		t.Fatal("expected error for 401")
	}
}

func TestProvider_FetchDefinitions_ServerErrorRetrySuccess(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if callCount.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"text": "a fruit"}]`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", newTestLogger())
	defs, err := p.FetchDefinitions(context.Background(), "apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("len(defs) = %d, want 1 after retry", len(defs))
	}
	if got := callCount.Load(); got != 2 {
		t.Errorf("call count = %d, want 2", got)
	}
}

func TestProvider_FetchDefinitions_ServerErrorBothAttemptsFail(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", newTestLogger())
	_, err := p.FetchDefinitions(context.Background(), "fail")
	if err == nil {
		t.Fatal("expected error when both attempts fail")
	}
	if got := callCount.Load(); got != 2 {
		t.Errorf("call count = %d, want 2", got)
	}
}

func TestProvider_FetchDefinitions_InvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`not valid json`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", newTestLogger())
	_, err := p.FetchDefinitions(context.Background(), "bad")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestProvider_FetchDefinitions_NetworkError(t *testing.T) {
	t.Parallel()

	// Server closed before the request is issued.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", newTestLogger())
	_, err := p.FetchDefinitions(context.Background(), "apple")
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
}
