package wordnik

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/wordfetch/internal/config"
	"github.com/heartmarshall/wordfetch/internal/provider"
)

// Provider fetches definition records from the Wordnik word API.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the Wordnik configuration.
func NewProvider(cfg config.WordnikConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "wordnik"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "wordnik"),
	}
}

// FetchDefinitions fetches the definition records for the given word.
// A 2xx response with an empty array yields an empty slice and nil error;
// every other failure mode (network error, non-2xx status, malformed body)
// is reported as a single wrapped error. Records without a text field are
// skipped. The API key is sent as a query parameter and never logged.
func (p *Provider) FetchDefinitions(ctx context.Context, word string) ([]provider.Definition, error) {
	q := url.Values{}
	q.Set("api_key", p.apiKey)
	reqURL := p.baseURL + "/" + url.PathEscape(word) + "/definitions?" + q.Encode()

	p.log.DebugContext(ctx, "wordnik request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wordnik: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "wordnik request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("wordnik: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("wordnik: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wordnik: read body: %w", err)
	}

	var records []apiDefinition
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("wordnik: decode json: %w", err)
	}

	defs := mapRecords(records)
	if skipped := len(records) - len(defs); skipped > 0 {
		p.log.WarnContext(ctx, "wordnik records without text skipped",
			slog.String("word", word), slog.Int("count", skipped))
	}

	p.log.DebugContext(ctx, "wordnik response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("definitions", len(defs)),
	)

	return defs, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "wordnik retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}

// mapRecords converts API records into provider definitions, dropping
// records whose text field is empty.
func mapRecords(records []apiDefinition) []provider.Definition {
	defs := make([]provider.Definition, 0, len(records))
	for _, rec := range records {
		if rec.Text == "" {
			continue
		}
		defs = append(defs, provider.Definition{
			Text:         rec.Text,
			PartOfSpeech: rec.PartOfSpeech,
			Source:       rec.SourceDictionary,
			Attribution:  rec.AttributionText,
		})
	}
	return defs
}
