package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/promptsweep/sweepctl/internal/notify"
)

// maxBodyBytes limits how much of the listing response is read.
const maxBodyBytes = 4 << 20

// Loader fetches the model catalog from the configured listing endpoint.
type Loader struct {
	baseURL  string
	client   *http.Client
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewLoader returns a Loader that fetches from baseURL's model-listing
// endpoint. A nil client gets a 10s-timeout default; a nil notifier is
// replaced with the slog-backed one.
func NewLoader(baseURL string, client *http.Client, notifier notify.Notifier, logger *slog.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if notifier == nil {
		notifier = notify.NewSlog(logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   client,
		notifier: notifier,
		logger:   logger,
	}
}

// Load fetches and normalizes the catalog. It never returns an error:
// network failures, non-JSON bodies and empty catalogs all degrade to the
// fixed fallback catalog with an informational notice, so the caller always
// has something selectable.
func (l *Loader) Load(ctx context.Context) *Catalog {
	ids, err := l.fetch(ctx)
	if err != nil {
		l.logger.Debug("model catalog fetch failed", "error", err)
		l.notifier.Info(fmt.Sprintf("Model catalog unavailable (%v); using fallback models", err))
		return Fallback()
	}
	l.notifier.Success(fmt.Sprintf("Loaded %d models from catalog", len(ids)))
	return newCatalog(ids, false)
}

func (l *Loader) fetch(ctx context.Context) ([]string, error) {
	url := l.baseURL + "/api/litellm/models"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog endpoint returned %d", resp.StatusCode)
	}

	ids, ok := Normalize(body)
	if !ok {
		return nil, fmt.Errorf("unrecognized catalog shape")
	}
	return ids, nil
}
