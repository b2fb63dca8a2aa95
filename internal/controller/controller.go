// Package controller glues one sweep session together: it bootstraps the
// remote configuration and model catalog concurrently, tracks the
// operator's selection, and drives submission and presentation. One
// Controller owns its selection state and result set for the lifetime of a
// session; nothing is shared across instances.
package controller

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/promptsweep/sweepctl/internal/catalog"
	"github.com/promptsweep/sweepctl/internal/notify"
	"github.com/promptsweep/sweepctl/internal/results"
	"github.com/promptsweep/sweepctl/internal/selection"
	"github.com/promptsweep/sweepctl/internal/sweep"
)

// Options configures a Controller.
type Options struct {
	// BaseURL is the frontend service origin used for the config and
	// catalog fetches, and the fallback backend when the remote config is
	// unavailable.
	BaseURL string
	// Notifier receives user feedback; nil falls back to slog.
	Notifier notify.Notifier
	// Logger for diagnostics; nil uses slog.Default().
	Logger *slog.Logger
	// HTTPClient used for all requests; nil gets a default client.
	HTTPClient *http.Client
	// SubmitTimeout bounds the sweep submission.
	SubmitTimeout time.Duration
}

// Controller runs one sweep session.
type Controller struct {
	opts     Options
	notifier notify.Notifier
	logger   *slog.Logger
	client   *http.Client

	catalog   *catalog.Catalog
	backend   string
	selection selection.State
	submitter *sweep.Submitter
}

// New creates a Controller. Call Bootstrap before anything else.
func New(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.NewSlog(opts.Logger)
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Controller{
		opts:     opts,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		client:   client,
	}
}

// Bootstrap issues the configuration fetch and the catalog fetch
// concurrently and waits for both to settle. Neither failure is fatal and
// neither fails the other: a missing config falls back to the
// controller's own base URL, a missing catalog to the fixed fallback
// entries. The errgroup here is a join point, not a race.
func (c *Controller) Bootstrap(ctx context.Context) {
	var remote *RemoteConfig

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg, err := fetchRemoteConfig(gctx, c.client, c.opts.BaseURL)
		if err != nil {
			// ConfigUnavailable is silent to the user: same-origin default.
			c.logger.Debug("config fetch failed, using own origin", "error", err)
			return nil
		}
		remote = cfg
		return nil
	})
	g.Go(func() error {
		loader := catalog.NewLoader(c.opts.BaseURL, c.client, c.notifier, c.logger)
		c.catalog = loader.Load(gctx)
		return nil
	})
	_ = g.Wait() // both branches settle; neither returns an error

	c.backend = c.opts.BaseURL
	if remote != nil && remote.BackendURL != "" {
		c.backend = remote.BackendURL
	}

	// The bootstrap client carries a short timeout; the submitter only
	// inherits an explicitly supplied client so a long-running sweep is
	// bounded by the submit timeout alone.
	c.submitter = sweep.New(c.backend, c.notifier, c.logger,
		sweep.WithHTTPClient(c.opts.HTTPClient),
		sweep.WithTimeout(c.opts.SubmitTimeout))

	// Apply catalog pre-selections and grid defaults so readiness starts
	// from the same state a fresh page would.
	c.selection = selection.State{
		Models:       c.catalog.Preselected(),
		Temperatures: []float64{selection.DefaultTemperature},
		MaxTokens:    []int{selection.DefaultMaxTokens},
	}
}

// Catalog returns the bootstrapped model catalog.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Backend returns the resolved sweep backend base URL.
func (c *Controller) Backend() string {
	return c.backend
}

// Selection returns the current selection state.
func (c *Controller) Selection() selection.State {
	return c.selection
}

// SetSelection replaces the selection state, trimming prompt entries.
func (c *Controller) SetSelection(s selection.State) {
	s.SetPrompts(s.Prompts)
	c.selection = s
}

// Ready reports whether the current selection permits submission.
func (c *Controller) Ready() bool {
	return selection.Ready(c.selection)
}

// Submitter exposes the session's sweep submitter.
func (c *Controller) Submitter() *sweep.Submitter {
	return c.submitter
}

// Run submits the current selection and renders the outcome to out. The
// failure path leaves the session ready for resubmission.
func (c *Controller) Run(ctx context.Context, out io.Writer) (*sweep.ResultSet, error) {
	res, err := c.submitter.Submit(ctx, c.selection)
	if err != nil {
		return nil, err
	}
	results.New(out).Render(res)
	return res, nil
}
