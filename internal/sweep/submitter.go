// Package sweep assembles and submits sweep requests and tracks the
// submission lifecycle as an explicit state machine:
//
//	Ready -> Submitting -> Succeeded | Failed -> Ready
//
// Both terminal states hand control straight back to Ready, so a sweep can
// always be resubmitted; the Submitting state is the sole guard against a
// second request going out while one is in flight.
package sweep

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/promptsweep/sweepctl/internal/notify"
	"github.com/promptsweep/sweepctl/internal/selection"
	"github.com/promptsweep/sweepctl/internal/validation"
)

// State is the submission lifecycle state.
type State int

const (
	StateReady State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DefaultTimeout bounds a sweep submission. The original controller had no
// timeout at all and could leave the submit path hung forever; this is a
// deliberate behavioral change.
const DefaultTimeout = 120 * time.Second

var (
	// ErrNotReady is returned when a submission is attempted while any
	// selection axis is empty.
	ErrNotReady = errors.New("sweep not ready: every axis needs at least one selection")
	// ErrInFlight is returned when a submission is attempted while another
	// request is outstanding.
	ErrInFlight = errors.New("a sweep request is already in flight")
)

// TransitionHook observes state machine transitions.
type TransitionHook func(from, to State)

// Submitter posts sweep requests to the backend.
type Submitter struct {
	endpoint string
	client   *http.Client
	notifier notify.Notifier
	logger   *slog.Logger
	timeout  time.Duration

	mu    sync.Mutex
	state State
	hooks []TransitionHook
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithTimeout overrides the submission timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Submitter) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Submitter) {
		if c != nil {
			s.client = c
		}
	}
}

// New returns a Submitter posting to backendURL's sweep endpoint.
func New(backendURL string, notifier notify.Notifier, logger *slog.Logger, opts ...Option) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.NewSlog(logger)
	}
	s := &Submitter{
		endpoint: strings.TrimRight(backendURL, "/") + "/api/experiments",
		client:   &http.Client{},
		notifier: notifier,
		logger:   logger,
		timeout:  DefaultTimeout,
		state:    StateReady,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnTransition registers a hook observing every state change.
func (s *Submitter) OnTransition(h TransitionHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

func (s *Submitter) transition(to State) {
	s.mu.Lock()
	from := s.state
	s.state = to
	hooks := slices.Clone(s.hooks)
	s.mu.Unlock()
	for _, h := range hooks {
		h(from, to)
	}
}

// BuildRequest assembles a Request from the current selection, stamping it
// with the submission time.
func BuildRequest(sel selection.State, now time.Time) Request {
	return Request{
		Models:       sel.Models,
		Prompts:      sel.Prompts,
		Temperatures: sel.Temperatures,
		MaxTokens:    sel.MaxTokens,
		Timestamp:    now.UTC().Format(time.RFC3339),
	}
}

// Submit runs one full submission cycle. It only fires when the readiness
// gate holds and no other request is outstanding. Whatever happens, the
// machine is back in Ready when Submit returns.
func (s *Submitter) Submit(ctx context.Context, sel selection.State) (*ResultSet, error) {
	if !selection.Ready(sel) {
		return nil, ErrNotReady
	}

	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return nil, ErrInFlight
	}
	s.state = StateSubmitting
	hooks := slices.Clone(s.hooks)
	s.mu.Unlock()
	for _, h := range hooks {
		h(StateReady, StateSubmitting)
	}

	// Every path below ends in a terminal state; this puts the machine
	// back in Ready so resubmission is always possible.
	defer s.transition(StateReady)

	res, err := s.post(ctx, sel)
	if err != nil {
		s.transition(StateFailed)
		s.notifier.Error(fmt.Sprintf("Sweep failed: %v", err))
		return nil, err
	}

	s.transition(StateSucceeded)
	s.notifier.Success(successMessage(res))
	return res, nil
}

func (s *Submitter) post(ctx context.Context, sel selection.State) (*ResultSet, error) {
	reqBody := BuildRequest(sel, time.Now())
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding sweep request: %w", err)
	}
	if violations := validation.ValidateRequestBytes(payload); len(violations) > 0 {
		return nil, fmt.Errorf("invalid sweep request: %s", strings.Join(violations, "; "))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.logger.Debug("submitting sweep",
		"endpoint", s.endpoint,
		"combinations", selection.Combinations(sel))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building sweep request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sweep response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := strings.TrimSpace(string(body))
		if detail == "" {
			detail = resp.Status
		}
		return nil, errors.New(detail)
	}

	res, err := ParseResultSet(body)
	if err != nil {
		return nil, fmt.Errorf("decoding sweep response: %w", err)
	}
	return res, nil
}

func successMessage(res *ResultSet) string {
	best := "N/A"
	if res.BestConfig.ModelName != "" {
		best = res.BestConfig.ModelName
	}
	score := "N/A"
	if res.BestConfig.WeightedScore != nil {
		score = fmt.Sprintf("%.3f", *res.BestConfig.WeightedScore)
	}
	return fmt.Sprintf("Sweep complete: best model %s (score %s) across %d combinations",
		best, score, res.TotalCombos)
}
