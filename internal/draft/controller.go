package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/pkg/logger"
	"github.com/Kabir14815/rr/pkg/metric"
)

//go:generate mockgen -source=controller.go -destination=mock/controller.go -package=mock_draft

type (
	RateCardLookup interface {
		LookupRateCard(ctx context.Context, q entity.RateCardQuery) (*entity.RateCardResult, error)
	}

	Submitter interface {
		CreateConsignment(ctx context.Context, in entity.ConsignmentInput) (*entity.Consignment, error)
	}
)

const (
	outcomeResolved = "resolved"
	outcomeNotFound = "not_found"
	outcomeFailed   = "fetch_failed"
	outcomeTimeout  = "timeout"
)

// Controller owns one draft. Edits are serialised; rate card lookups run on
// their own goroutines and only the latest one may change the draft.
type Controller struct {
	mu    sync.Mutex
	state State

	lookup  RateCardLookup
	log     logger.Logger
	metrics metric.RateCard

	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewController(
	lookup RateCardLookup,
	log logger.Logger,
	metrics metric.RateCard,
	opts ...Option,
) (*Controller, error) {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		state:   NewState(),
		lookup:  lookup,
		log:     log,
		metrics: metrics,
		timeout: _defaultLookupTimeout,
		ctx:     ctx,
		cancel:  cancel,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate(); err != nil {
		cancel()
		return nil, fmt.Errorf("draft.NewController: %w", err)
	}

	return c, nil
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies actions in order and starts at most one lookup, for the key
// left after the last action. Processing stops at the first rejected action;
// the ones before it stay applied.
func (c *Controller) Dispatch(ctx context.Context, actions ...Action) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var pending *LookupRequest
	for _, a := range actions {
		next, req, err := Reduce(c.state, a)
		if err != nil {
			c.startLookup(ctx, pending)
			return c.state, err
		}
		c.state = next
		if req != nil {
			pending = req
		}
	}

	c.startLookup(ctx, pending)
	return c.state, nil
}

// Submit validates the draft, hands it to store and replaces it with a fresh
// draft once the store accepted it. Edits are blocked for the duration.
func (c *Controller) Submit(ctx context.Context, store Submitter) (*entity.Consignment, error) {
	const op = "draft.Controller.Submit"

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := CanSubmit(c.state); err != nil {
		return nil, err
	}

	created, err := store.CreateConsignment(ctx, c.state.Draft.Input())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.state, _, _ = Reduce(c.state, ResetForm{})
	return created, nil
}

// Wait blocks until every started lookup has settled.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close abandons in-flight lookups and waits for their goroutines to exit.
func (c *Controller) Close() {
	c.cancel()
	c.wg.Wait()
}

// startLookup must be called with mu held.
func (c *Controller) startLookup(ctx context.Context, req *LookupRequest) {
	if req == nil || !c.state.Current(req.Generation) {
		return
	}
	c.state, _, _ = Reduce(c.state, BeginLookup{Generation: req.Generation})

	log := c.log.Ctx(ctx)
	log.LogAttrs(ctx, logger.DebugLevel, "rate card lookup started",
		logger.Int64("generation", int64(req.Generation)),
		logger.String("user_id", req.Query.UserID),
		logger.String("delivery_partner", req.Query.DeliveryPartner),
		logger.String("service_type", string(req.Query.ServiceType)),
		logger.String("mode", string(req.Query.Mode)),
		logger.String("locator", req.Query.Locator),
	)

	c.wg.Add(1)
	go c.runLookup(log, *req)
}

func (c *Controller) runLookup(log logger.Logger, req LookupRequest) {
	defer c.wg.Done()

	ctx, cancel := context.WithTimeout(c.ctx, c.timeout)
	defer cancel()

	start := time.Now()
	res, err := c.lookup.LookupRateCard(ctx, req.Query)
	elapsed := time.Since(start)

	var (
		action  Action
		outcome string
	)
	switch {
	case err != nil:
		action = FailLookup{Generation: req.Generation, Err: err}
		outcome = outcomeFailed
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = outcomeTimeout
		}
	case res == nil || !res.Found || res.RateCard == nil:
		var msg string
		if res != nil {
			msg = res.Message
		}
		action = ResetPricing{Generation: req.Generation, Message: msg}
		outcome = outcomeNotFound
	default:
		action = ApplyRateCard{Generation: req.Generation, Card: *res.RateCard}
		outcome = outcomeResolved
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Current(req.Generation) {
		c.metrics.Stale()
		log.Debugw("stale rate card response dropped",
			"generation", req.Generation,
			"current", c.state.Generation,
		)
		return
	}

	c.metrics.Lookup(outcome, elapsed)
	c.state, _, _ = Reduce(c.state, action)

	if err != nil {
		log.LogAttrs(ctx, logger.WarnLevel, "rate card lookup failed",
			logger.Int64("generation", int64(req.Generation)),
			logger.Duration("elapsed", elapsed),
			logger.Err(err),
		)
		return
	}
	log.LogAttrs(ctx, logger.InfoLevel, "rate card lookup settled",
		logger.Int64("generation", int64(req.Generation)),
		logger.String("outcome", outcome),
		logger.String("rate_card_id", c.state.Draft.RateCardID),
		logger.Duration("elapsed", elapsed),
	)
}
