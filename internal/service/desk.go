package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kabir14815/rr/internal/draft"
	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/pricing"
	"github.com/Kabir14815/rr/pkg/cache"
	"github.com/Kabir14815/rr/pkg/logger"
	"github.com/Kabir14815/rr/pkg/metric"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	_usersKey    = "users"
	_invoicesKey = "invoices"
)

// DraftView is an open draft as the entry form renders it.
type DraftView struct {
	ID            uuid.UUID          `json:"id"`
	Draft         entity.Draft       `json:"draft"`
	Lookup        draft.LookupStatus `json:"lookup_status"`
	PricingLocked bool               `json:"pricing_locked"`
	Notice        *draft.Notice      `json:"notice,omitempty"`
	Total         pricing.Breakdown  `json:"total"`
	TotalDisplay  string             `json:"total_display"`
}

func newDraftView(id uuid.UUID, s draft.State) *DraftView {
	total := s.Total()
	return &DraftView{
		ID:            id,
		Draft:         s.Draft,
		Lookup:        s.Lookup,
		PricingLocked: s.PricingLocked(),
		Notice:        s.Notice,
		Total:         total,
		TotalDisplay:  total.Display(),
	}
}

// Dashboard is the initial load of the consignment page. Each part is
// fetched independently; a failed part is left empty.
type Dashboard struct {
	Consignments []entity.Consignment `json:"consignments"`
	Users        []entity.User        `json:"users"`
	Invoices     []entity.Invoice     `json:"invoices"`
	Warnings     []string             `json:"warnings,omitempty"`
}

// Desk serves the operator's consignment page: open drafts, the dashboard
// load, listing, deletion and export.
type Desk struct {
	store    ConsignmentStore
	exporter Exporter
	users    UserDirectory
	invoices InvoiceDirectory
	lookup   draft.RateCardLookup
	drafts   cache.Cache[uuid.UUID, *draft.Controller]
	log      logger.Logger
	metrics  metric.RateCard
	validate *validator.Validate

	userCache    cache.Cache[string, []entity.User]
	invoiceCache cache.Cache[string, []entity.Invoice]

	draftTTL       time.Duration
	directoryTTL   time.Duration
	lookupTimeout  time.Duration
	usersPageLimit int
}

func NewDesk(
	store ConsignmentStore,
	exporter Exporter,
	users UserDirectory,
	invoices InvoiceDirectory,
	lookup draft.RateCardLookup,
	drafts cache.Cache[uuid.UUID, *draft.Controller],
	log logger.Logger,
	metrics metric.RateCard,
	opts ...DeskOption,
) (*Desk, error) {
	d := &Desk{
		store:          store,
		exporter:       exporter,
		users:          users,
		invoices:       invoices,
		lookup:         lookup,
		drafts:         drafts,
		log:            log,
		metrics:        metrics,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		draftTTL:       _defaultDraftTTL,
		directoryTTL:   _defaultDirectoryTTL,
		usersPageLimit: _defaultUsersPageLimit,
	}

	for _, opt := range opts {
		opt(d)
	}
	if err := d.validateDeps(); err != nil {
		return nil, fmt.Errorf("service.NewDesk: %w", err)
	}

	drafts.SetOnEvicted(func(id uuid.UUID, c *draft.Controller) {
		c.Close()
		log.Debugw("draft closed", "draft_id", id.String())
	})

	return d, nil
}

// Close abandons every open draft.
func (d *Desk) Close() {
	d.drafts.Purge()
}

func (d *Desk) OpenDraft(ctx context.Context) (*DraftView, error) {
	const op = "service.Desk.OpenDraft"

	var opts []draft.Option
	if d.lookupTimeout > 0 {
		opts = append(opts, draft.LookupTimeout(d.lookupTimeout))
	}

	c, err := draft.NewController(d.lookup, d.log, d.metrics, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id := uuid.New()
	d.drafts.Put(id, c, d.draftTTL)

	d.log.Ctx(ctx).LogAttrs(ctx, logger.InfoLevel, "draft opened",
		logger.String("draft_id", id.String()),
	)
	return newDraftView(id, c.Snapshot()), nil
}

func (d *Desk) GetDraft(_ context.Context, id uuid.UUID) (*DraftView, error) {
	c, err := d.controller(id)
	if err != nil {
		return nil, fmt.Errorf("service.Desk.GetDraft: %w", err)
	}
	return newDraftView(id, c.Snapshot()), nil
}

// UpdateDraft applies the edits in order. Picking a sender or an invoice also
// fills the sender name or invoice number from the directories.
func (d *Desk) UpdateDraft(ctx context.Context, id uuid.UUID, changes []draft.SetField) (*DraftView, error) {
	const op = "service.Desk.UpdateDraft"

	c, err := d.controller(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	actions := make([]draft.Action, 0, len(changes))
	for _, change := range changes {
		actions = append(actions, change)
		actions = append(actions, d.derivedChanges(ctx, change)...)
	}

	state, err := c.Dispatch(ctx, actions...)
	d.touch(id)
	if err != nil {
		return newDraftView(id, state), fmt.Errorf("%s: %w", op, err)
	}
	return newDraftView(id, state), nil
}

func (d *Desk) derivedChanges(ctx context.Context, change draft.SetField) []draft.Action {
	if change.Value == "" {
		return nil
	}

	switch change.Field {
	case draft.FieldUserID:
		users, err := d.listUsers(ctx)
		if err != nil {
			d.log.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, "sender name not resolved",
				logger.String("user_id", change.Value),
				logger.Err(err),
			)
			return nil
		}
		for _, u := range users {
			if u.ID == change.Value {
				return []draft.Action{draft.SetField{Field: draft.FieldSenderName, Value: u.DisplayName()}}
			}
		}
	case draft.FieldInvoiceID:
		invoices, err := d.listInvoices(ctx)
		if err != nil {
			d.log.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, "invoice number not resolved",
				logger.String("invoice_id", change.Value),
				logger.Err(err),
			)
			return nil
		}
		for _, inv := range invoices {
			if inv.ID == change.Value {
				return []draft.Action{draft.SetField{Field: draft.FieldInvoiceNo, Value: inv.InvoiceNumber}}
			}
		}
	}
	return nil
}

// RetryRateCard re-issues the lookup after a failed or unmatched one.
func (d *Desk) RetryRateCard(ctx context.Context, id uuid.UUID) (*DraftView, error) {
	const op = "service.Desk.RetryRateCard"

	c, err := d.controller(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	state, err := c.Dispatch(ctx, draft.RetryLookup{})
	if err != nil {
		return newDraftView(id, state), fmt.Errorf("%s: %w", op, err)
	}
	return newDraftView(id, state), nil
}

// SubmitDraft creates the consignment and resets the draft for the next entry.
func (d *Desk) SubmitDraft(ctx context.Context, id uuid.UUID) (*entity.Consignment, *DraftView, error) {
	const op = "service.Desk.SubmitDraft"
	log := d.log.Ctx(ctx)

	c, err := d.controller(id)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	created, err := c.Submit(ctx, d.store)
	if err != nil {
		level := logger.ErrorLevel
		if errors.Is(err, entity.ErrInvalidData) || errors.Is(err, entity.ErrRateCardPending) {
			level = logger.WarnLevel
		}
		log.LogAttrs(ctx, level, "consignment submission rejected",
			logger.String("draft_id", id.String()),
			logger.Err(err),
		)
		return nil, newDraftView(id, c.Snapshot()), fmt.Errorf("%s: %w", op, err)
	}
	d.touch(id)

	log.LogAttrs(ctx, logger.InfoLevel, "consignment created",
		logger.String("draft_id", id.String()),
		logger.String("consignment_id", created.ID),
		logger.String("consignment_no", created.ConsignmentNo),
		logger.Int64("sr_no", created.SrNo),
		logger.Duration("duration", time.Since(start)),
	)
	return created, newDraftView(id, c.Snapshot()), nil
}

func (d *Desk) DiscardDraft(ctx context.Context, id uuid.UUID) error {
	if !d.drafts.Delete(id) {
		return fmt.Errorf("service.Desk.DiscardDraft: draft %s: %w", id, entity.ErrDataNotFound)
	}
	d.log.Ctx(ctx).LogAttrs(ctx, logger.InfoLevel, "draft discarded",
		logger.String("draft_id", id.String()),
	)
	return nil
}

// LoadDashboard fetches consignments, users and invoices concurrently. No
// failure cancels the other fetches; a consignment failure becomes a warning
// and directory failures are only logged.
func (d *Desk) LoadDashboard(ctx context.Context) *Dashboard {
	log := d.log.Ctx(ctx)
	dash := &Dashboard{
		Consignments: []entity.Consignment{},
		Users:        []entity.User{},
		Invoices:     []entity.Invoice{},
	}

	var g errgroup.Group

	g.Go(func() error {
		list, err := d.store.ListConsignments(ctx, entity.ConsignmentFilter{})
		if err != nil {
			log.LogAttrs(ctx, logger.ErrorLevel, "failed to load consignments", logger.Err(err))
			dash.Warnings = append(dash.Warnings, MsgLoadFailed)
			return nil
		}
		if list != nil {
			dash.Consignments = list
		}
		return nil
	})

	g.Go(func() error {
		users, err := d.listUsers(ctx)
		if err != nil {
			log.LogAttrs(ctx, logger.WarnLevel, "failed to load users", logger.Err(err))
			return nil
		}
		if users != nil {
			dash.Users = users
		}
		return nil
	})

	g.Go(func() error {
		invoices, err := d.listInvoices(ctx)
		if err != nil {
			log.LogAttrs(ctx, logger.WarnLevel, "failed to load invoices", logger.Err(err))
			return nil
		}
		if invoices != nil {
			dash.Invoices = invoices
		}
		return nil
	})

	_ = g.Wait()
	return dash
}

func (d *Desk) ListConsignments(ctx context.Context, f entity.ConsignmentFilter) ([]entity.Consignment, error) {
	const op = "service.Desk.ListConsignments"

	if err := d.validateFilter(f); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	list, err := d.store.ListConsignments(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	d.warnIfSlow(ctx, op, start)
	return list, nil
}

func (d *Desk) GetConsignment(ctx context.Context, id string) (*entity.Consignment, error) {
	c, err := d.store.GetConsignment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.Desk.GetConsignment: %w", err)
	}
	return c, nil
}

func (d *Desk) DeleteConsignment(ctx context.Context, id string) error {
	const op = "service.Desk.DeleteConsignment"

	if err := d.store.DeleteConsignment(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	d.log.Ctx(ctx).LogAttrs(ctx, logger.InfoLevel, "consignment deleted",
		logger.String("consignment_id", id),
	)
	return nil
}

// ExportConsignments validates req locally before asking the backend for the
// spreadsheet, so an empty selection never reaches it.
func (d *Desk) ExportConsignments(ctx context.Context, req entity.ExportRequest) (*entity.Export, error) {
	const op = "service.Desk.ExportConsignments"

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	export, err := d.exporter.ExportConsignments(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	d.log.Ctx(ctx).LogAttrs(ctx, logger.InfoLevel, "consignments exported",
		logger.String("mode", string(req.Mode)),
		logger.Int("selected", len(req.IDs)),
		logger.Int("bytes", len(export.Content)),
		logger.Duration("duration", time.Since(start)),
	)
	return export, nil
}

func (d *Desk) controller(id uuid.UUID) (*draft.Controller, error) {
	c, ok := d.drafts.Get(id)
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, entity.ErrDataNotFound)
	}
	return c, nil
}

// touch extends the lifetime of an edited draft. A draft that expired
// meanwhile stays gone; its controller is already closed.
func (d *Desk) touch(id uuid.UUID) {
	d.drafts.Touch(id, d.draftTTL)
}

func (d *Desk) listUsers(ctx context.Context) ([]entity.User, error) {
	if d.userCache != nil {
		if users, ok := d.userCache.Get(_usersKey); ok {
			return users, nil
		}
	}

	users, err := d.users.ListUsers(ctx, 0, d.usersPageLimit)
	if err != nil {
		return nil, err
	}
	if d.userCache != nil {
		d.userCache.Put(_usersKey, users, d.directoryTTL)
	}
	return users, nil
}

func (d *Desk) listInvoices(ctx context.Context) ([]entity.Invoice, error) {
	if d.invoiceCache != nil {
		if invoices, ok := d.invoiceCache.Get(_invoicesKey); ok {
			return invoices, nil
		}
	}

	invoices, err := d.invoices.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if d.invoiceCache != nil {
		d.invoiceCache.Put(_invoicesKey, invoices, d.directoryTTL)
	}
	return invoices, nil
}

func (d *Desk) validateFilter(f entity.ConsignmentFilter) error {
	if err := d.validate.Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &entity.ValidationError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("Invalid %s filter", fe.Field()),
			}
		}
		return fmt.Errorf("%w: %w", entity.ErrInvalidData, err)
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() && f.EndDate.Before(f.StartDate.Time) {
		return &entity.ValidationError{Field: "date_range", Message: "End date must not be before start date"}
	}
	return nil
}

func (d *Desk) warnIfSlow(ctx context.Context, op string, start time.Time) {
	if elapsed := time.Since(start); elapsed > _slowOperation {
		d.log.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, "slow service operation",
			logger.String("op", op),
			logger.Duration("duration", elapsed),
		)
	}
}
