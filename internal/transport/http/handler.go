package httpt

import (
	"context"
	"errors"
	"time"

	"github.com/Kabir14815/rr/internal/draft"
	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/service"
	"github.com/Kabir14815/rr/pkg/logger"
	"github.com/Kabir14815/rr/pkg/metric"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handler.go -destination=mock/handler.go -package=mock_httpt

const (
	_defaultRequestTimeout = 15 * time.Second
	_slowRequest           = 500 * time.Millisecond
)

type (
	DeskService interface {
		OpenDraft(ctx context.Context) (*service.DraftView, error)
		GetDraft(ctx context.Context, id uuid.UUID) (*service.DraftView, error)
		UpdateDraft(ctx context.Context, id uuid.UUID, changes []draft.SetField) (*service.DraftView, error)
		RetryRateCard(ctx context.Context, id uuid.UUID) (*service.DraftView, error)
		SubmitDraft(ctx context.Context, id uuid.UUID) (*entity.Consignment, *service.DraftView, error)
		DiscardDraft(ctx context.Context, id uuid.UUID) error
		LoadDashboard(ctx context.Context) *service.Dashboard
		ListConsignments(ctx context.Context, f entity.ConsignmentFilter) ([]entity.Consignment, error)
		GetConsignment(ctx context.Context, id string) (*entity.Consignment, error)
		DeleteConsignment(ctx context.Context, id string) error
		ExportConsignments(ctx context.Context, req entity.ExportRequest) (*entity.Export, error)
	}

	StorefrontService interface {
		Track(ctx context.Context, code string) (*service.Tracking, error)
		Quote(ctx context.Context, req entity.QuoteRequest) (*service.QuoteView, error)
	}
)

var (
	_ DeskService       = (*service.Desk)(nil)
	_ StorefrontService = (*service.Storefront)(nil)
)

// Handler serves the desk JSON API.
type Handler struct {
	desk       DeskService
	storefront StorefrontService
	log        logger.Logger
	metrics    metric.HTTP
	router     *gin.Engine
	reference  service.Reference

	version string
	timeout time.Duration
}

type Option func(*Handler)

// RequestTimeout bounds the service call of every request.
func RequestTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.timeout = timeout
	}
}

func Version(version string) Option {
	return func(h *Handler) {
		h.version = version
	}
}

func NewHandler(
	desk DeskService,
	storefront StorefrontService,
	log logger.Logger,
	metrics metric.HTTP,
	opts ...Option,
) (*Handler, error) {
	h := &Handler{
		desk:       desk,
		storefront: storefront,
		log:        log,
		metrics:    metrics,
		reference:  service.NewReference(),
		timeout:    _defaultRequestTimeout,
	}

	for _, opt := range opts {
		opt(h)
	}
	if err := h.validate(); err != nil {
		return nil, err
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	h.router = router
	h.setupRoutes()

	return h, nil
}

func (h *Handler) Engine() *gin.Engine {
	return h.router
}

func (h *Handler) validate() error {
	switch {
	case h.desk == nil:
		return errors.New("transport.http.NewHandler: desk service is required")
	case h.storefront == nil:
		return errors.New("transport.http.NewHandler: storefront service is required")
	case h.log == nil:
		return errors.New("transport.http.NewHandler: logger is required")
	case h.metrics == nil:
		return errors.New("transport.http.NewHandler: metrics are required")
	case h.timeout <= 0:
		return errors.New("transport.http.NewHandler: invalid request timeout: must be > 0")
	}
	return nil
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
