package httpt

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/Kabir14815/rr/internal/draft"
	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/service"
	"github.com/Kabir14815/rr/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "Invalid request body"
	msgInvalidDraftID = "Invalid draft id"
	msgDraftNotFound  = "Draft not found or expired"
	msgNotFound       = "Consignment not found"
	msgPricingLocked  = "Pricing is set by the rate card and cannot be edited"
	msgConflict       = "Consignment already exists"
	msgBackendDown    = "Backend service unavailable"
	msgTimeout        = "Request timed out"
	msgInternal       = "Internal service error"
)

// handleServiceError maps err to a status and writes it with the message an
// operator should see. fallback is used when err carries no better text. data,
// when not nil, is returned alongside the error so the form can re-render.
func (h *Handler) handleServiceError(c *gin.Context, err error, op, fallback string, data any) {
	ctx := c.Request.Context()
	log := h.log.Ctx(ctx)

	status, message := classify(err, fallback)

	level := logger.WarnLevel
	if status >= http.StatusInternalServerError {
		level = logger.ErrorLevel
	}
	log.LogAttrs(ctx, level, op+" failed",
		logger.Err(err),
		logger.Int("status", status),
		logger.String("path", c.FullPath()),
		logger.String("client_ip", c.ClientIP()),
	)

	c.JSON(status, ErrorResponse{Error: message, Data: data})
}

func classify(err error, fallback string) (int, string) {
	var netErr net.Error

	switch {
	case errors.Is(err, entity.ErrShipmentNotFound):
		return http.StatusNotFound, service.MsgShipmentNotFound
	case errors.Is(err, entity.ErrPricingLocked):
		return http.StatusConflict, msgPricingLocked
	case errors.Is(err, entity.ErrRateCardPending):
		return http.StatusConflict, draft.MsgRateCardPending
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return http.StatusGatewayTimeout, msgTimeout
	case errors.Is(err, entity.ErrInvalidData):
		return http.StatusBadRequest, entity.UserMessage(err, fallback)
	case errors.Is(err, entity.ErrDataNotFound):
		return http.StatusNotFound, entity.UserMessage(err, msgNotFound)
	case errors.Is(err, entity.ErrConflictingData):
		return http.StatusConflict, entity.UserMessage(err, msgConflict)
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusBadGateway, msgBackendDown
	case errors.Is(err, entity.ErrTransport):
		return http.StatusBadGateway, entity.UserMessage(err, fallback)
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func (h *Handler) handleBadRequest(c *gin.Context, op, message string, err error) {
	ctx := c.Request.Context()

	h.log.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, "rejected request",
		logger.String("op", op),
		logger.Err(err),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
