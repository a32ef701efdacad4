package httpt

import (
	"errors"
	"net/http"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/service"
	"github.com/Kabir14815/rr/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) openDraft(c *gin.Context) {
	const op = "transport.http.openDraft"

	ctx, cancel := h.requestContext(c)
	defer cancel()

	view, err := h.desk.OpenDraft(ctx)
	if err != nil {
		h.handleServiceError(c, err, op, msgInternal, nil)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handler) getDraft(c *gin.Context) {
	const op = "transport.http.getDraft"

	id, ok := h.draftID(c, op)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	view, err := h.desk.GetDraft(ctx, id)
	if err != nil {
		h.handleDraftError(c, err, op, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) updateDraft(c *gin.Context) {
	const op = "transport.http.updateDraft"

	id, ok := h.draftID(c, op)
	if !ok {
		return
	}

	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBadRequest(c, op, msgInvalidRequest, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	view, err := h.desk.UpdateDraft(ctx, id, req.Changes)
	if err != nil {
		h.handleDraftError(c, err, op, msgInvalidRequest, view)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) retryRateCard(c *gin.Context) {
	const op = "transport.http.retryRateCard"

	id, ok := h.draftID(c, op)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	view, err := h.desk.RetryRateCard(ctx, id)
	if err != nil {
		h.handleDraftError(c, err, op, msgInvalidRequest, view)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) submitDraft(c *gin.Context) {
	const op = "transport.http.submitDraft"

	id, ok := h.draftID(c, op)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	created, view, err := h.desk.SubmitDraft(ctx, id)
	if err != nil {
		h.handleDraftError(c, err, op, service.MsgCreateFailed, view)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: service.MsgConsignmentAdded,
		Data:    SubmitResult{Consignment: created, Draft: view},
	})
}

func (h *Handler) discardDraft(c *gin.Context) {
	const op = "transport.http.discardDraft"

	id, ok := h.draftID(c, op)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.desk.DiscardDraft(ctx, id); err != nil {
		h.handleDraftError(c, err, op, msgInternal, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) draftID(c *gin.Context, op string) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.handleBadRequest(c, op, msgInvalidDraftID, err)
		return uuid.Nil, false
	}
	return id, true
}

// handleDraftError reports a missing draft as expired. A view returned with
// the error is attached so the form keeps its state.
func (h *Handler) handleDraftError(c *gin.Context, err error, op, fallback string, view *service.DraftView) {
	var data any
	if view != nil {
		data = view
	}

	if view == nil && errors.Is(err, entity.ErrDataNotFound) {
		h.handleNotFound(c, err, op, msgDraftNotFound)
		return
	}
	h.handleServiceError(c, err, op, fallback, data)
}

func (h *Handler) handleNotFound(c *gin.Context, err error, op, message string) {
	ctx := c.Request.Context()
	h.log.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, op+" failed", logger.Err(err))
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}
