package httpt

import (
	"net/http"

	"github.com/Kabir14815/rr/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) trackShipment(c *gin.Context) {
	const op = "transport.http.trackShipment"

	ctx, cancel := h.requestContext(c)
	defer cancel()

	tracking, err := h.storefront.Track(ctx, c.Param("code"))
	if err != nil {
		h.handleServiceError(c, err, op, service.MsgShipmentNotFound, nil)
		return
	}
	c.JSON(http.StatusOK, tracking)
}

func (h *Handler) calculateQuote(c *gin.Context) {
	const op = "transport.http.calculateQuote"

	var body QuoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.handleBadRequest(c, op, msgInvalidRequest, err)
		return
	}
	req, err := body.Entity()
	if err != nil {
		h.handleBadRequest(c, op, service.MsgInvalidWeight, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	quote, err := h.storefront.Quote(ctx, req)
	if err != nil {
		h.handleServiceError(c, err, op, service.MsgQuoteFailed, nil)
		return
	}
	c.JSON(http.StatusOK, quote)
}
