package httpt

import (
	"fmt"
	"net/http"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) getReference(c *gin.Context) {
	c.JSON(http.StatusOK, h.reference)
}

func (h *Handler) getDashboard(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	c.JSON(http.StatusOK, h.desk.LoadDashboard(ctx))
}

func (h *Handler) listConsignments(c *gin.Context) {
	const op = "transport.http.listConsignments"

	var f entity.ConsignmentFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		h.handleBadRequest(c, op, "Invalid query parameters", err)
		return
	}

	var err error
	if f.StartDate, err = queryDay(c, "start_date"); err != nil {
		h.handleBadRequest(c, op, "Invalid start date", err)
		return
	}
	if f.EndDate, err = queryDay(c, "end_date"); err != nil {
		h.handleBadRequest(c, op, "Invalid end date", err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.desk.ListConsignments(ctx, f)
	if err != nil {
		h.handleServiceError(c, err, op, service.MsgLoadFailed, nil)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getConsignment(c *gin.Context) {
	const op = "transport.http.getConsignment"

	ctx, cancel := h.requestContext(c)
	defer cancel()

	cons, err := h.desk.GetConsignment(ctx, c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, op, service.MsgLoadFailed, nil)
		return
	}
	c.JSON(http.StatusOK, cons)
}

func (h *Handler) deleteConsignment(c *gin.Context) {
	const op = "transport.http.deleteConsignment"

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.desk.DeleteConsignment(ctx, c.Param("id")); err != nil {
		h.handleServiceError(c, err, op, service.MsgDeleteFailed, nil)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: service.MsgDeleted})
}

func (h *Handler) exportConsignments(c *gin.Context) {
	const op = "transport.http.exportConsignments"

	var req entity.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBadRequest(c, op, msgInvalidRequest, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	export, err := h.desk.ExportConsignments(ctx, req)
	if err != nil {
		h.handleServiceError(c, err, op, service.MsgExportFailed, nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	c.Data(http.StatusOK, export.ContentType, export.Content)
}

func queryDay(c *gin.Context, key string) (entity.Day, error) {
	raw := c.Query(key)
	if raw == "" {
		return entity.Day{}, nil
	}
	return entity.ParseDay(raw)
}
