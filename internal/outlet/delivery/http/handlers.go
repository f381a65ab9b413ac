package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Query godoc
// @Summary     Query outlets in natural language
// @Description Converts the question to a read-only SQL query over the outlet table. Falls back to a keyword search on name and address.
// @Tags        Outlets
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Natural language query"
// @Success     200 {object} queryResp
// @Failure     422 {object} errorResp
// @Failure     503 {object} errorResp
// @Router      /outlets [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResp{Detail: detailInvalidBody})
		return
	}

	out, err := h.uc.Query(ctx, req.Query)
	if err != nil {
		status, detail := h.mapError(err)
		h.l.Errorf(ctx, "internal.outlet.delivery.http.Query: %v", err)
		c.JSON(status, errorResp{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, h.newQueryResp(out))
}
