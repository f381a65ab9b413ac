package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Search godoc
// @Summary     Search products
// @Description Vector search over the product catalogue with a generated summary of the hits.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Query and optional top_k (default 3)"
// @Success     200 {object} searchResp
// @Failure     422 {object} errorResp
// @Failure     503 {object} errorResp
// @Router      /products [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResp{Detail: detailInvalidBody})
		return
	}

	out, err := h.uc.Search(ctx, req.Query, req.topK())
	if err != nil {
		status, detail := h.mapError(err)
		h.l.Errorf(ctx, "internal.product.delivery.http.Search: %v", err)
		c.JSON(status, errorResp{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, h.newSearchResp(out))
}
