package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"coffee-assistant/internal/product"
)

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Query) == "" {
		return req, product.ErrEmptyQuery
	}
	return req, nil
}
