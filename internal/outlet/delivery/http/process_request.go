package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"coffee-assistant/internal/outlet"
)

func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Query) == "" {
		return req, outlet.ErrEmptyQuery
	}
	return req, nil
}
