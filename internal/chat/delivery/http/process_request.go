package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidMessage
	}
	req.Message = strings.TrimSpace(req.Message)
	req.SessionID = strings.TrimSpace(req.SessionID)
	if req.Message == "" {
		return req, errInvalidMessage
	}
	return req, nil
}
