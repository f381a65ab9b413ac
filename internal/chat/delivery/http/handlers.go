package http

import (
	"github.com/gin-gonic/gin"

	"coffee-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Plans the message, calls the calculator, outlet directory or chat model, and records the exchange. Omit session_id to start a new session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional session id"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := h.uc.Turn(ctx, req.toInput())
	response.OK(c, h.newChatResp(out))
}

// History godoc
// @Summary     Get a session transcript
// @Description Returns every turn of the session, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} transcriptResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.History(ctx, c.Param("id"))
	if err != nil {
		mapped := h.mapError(err)
		if mapped != errSessionNotFound {
			h.l.Errorf(ctx, "internal.chat.delivery.http.History: %v", err)
		}
		response.Error(c, mapped)
		return
	}

	response.OK(c, h.newTranscriptResp(t))
}
