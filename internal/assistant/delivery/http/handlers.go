package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "fms-dashboard/pkg/errors"
	"fms-dashboard/pkg/response"
)

// Chat godoc
// @Summary     Ask the assistant
// @Description Sends the question and earlier turns through the configured LLM providers, in priority order with fallback.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-Company header string  false "Company of a company login"
// @Param       request   body   chatReq true  "Question and history"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Empty question or malformed body"
// @Failure     502 {object} response.Resp "Every provider failed"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Chat: invalid body: %v", err)
		response.Error(c, pkgErrors.ErrBadRequest, nil)
		return
	}

	output, err := h.uc.Chat(ctx, h.processScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}
