package http

import (
	"net/http"

	"masar-mortgage/internal/usecase/assistant"

	"github.com/labstack/echo/v4"
)

type AssistantHandler struct{ chain *assistant.Chain }

func NewAssistantHandler(chain *assistant.Chain) *AssistantHandler {
	return &AssistantHandler{chain: chain}
}

func (h *AssistantHandler) Ask(c echo.Context) error {
	var req askReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	q := assistant.Question{Text: req.Question, History: make([]assistant.Message, len(req.History))}
	for i, m := range req.History {
		q.History[i] = assistant.Message{Role: assistant.Role(m.Role), Content: m.Content}
	}
	ans, err := h.chain.Ask(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ans)
}
