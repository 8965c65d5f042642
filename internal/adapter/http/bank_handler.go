package http

import (
	"net/http"

	"masar-mortgage/internal/usecase/catalog"
	"masar-mortgage/internal/usecase/comparison"

	"github.com/labstack/echo/v4"
)

type BankHandler struct {
	catalog    *catalog.Usecase
	comparison *comparison.Usecase
}

func NewBankHandler(cat *catalog.Usecase, cmp *comparison.Usecase) *BankHandler {
	return &BankHandler{catalog: cat, comparison: cmp}
}

func (h *BankHandler) List(c echo.Context) error {
	banks, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"banks": banks})
}

func (h *BankHandler) Compare(c echo.Context) error {
	var req compareReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	t, err := h.comparison.Compare(c.Request().Context(), comparison.Request(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *BankHandler) Schedules(c echo.Context) error {
	var req compareReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	s, err := h.comparison.Schedules(c.Request().Context(), comparison.Request(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
