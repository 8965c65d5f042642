package http

import (
	"net/http"

	"masar-mortgage/internal/domain/mortgage"
	"masar-mortgage/internal/usecase/calculator"

	"github.com/labstack/echo/v4"
)

type MortgageHandler struct{ uc *calculator.Usecase }

func NewMortgageHandler(uc *calculator.Usecase) *MortgageHandler { return &MortgageHandler{uc: uc} }

func (h *MortgageHandler) Eligibility(c echo.Context) error {
	var req applicationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.uc.CheckEligibility(c.Request().Context(), req.toDomain())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// Calculate answers 422 with the failing rule when the applicant is not
// eligible.
func (h *MortgageHandler) Calculate(c echo.Context) error {
	var req applicationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Calculate(c.Request().Context(), req.toDomain())
	if err != nil {
		return writeError(c, err)
	}
	if !out.Verdict.IsEligible {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: out.Verdict.Reason,
			Rule:  string(out.Verdict.Rule),
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MortgageHandler) Wizard(c echo.Context) error {
	var req wizardReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.Advance(c.Request().Context(), calculator.WizardCommand{
		Action:      calculator.WizardAction(req.Action),
		Target:      mortgage.StepID(req.Target),
		State:       req.State,
		Application: req.Application,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
