package http

import (
	"net/http"
	"net/url"

	"masar-mortgage/internal/adapter/middleware"
	ucSession "masar-mortgage/internal/usecase/session"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *ucSession.Usecase }

func NewAuthHandler(uc *ucSession.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	auth, err := h.uc.Login(c.Request().Context(), ucSession.LoginInput{
		Name:     req.Name,
		Password: req.Password,
		Redirect: req.Redirect,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, auth)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), middleware.BearerToken(c.Request())); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the session the guard just resumed.
func (h *AuthHandler) Session(c echo.Context) error {
	auth, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ucSession.ErrInvalidToken.Error()})
	}
	return c.JSON(http.StatusOK, auth)
}

const loginPath = "/login"

type accessResp struct {
	Path          string `json:"path"`
	Protected     bool   `json:"protected"`
	Authenticated bool   `json:"authenticated"`
	Allowed       bool   `json:"allowed"`
	Redirect      string `json:"redirect,omitempty"`
}

// Access tells a client whether a page may be shown. A denied protected
// page comes back with the login redirect the client should follow.
func (h *AuthHandler) Access(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing path query param"})
	}
	authed := false
	if tok := middleware.BearerToken(c.Request()); tok != "" {
		if auth, err := h.uc.Resume(c.Request().Context(), tok); err == nil {
			authed = true
			c.Response().Header().Set(middleware.HeaderSessionToken, auth.Token)
		}
	}
	resp := accessResp{
		Path:          path,
		Protected:     ucSession.IsProtected(path),
		Authenticated: authed,
		Allowed:       ucSession.CheckAccess(path, authed),
	}
	if !resp.Allowed {
		resp.Redirect = loginPath + "?redirect=" + url.QueryEscape(ucSession.SanitizeRedirect(path))
	}
	return c.JSON(http.StatusOK, resp)
}
