package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/http/flash"
	"github.com/ignacioainol/Mern-Amazona/internal/http/middleware"
	"github.com/ignacioainol/Mern-Amazona/internal/http/render"
	"github.com/ignacioainol/Mern-Amazona/internal/http/sessioncookie"
	"github.com/ignacioainol/Mern-Amazona/internal/http/validation"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
	"github.com/ignacioainol/Mern-Amazona/templates/pages"
)

// Auth serves sign-in and sign-out. Credentials go straight to the backend;
// the returned identity and token live in the session cookie.
type Auth struct {
	api      *api.Client
	sessions *sessioncookie.Codec
	flash    *flash.Codec
}

func NewAuth(apiClient *api.Client, sessions *sessioncookie.Codec, flashCodec *flash.Codec) *Auth {
	return &Auth{api: apiClient, sessions: sessions, flash: flashCodec}
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
	Redirect string `form:"redirect"`
}

func (h *Auth) ShowLogin(c *gin.Context) {
	redirect := safeRedirect(c.Query("redirect"))
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, redirect)
		return
	}
	render.Component(c, http.StatusOK, pages.SignIn(middleware.GetFlash(c), "", redirect, nil))
}

func (h *Auth) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		errs := validation.FromBindError(err, &form)
		render.Component(c, http.StatusBadRequest,
			pages.SignIn(middleware.GetFlash(c), form.Email, safeRedirect(form.Redirect), errs))
		return
	}

	u, err := h.api.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		fl := &view.Flash{Kind: view.FlashError, Message: api.Normalize(err)}
		render.Component(c, http.StatusUnauthorized,
			pages.SignIn(fl, form.Email, safeRedirect(form.Redirect), nil))
		return
	}

	h.sessions.Set(c, sessioncookie.User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
		Token:   u.Token,
	})
	c.Redirect(http.StatusFound, safeRedirect(form.Redirect))
}

// Logout drops the session. The cart and checkout cookies stay; the visitor
// keeps their cart and saved defaults across sign-ins.
func (h *Auth) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	render.RedirectWithFlash(c, h.flash, "/", view.FlashInfo, "Signed out.")
}
