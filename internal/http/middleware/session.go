package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/http/sessioncookie"
	"github.com/ignacioainol/Mern-Amazona/templates/pages"
)

const CtxKeyUser = "session_user"

// Session loads the signed-in identity from the session cookie into the
// request context. There is nothing to look up server-side: the cookie
// carries the whole identity plus the opaque API token. The identity is
// also pushed into the render context so the page chrome can show it.
func Session(codec *sessioncookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u, ok := codec.Get(c); ok {
			c.Set(CtxKeyUser, u)
			c.Request = c.Request.WithContext(
				pages.WithUser(c.Request.Context(), u.Name, u.IsAdmin))
		}
		c.Next()
	}
}

// CurrentUser returns the signed-in user, if any.
func CurrentUser(c *gin.Context) (sessioncookie.User, bool) {
	v, ok := c.Get(CtxKeyUser)
	if !ok {
		return sessioncookie.User{}, false
	}
	u, ok := v.(sessioncookie.User)
	if !ok || u.Token == "" {
		return sessioncookie.User{}, false
	}
	return u, true
}
