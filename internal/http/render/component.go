package render

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

// Component renders a templ component as the response body.
func Component(c *gin.Context, status int, cmp templ.Component) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := cmp.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}
