package pages

import (
	"strings"

	"github.com/a-h/templ"
)

// Error renders the shared error page used by the error handler middleware.
func Error(status int, message string) templ.Component {
	var sb strings.Builder
	sb.WriteString(`<div class="error-page">`)
	sb.WriteString(`<h1>` + itoa(status) + `</h1>`)
	sb.WriteString(`<p>` + esc(message) + `</p>`)
	sb.WriteString(`<a class="btn btn-primary" href="/">Back to shopping</a>`)
	sb.WriteString(`</div>`)
	return layout("Error", nil, sb.String())
}
