package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// SignIn renders the sign-in form. redirect is carried through the form so
// the post-login destination survives the round trip.
func SignIn(fl *view.Flash, email, redirect string, fieldErrs map[string]string) templ.Component {
	var sb strings.Builder
	sb.WriteString(`<div class="form-narrow"><h1>Sign In</h1>`)
	sb.WriteString(`<form method="post" action="/login">`)
	sb.WriteString(`<input type="hidden" name="redirect" value="` + esc(redirect) + `"/>`)

	sb.WriteString(`<div class="form-group"><label for="email">Email</label>`)
	sb.WriteString(`<input type="email" id="email" name="email" value="` + esc(email) + `" required/>`)
	writeFieldError(&sb, fieldErrs, "email")
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="form-group"><label for="password">Password</label>`)
	sb.WriteString(`<input type="password" id="password" name="password" required/>`)
	writeFieldError(&sb, fieldErrs, "password")
	sb.WriteString(`</div>`)

	sb.WriteString(`<button class="btn btn-primary" type="submit">Sign In</button>`)
	sb.WriteString(`</form></div>`)
	return layout("Sign In", fl, sb.String())
}

func writeFieldError(sb *strings.Builder, errs map[string]string, field string) {
	if errs == nil {
		return
	}
	if msg, ok := errs[field]; ok {
		sb.WriteString(`<p class="field-error">` + esc(msg) + `</p>`)
	}
}
