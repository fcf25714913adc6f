// Package pages holds the SSR page components. HTML is assembled by hand
// with strings.Builder and html.EscapeString, then wrapped as a
// templ.Component so handlers render everything through one seam.
package pages

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

func esc(s string) string { return html.EscapeString(s) }

type ctxKey int

const navUserKey ctxKey = 0

type navUser struct {
	Name  string
	Admin bool
}

// WithUser stores the signed-in identity for the navbar. The session
// middleware sets it on the request context; the layout reads it at render
// time.
func WithUser(ctx context.Context, name string, admin bool) context.Context {
	return context.WithValue(ctx, navUserKey, navUser{Name: name, Admin: admin})
}

// layout renders the shared chrome: header nav, flash box, page body. The
// body is assembled eagerly; the navbar waits for the render context so it
// can show the signed-in user.
func layout(title string, fl *view.Flash, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		sb.WriteString(`<title>` + esc(title) + `</title>`)
		sb.WriteString(`<link rel="stylesheet" href="/static/app.css"/>`)
		sb.WriteString(`</head><body>`)
		sb.WriteString(`<header class="navbar"><a class="brand" href="/">amazona</a>`)
		sb.WriteString(`<form method="get" action="/" class="search">`)
		sb.WriteString(`<input type="search" name="q" placeholder="Search products..."/>`)
		sb.WriteString(`<button class="btn" type="submit">Search</button></form>`)
		sb.WriteString(`<nav>`)
		sb.WriteString(`<a href="/cart">Cart</a> `)
		if u, ok := ctx.Value(navUserKey).(navUser); ok && u.Name != "" {
			if u.Admin {
				sb.WriteString(`<a href="/admin/products">Admin</a> `)
			}
			sb.WriteString(`<span class="nav-user">` + esc(u.Name) + `</span> `)
			sb.WriteString(`<form method="post" action="/logout" class="inline">`)
			sb.WriteString(`<button class="btn-link" type="submit">Sign Out</button></form>`)
		} else {
			sb.WriteString(`<a href="/login">Sign In</a>`)
		}
		sb.WriteString(`</nav></header>`)
		sb.WriteString(`<main class="container">`)
		writeFlash(&sb, fl)
		sb.WriteString(body)
		sb.WriteString(`</main>`)
		sb.WriteString(`<footer class="footer">All rights reserved</footer>`)
		sb.WriteString(`</body></html>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func writeFlash(sb *strings.Builder, fl *view.Flash) {
	if fl == nil || fl.Message == "" {
		return
	}
	sb.WriteString(`<div class="alert alert-` + esc(string(fl.Kind)) + `">` + esc(fl.Message) + `</div>`)
}

func writeLoadingBox(sb *strings.Builder) {
	sb.WriteString(`<div class="loading-box"><span class="spinner"></span> Loading...</div>`)
}

func writeErrorBox(sb *strings.Builder, msg string) {
	sb.WriteString(`<div class="message-box message-box-danger">` + esc(msg) + `</div>`)
}

// writeCheckoutSteps renders the four-step checkout progress bar; step is
// how many steps are complete (1..4).
func writeCheckoutSteps(sb *strings.Builder, step int) {
	labels := []string{"Sign-In", "Shipping", "Payment", "Place Order"}
	sb.WriteString(`<div class="checkout-steps">`)
	for i, label := range labels {
		cls := "step"
		if i < step {
			cls = "step step-active"
		}
		sb.WriteString(`<div class="` + cls + `">` + esc(label) + `</div>`)
	}
	sb.WriteString(`</div>`)
}

func money(v float64) string { return esc(view.Money(v)) }

func itoa(n int) string { return fmt.Sprintf("%d", n) }
