// Package cartcookie persists the cart snapshot across requests. The whole
// cart travels in one HMAC-signed cookie; the backend never stores it.
package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/modules/cart"
)

var ErrInvalid = errors.New("invalid cart cookie")

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json).base64(hmac)
func (c *Codec) Encode(crt *cart.Cart) (string, error) {
	b, err := json.Marshal(crt)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (*cart.Cart, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || !verify(c.Secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var crt cart.Cart
	if err := json.Unmarshal(raw, &crt); err != nil {
		return nil, ErrInvalid
	}
	return &crt, nil
}

// Get returns the cart from the request cookie, or an empty cart when the
// cookie is missing or tampered with. A bad cookie is cleared so it is not
// re-parsed on every request.
func (c *Codec) Get(ctx *gin.Context) *cart.Cart {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return cart.New()
	}
	crt, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return cart.New()
	}
	return crt
}

func (c *Codec) Set(ctx *gin.Context, crt *cart.Cart) {
	val, err := c.Encode(crt)
	if err != nil {
		return
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
