// Package checkoutcookie persists checkout progress: the shipping address
// and the chosen payment method. Unlike the cart cookie it survives order
// placement, so a returning customer keeps their defaults.
package checkoutcookie

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

var ErrInvalid = errors.New("invalid checkout cookie")

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

func (c *Codec) Encode(ck cart.Checkout) (string, error) {
	b, err := json.Marshal(ck)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (cart.Checkout, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || !verify(c.Secret, payload, sig) {
		return cart.Checkout{}, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return cart.Checkout{}, ErrInvalid
	}
	var ck cart.Checkout
	if err := json.Unmarshal(raw, &ck); err != nil {
		return cart.Checkout{}, ErrInvalid
	}
	return ck, nil
}

// Get returns the stored checkout progress, zero-valued when absent.
func (c *Codec) Get(ctx *gin.Context) cart.Checkout {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return cart.Checkout{}
	}
	ck, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return cart.Checkout{}
	}
	return ck
}

func (c *Codec) Set(ctx *gin.Context, ck cart.Checkout) {
	val, err := c.Encode(ck)
	if err != nil {
		return
	}
	maxAge := int((90 * 24 * time.Hour).Seconds())
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
