// Package sessioncookie stores the signed-in identity, including the opaque
// API token, in an HMAC-signed cookie. The token is never validated or
// decoded here; it is only forwarded to the backend.
package sessioncookie

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
)

var ErrInvalid = errors.New("invalid session cookie")

// User is the session identity as returned by the sign-in endpoint.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Token   string `json:"token"`
}

type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
	TTL        time.Duration
}

func New(secret []byte, name string, secure bool, ttl time.Duration) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure, TTL: ttl}
}

func (c *Codec) Encode(u User) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (User, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || !verify(c.Secret, payload, sig) {
		return User{}, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return User{}, ErrInvalid
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return User{}, ErrInvalid
	}
	if u.Token == "" {
		return User{}, ErrInvalid
	}
	return u, nil
}

func (c *Codec) Get(ctx *gin.Context) (User, bool) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return User{}, false
	}
	u, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return User{}, false
	}
	return u, true
}

func (c *Codec) Set(ctx *gin.Context, u User) {
	val, err := c.Encode(u)
	if err != nil {
		return
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, val, int(ttl.Seconds()), "/", "", c.Secure, true)
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
