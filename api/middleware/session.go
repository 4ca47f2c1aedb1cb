package middleware

import (
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionTokenKey is the gin context key carrying the visit token.
const SessionTokenKey = "session_token"

// HeaderSessionToken lets non-browser clients carry the token
// explicitly instead of via cookie.
const HeaderSessionToken = "X-Session-Token"

// SessionMiddleware ensures every request carries an opaque visit
// token: cookie first, header second, otherwise a fresh UUID that is
// set back as a cookie. The token only keys server-side state; it
// grants nothing by itself.
func SessionMiddleware(cfg *config.SessionConfig) gin.HandlerFunc {
	maxAge := cfg.TTLMinutes * 60

	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.CookieName)
		if err != nil || token == "" {
			token = c.GetHeader(HeaderSessionToken)
		}
		if token == "" {
			token = uuid.NewString()
			c.SetCookie(cfg.CookieName, token, maxAge, "/", "", false, true)
		}

		c.Set(SessionTokenKey, token)
		c.Header(HeaderSessionToken, token)
		c.Next()
	}
}

// SessionToken reads the visit token stashed by SessionMiddleware.
func SessionToken(c *gin.Context) string {
	token, _ := c.Get(SessionTokenKey)
	s, _ := token.(string)
	return s
}
