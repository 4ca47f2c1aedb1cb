package v1

import (
	"github.com/rbnssalles-rbns/Projeto-Pizzaria/pkg/e"

	"github.com/gin-gonic/gin"
)

// Respond writes the uniform {code, message, ...} envelope. Extra
// fields are merged in at the top level.
func Respond(c *gin.Context, status, code int, extra gin.H) {
	body := gin.H{
		"code":    code,
		"message": e.GetMsg(code),
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// RespondMsg is Respond with an explicit message overriding the code
// table, for messages that interpolate user data.
func RespondMsg(c *gin.Context, status, code int, message string, extra gin.H) {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}
