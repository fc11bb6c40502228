// Package httperr carries the wire shape for error responses emitted by the
// middleware chain. Handlers respond with the same flat {"error": ...} object
// directly; Response exists so the recovery and error middleware produce an
// identical body.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError records the underlying error on the gin context for the
// error middleware and request log, then aborts with the public message.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
