package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the flat error envelope the relay returns on every failure
// class: {error, details?}.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func RespondError(c *gin.Context, status int, msg string, err error) {
	body := ErrorBody{Error: msg}
	if err != nil {
		body.Details = err.Error()
	}
	c.JSON(status, body)
}

func AbortError(c *gin.Context, status int, msg string, err error) {
	body := ErrorBody{Error: msg}
	if err != nil {
		body.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
