package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSEND statuses. Business failures travel as "fail" with HTTP 200; only
// transport-level problems use non-200 codes.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success writes a JSEND success envelope.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Data: data})
}

// Fail writes a JSEND fail envelope with HTTP 200.
func Fail(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Status: StatusFail, Data: data})
}

// FailMsg writes a fail envelope carrying a single error message.
func FailMsg(c *gin.Context, msg string) {
	Fail(c, gin.H{"error": msg})
}

// FailAbort aborts the request with the given HTTP status and a fail
// envelope; used by middleware (auth, rate limiting).
func FailAbort(c *gin.Context, status int, data any) {
	c.AbortWithStatusJSON(status, Envelope{Status: StatusFail, Data: data})
}

// Error writes a JSEND error envelope for unexpected server failures.
func Error(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, Envelope{Status: StatusError, Message: msg})
}
