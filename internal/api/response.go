package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"wallet_ledger/internal/service" // Service errors

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Money values
	"github.com/sirupsen/logrus"    // Logging library
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true // Money goes out as JSON numbers
}

// Response is the envelope every endpoint answers with
type Response struct {
	Data   any      `json:"data,omitempty"` // Payload, omitted on failure
	Errors []string `json:"errors"`         // Human readable problems, empty on success
}

// respond writes data with status
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Data: data, Errors: []string{}})
}

// fail writes the error envelope
func fail(c *gin.Context, status int, msgs ...string) {
	c.JSON(status, Response{Errors: msgs})
}

// handleError maps service errors to the envelope: collected validation problems
// become a 400, anything else is logged and reported as a 500
func handleError(c *gin.Context, err error, fields logrus.Fields, msg string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		fail(c, http.StatusBadRequest, verr.Messages()...)
		return
	}
	fields["error"] = err.Error()
	logrus.WithFields(fields).Error(msg) // Log the failure with context
	fail(c, http.StatusInternalServerError, "internal server error")
}
