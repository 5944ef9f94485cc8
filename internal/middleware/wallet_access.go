package middleware

import (
	"context"  // Request scoped cancellation
	"errors"   // Sentinel comparison
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"wallet_ledger/internal/service" // Authorization errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Authorizer decides whether a user may read a wallet
type Authorizer interface {
	Authorize(ctx context.Context, userID, walletID uint) error
}

// WalletAccessMiddleware lets the request through only when the authenticated user is
// linked to the wallet named by the path parameter param. A missing link is reported
// as 400, like any other rejected request on these routes.
func WalletAccessMiddleware(auth Authorizer, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c) // Get userID from context
		if !ok {
			abort(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		walletID, err := strconv.ParseUint(c.Param(param), 10, 64) // Parse wallet id from path
		if err != nil {
			abort(c, http.StatusBadRequest, "invalid wallet id")
			return
		}
		err = auth.Authorize(c.Request.Context(), userID, uint(walletID))
		if errors.Is(err, service.ErrPermissionDenied) {
			// Log the denied attempt
			logrus.WithFields(logrus.Fields{
				"user_id":   userID,
				"wallet_id": walletID,
				"path":      c.FullPath(),
			}).Warn("Wallet access denied")
			abort(c, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":   userID,
				"wallet_id": walletID,
				"error":     err.Error(),
			}).Error("Wallet access check failed")
			abort(c, http.StatusInternalServerError, "internal server error")
			return
		}
		c.Next() // Linked, proceed to the handler
	}
}
