package api

import (
	"net/http" // HTTP status codes

	"wallet_ledger/internal/domain"  // Importing domain models
	"wallet_ledger/internal/service" // Business logic

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UserWalletDTO is the wire form of a user to wallet link
type UserWalletDTO struct {
	ID     uint  `json:"id"`                        // Server assigned, ignored on input
	Users  *uint `json:"users" binding:"required"`  // Linked user id
	Wallet *uint `json:"wallet" binding:"required"` // Linked wallet id
}

var userWalletMessages = fieldMessages{
	"Users.required":  "user id is required",
	"Wallet.required": "wallet id is required",
}

// CreateUserWalletHandler grants a user access to a wallet
func CreateUserWalletHandler(links *service.UserWalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto UserWalletDTO // Bind JSON request to struct
		if err := c.ShouldBindJSON(&dto); err != nil {
			fail(c, http.StatusBadRequest, bindErrors(err, userWalletMessages)...)
			return
		}
		uw, err := links.Create(c.Request.Context(), &domain.UserWallet{UserID: *dto.Users, WalletID: *dto.Wallet})
		if err != nil {
			handleError(c, err, logrus.Fields{"user_id": *dto.Users, "wallet_id": *dto.Wallet}, "Failed to link user to wallet")
			return
		}
		respond(c, http.StatusCreated, UserWalletDTO{ID: uw.ID, Users: &uw.UserID, Wallet: &uw.WalletID})
	}
}
