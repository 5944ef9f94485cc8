package api

import (
	"net/http" // HTTP status codes

	"wallet_ledger/internal/domain"  // Importing domain models
	"wallet_ledger/internal/service" // Business logic

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"github.com/sirupsen/logrus"    // Logging library
)

// WalletDTO is the wire form of a wallet
type WalletDTO struct {
	ID    uint             `json:"id"`                       // Server assigned, ignored on input
	Name  string           `json:"name" binding:"required"`  // Wallet name
	Value *decimal.Decimal `json:"value" binding:"required"` // Current balance
}

var walletMessages = fieldMessages{
	"Name.required":  "wallet name is required",
	"Value.required": "wallet value is required",
}

// CreateWalletHandler registers a new wallet
func CreateWalletHandler(wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto WalletDTO // Bind JSON request to struct
		if err := c.ShouldBindJSON(&dto); err != nil {
			// Report every violated constraint
			fail(c, http.StatusBadRequest, bindErrors(err, walletMessages)...)
			return
		}
		w, err := wallets.Create(c.Request.Context(), &domain.Wallet{Name: dto.Name, Value: *dto.Value})
		if err != nil {
			handleError(c, err, logrus.Fields{"name": dto.Name}, "Failed to create wallet")
			return
		}
		respond(c, http.StatusCreated, toWalletDTO(w)) // Return the stored wallet
	}
}

func toWalletDTO(w *domain.Wallet) WalletDTO {
	value := w.Value
	return WalletDTO{ID: w.ID, Name: w.Name, Value: &value}
}
