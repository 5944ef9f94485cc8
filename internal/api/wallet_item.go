package api

import (
	"errors"   // Error inspection
	"fmt"      // Message formatting
	"net/http" // HTTP status codes
	"strconv"  // Path and query parsing

	"wallet_ledger/internal/domain"  // Importing domain models
	"wallet_ledger/internal/service" // Business logic

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"github.com/sirupsen/logrus"    // Logging library
)

// WalletItemDTO is the wire form of a wallet item
type WalletItemDTO struct {
	ID          *uint            `json:"id,omitempty"`                         // Required on update only
	Wallet      *uint            `json:"wallet" binding:"required"`            // Owning wallet id
	Date        *Date            `json:"date" binding:"required"`              // dd-MM-yyyy
	Type        string           `json:"type" binding:"required,item_type"`    // ENTRADA or SAIDA
	Description string           `json:"description" binding:"required,min=5"` // At least 5 characters
	Value       *decimal.Decimal `json:"value" binding:"required"`             // Amount
}

// PageDTO is one page of a date-range query
type PageDTO struct {
	Content       []WalletItemDTO `json:"content"`       // Items on this page
	TotalElements int64           `json:"totalElements"` // Matching items across all pages
	TotalPages    int             `json:"totalPages"`    // Number of pages
	Number        int             `json:"number"`        // Zero-based page index
	Size          int             `json:"size"`          // Page size
}

var walletItemMessages = fieldMessages{
	"Wallet.required":      "wallet id is required",
	"Date.required":        "date is required",
	"Type.required":        "type is required",
	"Type.item_type":       "type must be ENTRADA or SAIDA",
	"Description.required": "description is required",
	"Description.min":      "description must have at least 5 characters",
	"Value.required":       "value is required",
}

// CreateWalletItemHandler records a new item
func CreateWalletItemHandler(items *service.WalletItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto WalletItemDTO // Bind JSON request to struct
		if err := c.ShouldBindJSON(&dto); err != nil {
			fail(c, http.StatusBadRequest, bindErrors(err, walletItemMessages)...)
			return
		}
		item, err := items.Create(c.Request.Context(), dto.toEntity())
		if err != nil {
			handleError(c, err, logrus.Fields{"wallet_id": *dto.Wallet}, "Failed to create wallet item")
			return
		}
		respond(c, http.StatusCreated, toWalletItemDTO(item))
	}
}

// UpdateWalletItemHandler overwrites an existing item. Field problems, a missing item
// and an attempt to move the item to another wallet are all reported together.
func UpdateWalletItemHandler(items *service.WalletItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto WalletItemDTO
		var msgs []string // Problems collected before answering
		if err := c.ShouldBindJSON(&dto); err != nil {
			if !isValidationFailure(err) {
				// Body could not be decoded, nothing left to check
				fail(c, http.StatusBadRequest, bindErrors(err, walletItemMessages)...)
				return
			}
			msgs = bindErrors(err, walletItemMessages)
		}

		if dto.ID == nil {
			msgs = append(msgs, service.ErrItemNotFound.Error())
		} else {
			// A missing wallet is already reported above, so only existence is checked then
			err := items.CheckUpdate(c.Request.Context(), *dto.ID, dto.Wallet)
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				msgs = append(msgs, verr.Messages()...)
			} else if err != nil {
				handleError(c, err, logrus.Fields{"item_id": *dto.ID}, "Failed to load wallet item")
				return
			}
		}
		if len(msgs) > 0 {
			fail(c, http.StatusBadRequest, msgs...)
			return
		}

		item, err := items.Update(c.Request.Context(), dto.toEntity())
		if err != nil {
			handleError(c, err, logrus.Fields{"item_id": *dto.ID}, "Failed to update wallet item")
			return
		}
		respond(c, http.StatusOK, toWalletItemDTO(item))
	}
}

// DeleteWalletItemHandler removes an item by id
func DeleteWalletItemHandler(items *service.WalletItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uintParam(c, "id") // Parse item id from path
		if !ok {
			return
		}
		err := items.Delete(c.Request.Context(), id)
		if errors.Is(err, service.ErrItemNotFound) {
			fail(c, http.StatusNotFound, fmt.Sprintf("wallet item %d not found", id))
			return
		}
		if err != nil {
			handleError(c, err, logrus.Fields{"item_id": id}, "Failed to delete wallet item")
			return
		}
		respond(c, http.StatusOK, fmt.Sprintf("wallet item %d deleted successfully", id))
	}
}

// FindBetweenDatesHandler pages through a wallet's items dated within
// [startDate, endDate]. A reversed range matches nothing. Wallet access is enforced by
// middleware on the route.
func FindBetweenDatesHandler(items *service.WalletItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		walletID, ok := uintParam(c, "wallet")
		if !ok {
			return
		}

		var msgs []string
		start, err := ParseDate(c.Query("startDate"))
		if err != nil {
			msgs = append(msgs, "startDate must use the dd-MM-yyyy format")
		}
		end, err := ParseDate(c.Query("endDate"))
		if err != nil {
			msgs = append(msgs, "endDate must use the dd-MM-yyyy format")
		}
		page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
		if err != nil || page < 0 {
			msgs = append(msgs, "page must be a non-negative integer")
		}
		if len(msgs) > 0 {
			fail(c, http.StatusBadRequest, msgs...)
			return
		}

		result, err := items.FindBetweenDates(c.Request.Context(), walletID, start.Time, end.Time, page)
		if err != nil {
			handleError(c, err, logrus.Fields{"wallet_id": walletID}, "Failed to query wallet items")
			return
		}
		dto := PageDTO{
			Content:       make([]WalletItemDTO, len(result.Items)),
			TotalElements: result.TotalElements,
			TotalPages:    result.TotalPages(),
			Number:        result.Number,
			Size:          result.Size,
		}
		for i := range result.Items {
			dto.Content[i] = toWalletItemDTO(&result.Items[i])
		}
		respond(c, http.StatusOK, dto)
	}
}

// FindByTypeHandler lists a wallet's items of one type
func FindByTypeHandler(items *service.WalletItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		walletID, ok := uintParam(c, "wallet")
		if !ok {
			return
		}
		typ, ok := domain.ParseItemType(c.Query("type"))
		if !ok {
			fail(c, http.StatusBadRequest, walletItemMessages["Type.item_type"])
			return
		}
		logrus.WithFields(logrus.Fields{"wallet_id": walletID, "type": typ}).Debug("Querying wallet items by type")

		list, err := items.FindByWalletAndType(c.Request.Context(), walletID, typ)
		if err != nil {
			handleError(c, err, logrus.Fields{"wallet_id": walletID, "type": typ}, "Failed to query wallet items by type")
			return
		}
		out := make([]WalletItemDTO, len(list))
		for i := range list {
			out[i] = toWalletItemDTO(&list[i])
		}
		respond(c, http.StatusOK, out)
	}
}

// SumHandler returns the total value of a wallet's items
func SumHandler(items *service.WalletItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		walletID, ok := uintParam(c, "wallet")
		if !ok {
			return
		}
		sum, err := items.SumByWallet(c.Request.Context(), walletID)
		if err != nil {
			handleError(c, err, logrus.Fields{"wallet_id": walletID}, "Failed to sum wallet items")
			return
		}
		respond(c, http.StatusOK, sum)
	}
}

// uintParam parses a numeric path parameter, answering 400 when it is not one
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf("invalid %s parameter", name))
		return 0, false
	}
	return uint(v), true
}

func (dto WalletItemDTO) toEntity() *domain.WalletItem {
	typ, _ := domain.ParseItemType(dto.Type) // Already validated by binding
	item := &domain.WalletItem{
		WalletID:    *dto.Wallet,
		Date:        dto.Date.Time,
		Type:        typ,
		Description: dto.Description,
		Value:       *dto.Value,
	}
	if dto.ID != nil {
		item.ID = *dto.ID
	}
	return item
}

func toWalletItemDTO(item *domain.WalletItem) WalletItemDTO {
	id, wallet, value := item.ID, item.WalletID, item.Value
	return WalletItemDTO{
		ID:          &id,
		Wallet:      &wallet,
		Date:        &Date{item.Date},
		Type:        item.Type.String(),
		Description: item.Description,
		Value:       &value,
	}
}
