package api

import (
	"encoding/json" // Decode error types
	"errors"        // Error inspection
	"fmt"           // Fallback messages
	"io"            // Empty body detection

	"wallet_ledger/internal/domain" // Item type parsing

	"github.com/gin-gonic/gin/binding"       // Gin's validator hook
	"github.com/go-playground/validator/v10" // Struct validation
)

// itemTypeTag validates ENTRADA/SAIDA in any letter case
const itemTypeTag = "item_type"

// RegisterValidators installs the custom binding rules on gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation(itemTypeTag, func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseItemType(fl.Field().String())
		return ok
	})
}

// fieldMessages maps "StructField.tag" to the message reported for that failure
type fieldMessages map[string]string

// bindErrors turns a ShouldBindJSON error into one message per problem. Every failing
// field is reported, not only the first one.
func bindErrors(err error, msgs fieldMessages) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if msg, ok := msgs[fe.StructField()+"."+fe.Tag()]; ok {
				out = append(out, msg)
				continue
			}
			out = append(out, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, ErrDateFormat):
		return []string{ErrDateFormat.Error()}
	case errors.As(err, &typeErr):
		return []string{fmt.Sprintf("%s has the wrong type", typeErr.Field)}
	case errors.Is(err, io.EOF):
		return []string{"request body is required"}
	default:
		return []string{"malformed request body"}
	}
}

// isValidationFailure reports whether the body decoded but broke field rules
func isValidationFailure(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
