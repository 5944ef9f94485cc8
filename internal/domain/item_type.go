package domain

import "strings"

// ItemType tells income from expense entries
type ItemType string

const (
	ItemTypeIncome  ItemType = "ENTRADA"
	ItemTypeExpense ItemType = "SAIDA"
)

// ItemTypes lists every valid variant
var ItemTypes = []ItemType{ItemTypeIncome, ItemTypeExpense}

// ParseItemType matches s case-insensitively against the known variants.
// The boolean is false when s names no variant.
func ParseItemType(s string) (ItemType, bool) {
	for _, t := range ItemTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

func (t ItemType) String() string {
	return string(t)
}
