// Package codec converts an ordered line-item list to and from the single
// string column the order table persists. The rendering is recovered by
// pattern matching, so round-trip fidelity holds only for item ids free of
// the tuple punctuation; intake validation rejects unsafe ids up front.
package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/escrima/go-orders-service/internal/app/entity"
)

const (
	itemSeparator    = ", "
	structuralTokens = "[],"
)

var tuplePattern = regexp.MustCompile(`\[([^\[\]]*),\s*([0-9]*\.?[0-9]+)\]`)

// Encode renders every item as a "[itemId, quantity]" tuple joined in list
// order. Quantities keep the shortest representation that survives a float64
// round trip.
func Encode(items entity.LineItems) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		quantity := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
		parts = append(parts, fmt.Sprintf("[%s, %s]", item.ItemID, quantity))
	}

	return strings.Join(parts, itemSeparator)
}

// Decode extracts every tuple occurrence in source order. A string without a
// single tuple yields an empty list, not an error.
func Decode(s string) entity.LineItems {
	matches := tuplePattern.FindAllStringSubmatch(s, -1)

	items := make(entity.LineItems, 0, len(matches))
	for _, match := range matches {
		quantity, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			continue
		}

		items = append(items, entity.LineItem{
			ItemID:   strings.TrimSpace(match[1]),
			Quantity: quantity,
		})
	}

	return items
}

// ValidItemID reports whether an item id stays clear of the tuple
// punctuation and therefore survives an encode/decode round trip.
func ValidItemID(id string) bool {
	return !strings.ContainsAny(id, structuralTokens)
}
