package validator

import (
	"github.com/escrima/go-orders-service/internal/app/entity"
	"github.com/escrima/go-orders-service/internal/app/usecase/codec"
	err_usecase "github.com/escrima/go-orders-service/internal/app/usecase/errors"
)

// ValidateLineItems rejects an empty list, non-positive quantities and item
// ids that would not survive the codec round trip.
func ValidateLineItems(items entity.LineItems) error {
	if len(items) == 0 {
		return err_usecase.ErrEmptyLineItems
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return err_usecase.ErrInvalidQuantity
		}

		if !codec.ValidItemID(item.ItemID) {
			return err_usecase.ErrInvalidItemID
		}
	}

	return nil
}

// ValidateStatus accepts an empty status (intake applies the default) or one
// of the enumerated values.
func ValidateStatus(status entity.OrderStatus) error {
	if len(status) == 0 {
		return nil
	}

	if !status.Valid() {
		return err_usecase.ErrUnknownStatus
	}

	return nil
}
