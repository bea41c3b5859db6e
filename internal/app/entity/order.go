package entity

type OrderStatus string

const (
	StatusConfirmedOrder OrderStatus = `CNF`
	StatusPendingOrder   OrderStatus = `PND`
	StatusCancelledOrder OrderStatus = `CAN`
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusConfirmedOrder, StatusPendingOrder, StatusCancelledOrder:
		return true
	}

	return false
}

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

func (id OrderID) Valid() bool {
	return len(id) != 0
}

type LineItems []LineItem

type LineItem struct {
	ItemID   string
	Quantity float64
}

type Orders []Order

// Order is the persisted form of a pedido. Line items are kept as a single
// encoded string (Product); decoding happens on every read path.
type Order struct {
	ID          OrderID
	UserID      UserID
	Product     string
	Status      OrderStatus
	Cost        float64
	Total       *float64
	DateCreated string
}
