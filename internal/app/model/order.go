package model

type LineItem struct {
	ItemID   string  `json:"productoId"`
	Cantidad float64 `json:"cantidad"`
}

type CreateOrderRequest struct {
	Productos []LineItem `json:"productos"`
	Estado    string     `json:"estado,omitempty"`
	Total     *float64   `json:"total,omitempty"`
}

type OrderResponses []OrderResponse

type OrderResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"usuarioId"`
	Productos     []LineItem `json:"productos"`
	Estado        string     `json:"estado"`
	FechaCreacion string     `json:"fechaCreacion"`
	Total         *float64   `json:"total"`
}

type CostOrderResponses []CostOrderResponse

type CostOrderResponse struct {
	OrderResponse
	Costo float64 `json:"costo"`
}
