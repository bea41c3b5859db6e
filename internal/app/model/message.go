package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type BrokerErrorResponse struct {
	Broker string `json:"broker"`
}
