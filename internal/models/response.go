package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type OrderListResponse struct {
	Orders      []Order `json:"orders"`
	Total       int     `json:"total"`
	Pages       int     `json:"pages"`
	CurrentPage int     `json:"currentPage"`
	PerPage     int     `json:"perPage"`
}

type ClientListResponse struct {
	Clients []Client `json:"clients"`
}

type ClientProfileResponse struct {
	Client Client  `json:"client"`
	Orders []Order `json:"orders"`
}

type TransitionResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
