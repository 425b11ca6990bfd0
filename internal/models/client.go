package models

// Client is a projected view computed from the order list. It is never stored
// or mutated directly; edits go through the orders that back it.
type Client struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Company     string     `json:"company"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	NationalID  string     `json:"nationalId"`
	Type        ClientType `json:"type"`
	ServiceType string     `json:"serviceType"`
	DisplayName string     `json:"displayName"`
	Status      string     `json:"status"`
}
