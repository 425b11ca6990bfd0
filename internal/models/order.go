package models

import "time"

type ClientType string

const (
	ClientTypePerson  ClientType = "person"
	ClientTypeCompany ClientType = "company"
)

type TranslationType string

const (
	TranslationCertified TranslationType = "certified"
	TranslationSimple    TranslationType = "simple"
	TranslationSworn     TranslationType = "sworn"
	TranslationNotarized TranslationType = "notarized"
)

func (t TranslationType) Valid() bool {
	switch t {
	case TranslationCertified, TranslationSimple, TranslationSworn, TranslationNotarized:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyNormal     Urgency = "normal"
	UrgencyUrgent     Urgency = "urgent"
	UrgencyVeryUrgent Urgency = "very_urgent"
)

// Order is the atomic unit of work. Client identity and contact fields are
// denormalized onto every order; there is no separate client record anywhere.
type Order struct {
	ID        string `json:"id"`
	OrderCode string `json:"orderCode"`

	ClientID         string     `json:"clientId"`
	ClientCode       string     `json:"clientCode"`
	ClientName       string     `json:"clientName"`
	ClientFirstName  string     `json:"clientFirstName"`
	ClientLastName   string     `json:"clientLastName"`
	ClientCompany    string     `json:"clientCompany"`
	ClientPhone      string     `json:"clientPhone"`
	ClientEmail      string     `json:"clientEmail"`
	ClientAddress    string     `json:"clientAddress"`
	ClientNationalID string     `json:"clientNationalId"`
	ClientType       ClientType `json:"clientType"`

	ServiceType         string          `json:"serviceType"`
	TranslationType     TranslationType `json:"translationType"`
	DocumentType        string          `json:"documentType"`
	LanguageFrom        string          `json:"languageFrom"`
	LanguageTo          string          `json:"languageTo"`
	NumberOfPages       int             `json:"numberOfPages"`
	Urgency             Urgency         `json:"urgency"`
	SpecialInstructions string          `json:"specialInstructions"`

	Status     string         `json:"status"`
	History    []StatusRecord `json:"history"`
	TotalPrice float64        `json:"totalPrice"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// StatusRecord is one entry in an order's append-only status audit trail.
// The trail is maintained by the backend; this service never reconstructs it.
type StatusRecord struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
	Notes     string    `json:"notes"`
}

// CreateUnifiedOrderData carries everything needed to create an order and its
// client snapshot atomically. IDs, codes, status and history are assigned by
// the backend.
type CreateUnifiedOrderData struct {
	ClientName       string     `json:"clientName"`
	ClientFirstName  string     `json:"clientFirstName"`
	ClientLastName   string     `json:"clientLastName"`
	ClientCompany    string     `json:"clientCompany"`
	ClientPhone      string     `json:"clientPhone"`
	ClientEmail      string     `json:"clientEmail"`
	ClientAddress    string     `json:"clientAddress"`
	ClientNationalID string     `json:"clientNationalId"`
	ClientType       ClientType `json:"clientType"`

	ServiceType         string          `json:"serviceType"`
	TranslationType     TranslationType `json:"translationType"`
	DocumentType        string          `json:"documentType"`
	LanguageFrom        string          `json:"languageFrom"`
	LanguageTo          string          `json:"languageTo"`
	NumberOfPages       int             `json:"numberOfPages"`
	Urgency             Urgency         `json:"urgency"`
	SpecialInstructions string          `json:"specialInstructions"`
	TotalPrice          float64         `json:"totalPrice"`
}

type CreateOrderResult struct {
	OrderID    string `json:"orderId"`
	OrderCode  string `json:"orderCode"`
	ClientID   string `json:"clientId"`
	ClientCode string `json:"clientCode"`
}
