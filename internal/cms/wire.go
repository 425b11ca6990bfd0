package cms

import (
	"time"

	"translation-admin-backend/internal/models"
)

// The backend speaks snake_case; the dashboard API speaks camelCase. These
// wire types keep the translation explicit instead of scattering tag tricks
// through the models.

type wireOrderPage struct {
	Orders      []wireOrder `json:"orders"`
	Total       int         `json:"total"`
	Pages       int         `json:"pages"`
	CurrentPage int         `json:"currentPage"`
	PerPage     int         `json:"perPage"`
}

type wireOrder struct {
	ID        string `json:"id"`
	OrderCode string `json:"order_code"`

	ClientID         string `json:"client_id"`
	ClientCode       string `json:"client_code"`
	ClientName       string `json:"client_name"`
	ClientFirstName  string `json:"client_first_name"`
	ClientLastName   string `json:"client_last_name"`
	ClientCompany    string `json:"client_company"`
	ClientPhone      string `json:"client_phone"`
	ClientEmail      string `json:"client_email"`
	ClientAddress    string `json:"client_address"`
	ClientNationalID string `json:"client_national_id"`
	ClientType       string `json:"client_type"`

	ServiceType         string  `json:"service_type"`
	TranslationType     string  `json:"translation_type"`
	DocumentType        string  `json:"document_type"`
	LanguageFrom        string  `json:"language_from"`
	LanguageTo          string  `json:"language_to"`
	NumberOfPages       int     `json:"number_of_pages"`
	Urgency             string  `json:"urgency"`
	SpecialInstructions string  `json:"special_instructions"`
	TotalPrice          float64 `json:"total_price"`

	Status    string             `json:"status"`
	History   []wireStatusRecord `json:"history"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type wireStatusRecord struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	Notes     string    `json:"notes"`
}

func (w wireOrder) toModel() models.Order {
	history := make([]models.StatusRecord, len(w.History))
	for i, r := range w.History {
		history[i] = models.StatusRecord{
			Status:    r.Status,
			ChangedBy: r.ChangedBy,
			ChangedAt: r.ChangedAt,
			Notes:     r.Notes,
		}
	}
	return models.Order{
		ID:                  w.ID,
		OrderCode:           w.OrderCode,
		ClientID:            w.ClientID,
		ClientCode:          w.ClientCode,
		ClientName:          w.ClientName,
		ClientFirstName:     w.ClientFirstName,
		ClientLastName:      w.ClientLastName,
		ClientCompany:       w.ClientCompany,
		ClientPhone:         w.ClientPhone,
		ClientEmail:         w.ClientEmail,
		ClientAddress:       w.ClientAddress,
		ClientNationalID:    w.ClientNationalID,
		ClientType:          models.ClientType(w.ClientType),
		ServiceType:         w.ServiceType,
		TranslationType:     models.TranslationType(w.TranslationType),
		DocumentType:        w.DocumentType,
		LanguageFrom:        w.LanguageFrom,
		LanguageTo:          w.LanguageTo,
		NumberOfPages:       w.NumberOfPages,
		Urgency:             models.Urgency(w.Urgency),
		SpecialInstructions: w.SpecialInstructions,
		TotalPrice:          w.TotalPrice,
		Status:              w.Status,
		History:             history,
		CreatedAt:           w.CreatedAt,
		UpdatedAt:           w.UpdatedAt,
	}
}

type wireCreateOrderBody struct {
	ClientName       string `json:"client_name"`
	ClientFirstName  string `json:"client_first_name"`
	ClientLastName   string `json:"client_last_name"`
	ClientCompany    string `json:"client_company"`
	ClientPhone      string `json:"client_phone"`
	ClientEmail      string `json:"client_email"`
	ClientAddress    string `json:"client_address"`
	ClientNationalID string `json:"client_national_id"`
	ClientType       string `json:"client_type"`

	ServiceType         string  `json:"service_type"`
	TranslationType     string  `json:"translation_type"`
	DocumentType        string  `json:"document_type"`
	LanguageFrom        string  `json:"language_from"`
	LanguageTo          string  `json:"language_to"`
	NumberOfPages       int     `json:"number_of_pages"`
	Urgency             string  `json:"urgency"`
	SpecialInstructions string  `json:"special_instructions"`
	TotalPrice          float64 `json:"total_price"`
}

func wireCreateOrder(d models.CreateUnifiedOrderData) wireCreateOrderBody {
	return wireCreateOrderBody{
		ClientName:          d.ClientName,
		ClientFirstName:     d.ClientFirstName,
		ClientLastName:      d.ClientLastName,
		ClientCompany:       d.ClientCompany,
		ClientPhone:         d.ClientPhone,
		ClientEmail:         d.ClientEmail,
		ClientAddress:       d.ClientAddress,
		ClientNationalID:    d.ClientNationalID,
		ClientType:          string(d.ClientType),
		ServiceType:         d.ServiceType,
		TranslationType:     string(d.TranslationType),
		DocumentType:        d.DocumentType,
		LanguageFrom:        d.LanguageFrom,
		LanguageTo:          d.LanguageTo,
		NumberOfPages:       d.NumberOfPages,
		Urgency:             string(d.Urgency),
		SpecialInstructions: d.SpecialInstructions,
		TotalPrice:          d.TotalPrice,
	}
}
