package workflow

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"translation-admin-backend/internal/models"
	"translation-admin-backend/internal/store"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Business errors surfaced to the handlers.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnknownStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("transition not permitted")
	ErrFieldNotEditable  = errors.New("field is not editable")
	ErrValidation        = errors.New("validation failed")
	ErrArchiveSideEffect = errors.New("client archive update failed")
)

// Backend is the slice of the remote content backend the controller needs.
// Implemented by cms.Client.
type Backend interface {
	FetchAllOrders() ([]models.Order, error)
	CreateOrder(data models.CreateUnifiedOrderData) (*models.CreateOrderResult, error)
	UpdateOrderField(orderID, backendField string, value interface{}) error
	UpdateOrderStatus(orderID, status, changedBy, notes string) error
	UpdateClientField(clientID, backendField string, value interface{}) error
	ArchiveClient(clientID string) error
	DeleteOrder(orderID string) error
	DeleteClient(clientID string) error
}

// Controller enforces the stage sequence and the field-edit rules, keeping
// the in-memory order cache in step with the backend. Remote calls happen
// before any local mutation; a failed primary call leaves the cache
// untouched.
type Controller struct {
	backend Backend
	store   *store.Store
}

func NewController(backend Backend, st *store.Store) *Controller {
	return &Controller{backend: backend, store: st}
}

// Refresh replaces the cached order list with a full fetch from the backend.
func (c *Controller) Refresh() error {
	orders, err := c.backend.FetchAllOrders()
	if err != nil {
		return fmt.Errorf("failed to refresh orders: %w", err)
	}
	c.store.SetOrders(orders)
	return nil
}

// Transition moves an order to target. The remote status update runs first;
// the cache is only patched once the backend confirms. Moving to ready also
// issues a client-archive update as a best-effort secondary step: if that
// call fails the transition still stands and the error wraps
// ErrArchiveSideEffect so callers can report it softly.
func (c *Controller) Transition(orderID string, target Status, changedBy, notes string) error {
	ord, ok := c.store.Get(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if !IsValidStatus(target) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, target)
	}
	current := Status(ord.Status)
	if !CanTransition(current, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
	}

	if err := c.backend.UpdateOrderStatus(orderID, string(target), changedBy, notes); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	c.store.PatchOrder(orderID, func(o *models.Order) {
		o.Status = string(target)
	})

	if target == StatusReady {
		if err := c.backend.ArchiveClient(ord.ClientID); err != nil {
			logger.Warn().Err(err).
				Str("orderId", orderID).
				Str("clientId", ord.ClientID).
				Msg("client archive update failed after ready transition")
			return fmt.Errorf("%w: %v", ErrArchiveSideEffect, err)
		}
	}
	return nil
}

// UpdateOrderField patches one editable order field. Fields outside the
// allow-list are rejected before any network call. On success the cache is
// patched with the submitted value, not whatever the backend echoes back.
func (c *Controller) UpdateOrderField(orderID, field, value string) error {
	backendField, ok := OrderFieldToBackend[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotEditable, field)
	}
	if _, exists := c.store.Get(orderID); !exists {
		return ErrOrderNotFound
	}
	if IsDigitField(field) {
		value = NormalizeDigits(value)
	}

	var send interface{} = value
	switch field {
	case "numberOfPages":
		pages, err := strconv.Atoi(value)
		if err != nil || pages <= 0 {
			return fmt.Errorf("%w: numberOfPages must be a positive integer", ErrValidation)
		}
		send = pages
	case "translationType":
		if !models.TranslationType(value).Valid() {
			return fmt.Errorf("%w: unknown translation type %q", ErrValidation, value)
		}
	}

	if err := c.backend.UpdateOrderField(orderID, backendField, send); err != nil {
		return fmt.Errorf("failed to update order field: %w", err)
	}
	c.store.PatchOrder(orderID, func(o *models.Order) {
		applyOrderField(o, field, value)
	})
	return nil
}

// UpdateClientInfo patches one client-snapshot field. Because clients are a
// projection, the edit lands on every cached order sharing the clientId.
func (c *Controller) UpdateClientInfo(clientID, field, value string) error {
	backendField, ok := ClientFieldToBackend[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotEditable, field)
	}
	if IsDigitField(field) {
		value = NormalizeDigits(value)
	}
	if err := c.backend.UpdateClientField(clientID, backendField, value); err != nil {
		return fmt.Errorf("failed to update client info: %w", err)
	}
	c.store.PatchClientOrders(clientID, func(o *models.Order) {
		applyClientField(o, field, value)
	})
	return nil
}

// CreateOrder validates the wizard payload locally, creates the order and
// client snapshot atomically on the backend, then reloads the full list.
func (c *Controller) CreateOrder(data models.CreateUnifiedOrderData) (*models.CreateOrderResult, error) {
	if err := validateCreate(&data); err != nil {
		return nil, err
	}
	result, err := c.backend.CreateOrder(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if err := c.Refresh(); err != nil {
		logger.Warn().Err(err).Msg("order created but reload failed")
	}
	return result, nil
}

// DeleteOrder removes an order. The backend treats a missing resource as
// already gone, so deletion is idempotent end to end.
func (c *Controller) DeleteOrder(orderID string) error {
	if err := c.backend.DeleteOrder(orderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if err := c.Refresh(); err != nil {
		logger.Warn().Err(err).Msg("order deleted but reload failed")
	}
	return nil
}

// DeleteClient removes a client and, through the backend's cascade, the
// orders that project it.
func (c *Controller) DeleteClient(clientID string) error {
	if err := c.backend.DeleteClient(clientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if err := c.Refresh(); err != nil {
		logger.Warn().Err(err).Msg("client deleted but reload failed")
	}
	return nil
}

func validateCreate(d *models.CreateUnifiedOrderData) error {
	if !d.TranslationType.Valid() {
		return fmt.Errorf("%w: translation type is required", ErrValidation)
	}
	if d.NumberOfPages <= 0 {
		return fmt.Errorf("%w: number of pages must be positive", ErrValidation)
	}
	if d.LanguageFrom == "" || d.LanguageTo == "" {
		return fmt.Errorf("%w: source and target languages are required", ErrValidation)
	}
	hasPersonName := d.ClientName != "" || d.ClientFirstName != "" || d.ClientLastName != ""
	if d.ClientCompany == "" && !hasPersonName {
		return fmt.Errorf("%w: client name or company is required", ErrValidation)
	}

	d.ClientPhone = NormalizeDigits(d.ClientPhone)
	d.ClientNationalID = NormalizeDigits(d.ClientNationalID)
	if d.Urgency == "" {
		d.Urgency = models.UrgencyNormal
	}
	if d.ClientType == "" {
		if d.ClientCompany != "" {
			d.ClientType = models.ClientTypeCompany
		} else {
			d.ClientType = models.ClientTypePerson
		}
	}
	return nil
}

func applyOrderField(o *models.Order, field, value string) {
	switch field {
	case "serviceType":
		o.ServiceType = value
	case "translationType":
		o.TranslationType = models.TranslationType(value)
	case "numberOfPages":
		if pages, err := strconv.Atoi(value); err == nil {
			o.NumberOfPages = pages
		}
	case "languageFrom":
		o.LanguageFrom = value
	case "languageTo":
		o.LanguageTo = value
	case "urgency":
		o.Urgency = models.Urgency(value)
	case "specialInstructions":
		o.SpecialInstructions = value
	}
}

func applyClientField(o *models.Order, field, value string) {
	switch field {
	case "firstName":
		o.ClientFirstName = value
	case "lastName":
		o.ClientLastName = value
	case "company":
		o.ClientCompany = value
	case "phone":
		o.ClientPhone = value
	case "email":
		o.ClientEmail = value
	case "address":
		o.ClientAddress = value
	case "nationalId":
		o.ClientNationalID = value
	case "serviceType":
		o.ServiceType = value
	}
}
