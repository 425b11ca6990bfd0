// Package projection derives client views from the flat order list. Clients
// are never stored: every list and profile below is recomputed from a full
// order fetch, so the functions here are pure and depend on input order.
package projection

import (
	"translation-admin-backend/internal/models"
	"translation-admin-backend/internal/workflow"
)

// clientStatusByStage maps an order's workflow stage to the client-facing
// status vocabulary shown in the dashboard's client list.
var clientStatusByStage = map[workflow.Status]string{
	workflow.StatusAcceptance:  "new",
	workflow.StatusCompletion:  "in_progress",
	workflow.StatusTranslating: "in_progress",
	workflow.StatusEditing:     "in_progress",
	workflow.StatusOffice:      "in_progress",
	workflow.StatusReady:       "ready",
	workflow.StatusArchived:    "archived",
}

// UnknownClientName marks a projected client whose backing order carries no
// usable name at all.
const UnknownClientName = "Unknown"

// ProjectClients returns the active client list: one client per distinct
// clientId, keeping the first occurrence in input order. A client whose
// retained order sits in the archived stage is excluded here and surfaced
// only by ProjectArchivedClients. Ties are not resolved by recency; first
// occurrence wins even when a later order is fresher.
func ProjectClients(orders []models.Order) []models.Client {
	var active []models.Client
	for _, retained := range dedupByClientID(orders) {
		if retained.Status == string(workflow.StatusArchived) {
			continue
		}
		active = append(active, clientFromOrder(retained))
	}
	return active
}

// ProjectArchivedClients returns the archived client list. Orders are
// filtered to the archived stage before dedup, so a client whose first order
// overall is active can still appear here through a later archived one.
func ProjectArchivedClients(orders []models.Order) []models.Client {
	archived := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == string(workflow.StatusArchived) {
			archived = append(archived, o)
		}
	}
	var clients []models.Client
	for _, retained := range dedupByClientID(archived) {
		clients = append(clients, clientFromOrder(retained))
	}
	return clients
}

// ProjectClientProfile resolves an ambiguous identifier (client code, any
// name part, or company) into a single client and its orders. Resolution is
// two-phase: the first order matching the identifier on any name field fixes
// the canonical client code, then only exact code matches are collected, so
// a name collision cannot pull unrelated clients into the profile. Profile
// fields take the first non-empty value scanning matched orders in input
// order; the profile status reads from the first matched order, which the
// backend delivers most recent first.
func ProjectClientProfile(orders []models.Order, identifier string) (models.Client, []models.Order, bool) {
	var code string
	found := false
	for _, o := range orders {
		if matchesIdentifier(o, identifier) {
			code = o.ClientCode
			found = true
			break
		}
	}
	if !found {
		return models.Client{}, nil, false
	}

	var matched []models.Order
	for _, o := range orders {
		if o.ClientCode == code {
			matched = append(matched, o)
		}
	}

	client := aggregateProfile(matched)
	return client, matched, true
}

func matchesIdentifier(o models.Order, identifier string) bool {
	return identifier == o.ClientCode ||
		identifier == o.ClientName ||
		identifier == o.ClientFirstName ||
		identifier == o.ClientLastName ||
		identifier == o.ClientCompany
}

// aggregateProfile merges the matched orders' client snapshots, first
// non-empty value per field. Earlier orders take precedence when later ones
// have blanks.
func aggregateProfile(matched []models.Order) models.Client {
	var c models.Client
	for _, o := range matched {
		fillIfEmpty(&c.ID, o.ClientID)
		fillIfEmpty(&c.Code, o.ClientCode)
		fillIfEmpty(&c.Name, o.ClientName)
		fillIfEmpty(&c.FirstName, o.ClientFirstName)
		fillIfEmpty(&c.LastName, o.ClientLastName)
		fillIfEmpty(&c.Company, o.ClientCompany)
		fillIfEmpty(&c.Phone, o.ClientPhone)
		fillIfEmpty(&c.Email, o.ClientEmail)
		fillIfEmpty(&c.Address, o.ClientAddress)
		fillIfEmpty(&c.NationalID, o.ClientNationalID)
		fillIfEmpty(&c.ServiceType, o.ServiceType)
		if c.Type == "" {
			c.Type = o.ClientType
		}
	}
	c.DisplayName = displayName(c.Company, c.FirstName, c.LastName, c.Name)
	if len(matched) > 0 {
		c.Status = clientStatus(matched[0].Status)
	}
	return c
}

func fillIfEmpty(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func clientFromOrder(o models.Order) models.Client {
	return models.Client{
		ID:          o.ClientID,
		Code:        o.ClientCode,
		Name:        o.ClientName,
		FirstName:   o.ClientFirstName,
		LastName:    o.ClientLastName,
		Company:     o.ClientCompany,
		Phone:       o.ClientPhone,
		Email:       o.ClientEmail,
		Address:     o.ClientAddress,
		NationalID:  o.ClientNationalID,
		Type:        o.ClientType,
		ServiceType: o.ServiceType,
		DisplayName: displayName(o.ClientCompany, o.ClientFirstName, o.ClientLastName, o.ClientName),
		Status:      clientStatus(o.Status),
	}
}

// dedupByClientID keeps the first order per clientId in input order. Orders
// with an empty clientId collapse onto one entry rather than erroring;
// malformed records degrade, they never fail the projection.
func dedupByClientID(orders []models.Order) []models.Order {
	seen := make(map[string]bool, len(orders))
	var retained []models.Order
	for _, o := range orders {
		if seen[o.ClientID] {
			continue
		}
		seen[o.ClientID] = true
		retained = append(retained, o)
	}
	return retained
}

func displayName(company, firstName, lastName, name string) string {
	if company != "" {
		return company
	}
	if firstName != "" || lastName != "" {
		if firstName == "" {
			return lastName
		}
		if lastName == "" {
			return firstName
		}
		return firstName + " " + lastName
	}
	if name != "" {
		return name
	}
	return UnknownClientName
}

func clientStatus(orderStatus string) string {
	if mapped, ok := clientStatusByStage[workflow.Status(orderStatus)]; ok {
		return mapped
	}
	return "unknown"
}
