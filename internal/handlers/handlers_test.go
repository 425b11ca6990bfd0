package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"translation-admin-backend/internal/handlers"
	"translation-admin-backend/internal/middleware"
	"translation-admin-backend/internal/models"
	"translation-admin-backend/internal/store"
	"translation-admin-backend/internal/workflow"
)

type fakeBackend struct {
	orders          []models.Order
	statusCalls     int
	archiveCalls    int
	orderFieldCalls int
	statusErr       error
	archiveErr      error
}

func (f *fakeBackend) FetchAllOrders() ([]models.Order, error) { return f.orders, nil }

func (f *fakeBackend) CreateOrder(data models.CreateUnifiedOrderData) (*models.CreateOrderResult, error) {
	return &models.CreateOrderResult{OrderID: "new", OrderCode: "TR-NEW"}, nil
}

func (f *fakeBackend) UpdateOrderField(orderID, backendField string, value interface{}) error {
	f.orderFieldCalls++
	return nil
}

func (f *fakeBackend) UpdateOrderStatus(orderID, status, changedBy, notes string) error {
	f.statusCalls++
	return f.statusErr
}

func (f *fakeBackend) UpdateClientField(clientID, backendField string, value interface{}) error {
	return nil
}

func (f *fakeBackend) ArchiveClient(clientID string) error {
	f.archiveCalls++
	return f.archiveErr
}

func (f *fakeBackend) DeleteOrder(orderID string) error  { return nil }
func (f *fakeBackend) DeleteClient(clientID string) error { return nil }

// stubAuth stands in for the JWT middleware so routes see a staff identity.
func stubAuth(c *gin.Context) {
	c.Set(middleware.StaffIDKey, "staff-1")
	c.Next()
}

func newRouter(backend *fakeBackend) (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)
	st := store.New()
	st.SetOrders(backend.orders)
	controller := workflow.NewController(backend, st)

	ordersHandler := handlers.NewOrdersHandler(controller, st)
	clientsHandler := handlers.NewClientsHandler(controller, st)
	statusHandler := handlers.NewStatusHandler(controller)

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(stubAuth)
	api.GET("/orders", ordersHandler.ListOrders)
	api.POST("/orders", ordersHandler.CreateOrder)
	api.GET("/orders/:order_id", ordersHandler.GetOrder)
	api.PUT("/orders/:order_id/fields", ordersHandler.UpdateOrderField)
	api.POST("/orders/:order_id/status", statusHandler.Transition)
	api.GET("/clients", clientsHandler.ListClients)
	api.GET("/clients/archived", clientsHandler.ListArchivedClients)
	api.GET("/clients/profile", clientsHandler.GetClientProfile)
	return router, st
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTransitionEndpoint_Success(t *testing.T) {
	backend := &fakeBackend{orders: []models.Order{{ID: "o1", ClientID: "c1", Status: "translating"}}}
	router, st := newRouter(backend)

	w := doJSON(router, "POST", "/api/v1/orders/o1/status", models.TransitionRequest{Status: "editing", Notes: "ok"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.TransitionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "editing", resp.Status)
	assert.Empty(t, resp.Warning)

	order, _ := st.Get("o1")
	assert.Equal(t, "editing", order.Status)
}

func TestTransitionEndpoint_BackwardSkipRejected(t *testing.T) {
	backend := &fakeBackend{orders: []models.Order{{ID: "o1", ClientID: "c1", Status: "office"}}}
	router, st := newRouter(backend)

	w := doJSON(router, "POST", "/api/v1/orders/o1/status", models.TransitionRequest{Status: "translating"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, backend.statusCalls)

	order, _ := st.Get("o1")
	assert.Equal(t, "office", order.Status)
}

func TestTransitionEndpoint_ArchiveFailureReturnsWarning(t *testing.T) {
	backend := &fakeBackend{orders: []models.Order{{ID: "o1", ClientID: "c1", Status: "office"}}}
	backend.archiveErr = errors.New("archive down")
	router, st := newRouter(backend)

	w := doJSON(router, "POST", "/api/v1/orders/o1/status", models.TransitionRequest{Status: "ready"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.TransitionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Warning)
	assert.Equal(t, 1, backend.archiveCalls)

	order, _ := st.Get("o1")
	assert.Equal(t, "ready", order.Status)
}

func TestTransitionEndpoint_RemoteFailure(t *testing.T) {
	backend := &fakeBackend{orders: []models.Order{{ID: "o1", ClientID: "c1", Status: "acceptance"}}}
	backend.statusErr = errors.New("backend down")
	router, st := newRouter(backend)

	w := doJSON(router, "POST", "/api/v1/orders/o1/status", models.TransitionRequest{Status: "completion"})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	order, _ := st.Get("o1")
	assert.Equal(t, "acceptance", order.Status)
}

func TestUpdateOrderFieldEndpoint_RejectsUnknownField(t *testing.T) {
	backend := &fakeBackend{orders: []models.Order{{ID: "o1", Status: "acceptance"}}}
	router, _ := newRouter(backend)

	w := doJSON(router, "PUT", "/api/v1/orders/o1/fields", models.UpdateFieldRequest{Field: "orderCode", Value: "TR-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, backend.orderFieldCalls)
}

func TestCreateOrderEndpoint_ValidationFailsFast(t *testing.T) {
	backend := &fakeBackend{}
	router, _ := newRouter(backend)

	w := doJSON(router, "POST", "/api/v1/orders", models.CreateUnifiedOrderData{
		ClientFirstName: "Sara",
		// translation type and pages missing
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderEndpoint_Success(t *testing.T) {
	backend := &fakeBackend{}
	router, _ := newRouter(backend)

	w := doJSON(router, "POST", "/api/v1/orders", models.CreateUnifiedOrderData{
		ClientCompany:   "Acme GmbH",
		TranslationType: models.TranslationCertified,
		NumberOfPages:   2,
		LanguageFrom:    "de",
		LanguageTo:      "en",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.CreateOrderResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TR-NEW", resp.OrderCode)
}

func TestListOrdersEndpoint_FilterAndPagination(t *testing.T) {
	backend := &fakeBackend{orders: []models.Order{
		{ID: "o1", ClientID: "c1", Status: "acceptance"},
		{ID: "o2", ClientID: "c1", Status: "translating"},
		{ID: "o3", ClientID: "c2", Status: "translating"},
	}}
	router, _ := newRouter(backend)

	w := doJSON(router, "GET", "/api/v1/orders?status=translating&perPage=1&page=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.OrderListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Pages)
	assert.Equal(t, 2, resp.CurrentPage)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "o3", resp.Orders[0].ID)
}

func TestClientsEndpoint_ActiveAndArchived(t *testing.T) {
	backend := &fakeBackend{orders: []models.Order{
		{ID: "o1", ClientID: "c1", ClientFirstName: "Sara", Status: "translating"},
		{ID: "o2", ClientID: "c2", ClientCompany: "Acme", Status: "archived"},
	}}
	router, _ := newRouter(backend)

	w := doJSON(router, "GET", "/api/v1/clients", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var active models.ClientListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	require.Len(t, active.Clients, 1)
	assert.Equal(t, "c1", active.Clients[0].ID)

	w = doJSON(router, "GET", "/api/v1/clients/archived", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var archived models.ClientListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &archived))
	require.Len(t, archived.Clients, 1)
	assert.Equal(t, "c2", archived.Clients[0].ID)
}

func TestClientProfileEndpoint(t *testing.T) {
	backend := &fakeBackend{orders: []models.Order{
		{ID: "o1", ClientID: "c1", ClientCode: "C-1", ClientFirstName: "Sara", Status: "ready"},
		{ID: "o2", ClientID: "c1", ClientCode: "C-1", ClientEmail: "sara@x.com", Status: "acceptance"},
	}}
	router, _ := newRouter(backend)

	w := doJSON(router, "GET", "/api/v1/clients/profile?identifier=Sara", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ClientProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sara", resp.Client.FirstName)
	assert.Equal(t, "sara@x.com", resp.Client.Email)
	assert.Len(t, resp.Orders, 2)

	w = doJSON(router, "GET", "/api/v1/clients/profile?identifier=nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "GET", "/api/v1/clients/profile", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderEndpoint(t *testing.T) {
	backend := &fakeBackend{orders: []models.Order{{ID: "o1", Status: "acceptance"}}}
	router, _ := newRouter(backend)

	w := doJSON(router, "GET", "/api/v1/orders/o1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/v1/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
