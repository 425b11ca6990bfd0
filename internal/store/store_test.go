package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"translation-admin-backend/internal/models"
	"translation-admin-backend/internal/store"
)

func TestStore_SetAndGet(t *testing.T) {
	st := store.New()
	st.SetOrders([]models.Order{
		{ID: "o1", Status: "acceptance"},
		{ID: "o2", Status: "translating"},
	})

	assert.Equal(t, 2, st.Len())

	order, ok := st.Get("o2")
	require.True(t, ok)
	assert.Equal(t, "translating", order.Status)

	_, ok = st.Get("o3")
	assert.False(t, ok)
}

func TestStore_OrdersReturnsCopy(t *testing.T) {
	st := store.New()
	st.SetOrders([]models.Order{{ID: "o1", Status: "acceptance"}})

	snapshot := st.Orders()
	snapshot[0].Status = "ready"

	order, _ := st.Get("o1")
	assert.Equal(t, "acceptance", order.Status)
}

func TestStore_PatchOrder(t *testing.T) {
	st := store.New()
	st.SetOrders([]models.Order{{ID: "o1", Status: "acceptance"}})

	ok := st.PatchOrder("o1", func(o *models.Order) { o.Status = "completion" })
	assert.True(t, ok)

	order, _ := st.Get("o1")
	assert.Equal(t, "completion", order.Status)

	assert.False(t, st.PatchOrder("missing", func(o *models.Order) {}))
}

func TestStore_PatchClientOrders(t *testing.T) {
	st := store.New()
	st.SetOrders([]models.Order{
		{ID: "o1", ClientID: "c1", ClientEmail: "a@x.com"},
		{ID: "o2", ClientID: "c1", ClientEmail: "a@x.com"},
		{ID: "o3", ClientID: "c2", ClientEmail: "b@x.com"},
	})

	count := st.PatchClientOrders("c1", func(o *models.Order) { o.ClientEmail = "new@x.com" })
	assert.Equal(t, 2, count)

	o3, _ := st.Get("o3")
	assert.Equal(t, "b@x.com", o3.ClientEmail)
}

func TestStore_SetOrdersPreservesInputOrder(t *testing.T) {
	st := store.New()
	st.SetOrders([]models.Order{{ID: "z"}, {ID: "a"}, {ID: "m"}})

	orders := st.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, "z", orders[0].ID)
	assert.Equal(t, "a", orders[1].ID)
	assert.Equal(t, "m", orders[2].ID)
}
