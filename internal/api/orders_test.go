package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adresur/adresur-go/internal/domain/order"
)

func TestCreateBatchOrder_PostsEachLineInOrder(t *testing.T) {
	var got []order.LineItem
	var nextID atomic.Int64
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders/", r.URL.Path)

		var line order.LineItem
		require.NoError(t, json.NewDecoder(r.Body).Decode(&line))
		got = append(got, line)

		fmt.Fprintf(w, `{"id":%d,"menu_item_id":%d,"quantity":%d,"status":"pending"}`,
			nextID.Add(1), line.MenuItemID, line.Quantity)
	}))

	items := []order.LineItem{
		{MenuItemID: 10, Quantity: 2, SpecialInstructions: "no onions"},
		{MenuItemID: 11, Quantity: 1},
	}
	placed, err := c.CreateBatchOrder(context.Background(), items)
	require.NoError(t, err)

	assert.Equal(t, items, got, "lines must be submitted in cart order")
	require.Len(t, placed, 2)
	assert.Equal(t, order.StatusPending, placed[0].Status)
	assert.Equal(t, int64(10), placed[0].MenuItemID)
}

func TestCreateBatchOrder_StopsAtFirstFailure(t *testing.T) {
	var calls atomic.Int64
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 2 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Menu item is not available"}`))
			return
		}
		w.Write([]byte(`{"id":1,"status":"pending"}`))
	}))

	_, err := c.CreateBatchOrder(context.Background(), []order.LineItem{
		{MenuItemID: 10, Quantity: 1},
		{MenuItemID: 11, Quantity: 1},
		{MenuItemID: 12, Quantity: 1},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2 of 3")
	assert.Contains(t, err.Error(), "Menu item is not available")
	assert.Equal(t, int64(2), calls.Load(), "no further lines after the failure")
}

func TestCreateBatchOrder_Empty(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should be made for an empty batch")
	}))

	_, err := c.CreateBatchOrder(context.Background(), nil)
	require.Error(t, err)
}

func TestUpdateOrder_SendsStatusOnly(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/orders/7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"id":7,"status":"preparing"}`))
	}))

	updated, err := c.UpdateOrder(context.Background(), 7, order.Update{Status: order.StatusPreparing})
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, updated.Status)
	assert.Equal(t, map[string]any{"status": "preparing"}, body,
		"no extra fields may ride along with a status change")
}

func TestListOrders_DecodesDenormalizedFields(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id":3,"buyer_id":1,"cook_id":2,"menu_item_id":9,"quantity":2,
			"status":"completed","total_price":"19.98",
			"cook_name":"Maria's Kitchen","buyer_name":"Alex","buyer_email":"alex@example.com",
			"menuItem":{"id":9,"title":"Tamales","price":9.99}
		}]`))
	}))

	orders, err := c.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "19.98", o.TotalPrice.String())
	assert.Equal(t, "Maria's Kitchen", o.CookName)
	require.NotNil(t, o.MenuItem)
	assert.Equal(t, "Tamales", o.MenuItem.Title)
	assert.Equal(t, "9.99", o.MenuItem.Price.String())
}
