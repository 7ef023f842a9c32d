package services

import (
	"testing"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"github.com/stretchr/testify/require"
)

func seedMenuItem(t *testing.T, env *testEnv, vendor *entity.Vendor, name string, price float64, status string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{
		Name: name, Price: price, Status: status,
		VendorID: vendor.ID, OrgID: vendor.OrgID,
	}
	require.NoError(t, env.db.Create(m).Error)
	return m
}

func TestPlaceOrder_SnapshotsCostsAndDebitsBalance(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, vendor := seedOrg(t, env, "Acme", "111111", "1")
	require.NoError(t, env.db.Model(&entity.Employee{}).Where("id = ?", emp.ID).Update("balance", 500).Error)

	dosa := seedMenuItem(t, env, vendor, "Masala Dosa", 80, entity.MenuItemActive)
	chai := seedMenuItem(t, env, vendor, "Chai", 20, entity.MenuItemActive)

	out, err := env.orders.Place(&PlaceOrderReq{
		UserEmail: emp.Email,
		VendorID:  vendor.ID,
		Items: []OrderItemIn{
			{MenuItemID: dosa.ID, Quantity: 2},
			{MenuItemID: chai.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Equal(t, float64(220), out.TotalAmount)
	require.Equal(t, float64(280), out.Balance)

	require.Equal(t, entity.OrderPlaced, orderStatus(t, env, out.ID))

	var items []entity.OrderItem
	require.NoError(t, env.db.Where("order_id = ?", out.ID).Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	require.Equal(t, float64(160), items[0].TotalCost)
	require.Equal(t, float64(60), items[1].TotalCost)

	// later price changes must not touch the snapshot
	require.NoError(t, env.db.Model(&entity.MenuItem{}).Where("id = ?", dosa.ID).Update("price", 999).Error)
	var o entity.Order
	require.NoError(t, env.db.First(&o, out.ID).Error)
	require.Equal(t, float64(220), o.TotalAmount)
}

func TestPlaceOrder_RejectsInactiveItem(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, vendor := seedOrg(t, env, "Acme", "111111", "1")

	stale := seedMenuItem(t, env, vendor, "Old Special", 50, entity.MenuItemInactive)
	_, err := env.orders.Place(&PlaceOrderReq{
		UserEmail: emp.Email, VendorID: vendor.ID,
		Items: []OrderItemIn{{MenuItemID: stale.ID, Quantity: 1}},
	})
	require.Error(t, err)
}

func TestPlaceOrder_RejectsCrossOrgVendor(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, _ := seedOrg(t, env, "Acme", "111111", "1")
	_, _, _, otherVendor := seedOrg(t, env, "Globex", "222222", "2")

	item := seedMenuItem(t, env, otherVendor, "Off Limits", 10, entity.MenuItemActive)
	_, err := env.orders.Place(&PlaceOrderReq{
		UserEmail: emp.Email, VendorID: otherVendor.ID,
		Items: []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.Error(t, err)
}

func TestPlaceOrder_RejectsForeignMenuItem(t *testing.T) {
	env := setupTestEnv(t)
	org, _, emp, vendor := seedOrg(t, env, "Acme", "111111", "1")

	second := &entity.Vendor{Name: "Second", Email: "second@test.com", Password: hash(t, "secret123"), OrgID: org.ID}
	require.NoError(t, env.db.Create(second).Error)
	foreign := seedMenuItem(t, env, second, "Wrong Stall", 10, entity.MenuItemActive)

	_, err := env.orders.Place(&PlaceOrderReq{
		UserEmail: emp.Email, VendorID: vendor.ID,
		Items: []OrderItemIn{{MenuItemID: foreign.ID, Quantity: 1}},
	})
	require.Error(t, err)
}

func TestPlaceOrder_EmptyItems(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, vendor := seedOrg(t, env, "Acme", "111111", "1")

	_, err := env.orders.Place(&PlaceOrderReq{UserEmail: emp.Email, VendorID: vendor.ID})
	require.Error(t, err)
}

func TestPlaceThenCancel_BalanceRoundTrips(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, vendor := seedOrg(t, env, "Acme", "111111", "1")
	require.NoError(t, env.db.Model(&entity.Employee{}).Where("id = ?", emp.ID).Update("balance", 300).Error)

	item := seedMenuItem(t, env, vendor, "Thali", 150, entity.MenuItemActive)
	out, err := env.orders.Place(&PlaceOrderReq{
		UserEmail: emp.Email, VendorID: vendor.ID,
		Items: []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, float64(150), employeeBalance(t, env, emp.ID))

	require.NoError(t, env.orders.RequestCancel(emp.Email, out.ID))
	require.NoError(t, env.orders.HandleCancel(vendor.Email, out.ID, CancelAccept))
	require.Equal(t, float64(300), employeeBalance(t, env, emp.ID))
}

func TestVendorOrderListing(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, vendor := seedOrg(t, env, "Acme", "111111", "1")

	makeOrder(t, env, emp, vendor, entity.OrderPlaced)
	makeOrder(t, env, emp, vendor, entity.OrderPreparing)
	makeOrder(t, env, emp, vendor, entity.OrderPlaced)

	all, err := env.orders.ListForVendor(vendor.Email, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, emp.Name, all[0].EmployeeName)

	placed, err := env.orders.ListForVendor(vendor.Email, entity.OrderPlaced, 0)
	require.NoError(t, err)
	require.Len(t, placed, 2)

	_, err = env.orders.ListForVendor(vendor.Email, "bogus", 0)
	require.Error(t, err)
}
