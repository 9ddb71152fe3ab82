package orderControllers

import (
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Coupon{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func uintPtr(v uint) *uint { return &v }

func sampleInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 2, Price: 899},
			{ProductID: 2, VariantID: uintPtr(7), Quantity: 1, Price: 1299},
		},
		ShippingAddress: models.ShippingSnapshot{
			FirstName: "Asha", Address1: "12 MG Road", City: "Bengaluru",
			PostalCode: "560001", Country: "India", Phone: "9900112233",
		},
		Totals: TotalsInput{Subtotal: 3097, Tax: 154.85, Shipping: 49, Discount: 100, Total: 3200.85},
	}
}

func TestCreateCodOrderSnapshotsPayloadVerbatim(t *testing.T) {
	db := newTestDB(t)
	in := sampleInput()

	order, err := CreateCodOrder(db, "u1", in)
	require.NoError(t, err)

	require.Len(t, order.Items, len(in.Items))
	for i, item := range order.Items {
		assert.Equal(t, in.Items[i].ProductID, item.ProductID)
		assert.Equal(t, in.Items[i].Quantity, item.Quantity)
		assert.InDelta(t, in.Items[i].Price, item.Price, 0.001, "price must be the submitted one, never recomputed")
	}

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "COD", order.PaymentMethod)

	assert.InDelta(t, in.Totals.Subtotal, order.Subtotal, 0.001)
	assert.InDelta(t, in.Totals.Tax, order.Tax, 0.001)
	assert.InDelta(t, in.Totals.Shipping, order.Shipping, 0.001)
	assert.InDelta(t, in.Totals.Discount, order.Discount, 0.001)
	assert.InDelta(t, in.Totals.Total, order.Total, 0.001)

	assert.Equal(t, "Bengaluru", order.ShippingAddress.City)
}

func TestCreateCodOrderGeneratesReadableUniqueNumbers(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateCodOrder(db, "u1", sampleInput())
	require.NoError(t, err)
	second, err := CreateCodOrder(db, "u1", sampleInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.OrderNumber, "ORD-"))
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
}

func TestCreateCodOrderRejectsEmptyItems(t *testing.T) {
	db := newTestDB(t)
	in := sampleInput()
	in.Items = nil

	_, err := CreateCodOrder(db, "u1", in)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestCreateCodOrderIncrementsCouponUsage(t *testing.T) {
	db := newTestDB(t)
	coupon := models.Coupon{
		Code: "SAVE10", Type: models.CouponTypePercentage, Value: 10,
		ValidFrom: time.Now().Add(-time.Hour), ValidUntil: time.Now().Add(time.Hour),
		IsActive: true, UsedCount: 4,
	}
	require.NoError(t, db.Create(&coupon).Error)

	in := sampleInput()
	in.CouponCode = "save10" // normalized to uppercase before matching

	_, err := CreateCodOrder(db, "u1", in)
	require.NoError(t, err)

	var reloaded models.Coupon
	require.NoError(t, db.First(&reloaded, coupon.ID).Error)
	assert.Equal(t, 5, reloaded.UsedCount)
}

func TestListUserOrdersScopedAndNewestFirst(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateCodOrder(db, "u1", sampleInput())
	require.NoError(t, err)
	_, err = CreateCodOrder(db, "u2", sampleInput())
	require.NoError(t, err)

	orders, err := ListUserOrders(db, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "u1", orders[0].UserID)
	assert.Len(t, orders[0].Items, 2)
}

func TestGetOrderEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateCodOrder(db, "u1", sampleInput())
	require.NoError(t, err)

	order, err := GetOrder(db, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.OrderNumber, order.OrderNumber)

	_, err = GetOrder(db, "u2", created.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
