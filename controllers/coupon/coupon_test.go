package couponControllers

import (
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
	require.NoError(t, db.AutoMigrate(&models.Coupon{}))
	return db
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func seedCoupon(t *testing.T, db *gorm.DB, coupon models.Coupon) models.Coupon {
	t.Helper()
	require.NoError(t, db.Create(&coupon).Error)
	return coupon
}

func activeWindow(now time.Time) (time.Time, time.Time) {
	return now.Add(-24 * time.Hour), now.Add(24 * time.Hour)
}

func TestValidatePercentageCappedByMaxDiscount(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seedCoupon(t, db, models.Coupon{
		Code: "SAVE10", Type: models.CouponTypePercentage, Value: 10,
		MaxDiscount: floatPtr(40), ValidFrom: from, ValidUntil: until, IsActive: true,
	})

	result, err := ValidateAt(db, "SAVE10", 500, now)
	require.NoError(t, err)
	assert.InDelta(t, 40, result.CalculatedDiscount, 0.001)
}

func TestValidatePercentageUncapped(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seedCoupon(t, db, models.Coupon{
		Code: "SAVE10", Type: models.CouponTypePercentage, Value: 10,
		ValidFrom: from, ValidUntil: until, IsActive: true,
	})

	result, err := ValidateAt(db, "SAVE10", 500, now)
	require.NoError(t, err)
	assert.InDelta(t, 50, result.CalculatedDiscount, 0.001)
}

func TestValidateNormalizesCase(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seedCoupon(t, db, models.Coupon{
		Code: "SAVE10", Type: models.CouponTypePercentage, Value: 10,
		ValidFrom: from, ValidUntil: until, IsActive: true,
	})

	result, err := ValidateAt(db, "save10", 100, now)
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", result.Code)
}

func TestValidateExpiredCouponIsNotFound(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	seedCoupon(t, db, models.Coupon{
		Code: "OLD", Type: models.CouponTypePercentage, Value: 10,
		ValidFrom: now.Add(-48 * time.Hour), ValidUntil: now.Add(-24 * time.Hour), IsActive: true,
	})

	_, err := ValidateAt(db, "OLD", 100, now)
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestValidateNotYetValidCouponIsNotFound(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	seedCoupon(t, db, models.Coupon{
		Code: "SOON", Type: models.CouponTypePercentage, Value: 10,
		ValidFrom: now.Add(24 * time.Hour), ValidUntil: now.Add(48 * time.Hour), IsActive: true,
	})

	_, err := ValidateAt(db, "SOON", 100, now)
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestValidateInactiveCouponIsNotFound(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seedCoupon(t, db, models.Coupon{
		Code: "OFF", Type: models.CouponTypePercentage, Value: 10,
		ValidFrom: from, ValidUntil: until, IsActive: false,
	})

	_, err := ValidateAt(db, "OFF", 100, now)
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestValidateBelowMinimumOrderAmount(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seedCoupon(t, db, models.Coupon{
		Code: "BIG", Type: models.CouponTypePercentage, Value: 10,
		MinOrderAmount: floatPtr(1000), ValidFrom: from, ValidUntil: until, IsActive: true,
	})

	_, err := ValidateAt(db, "BIG", 500, now)
	assert.ErrorIs(t, err, ErrMinOrderNotMet)

	_, err = ValidateAt(db, "BIG", 1000, now)
	assert.NoError(t, err)
}

func TestValidateUsageLimitReached(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seedCoupon(t, db, models.Coupon{
		Code: "LIMITED", Type: models.CouponTypeFixedAmount, Value: 50,
		UsageLimit: intPtr(3), UsedCount: 3, ValidFrom: from, ValidUntil: until, IsActive: true,
	})

	_, err := ValidateAt(db, "LIMITED", 500, now)
	assert.ErrorIs(t, err, ErrUsageLimitReached)
}

func TestValidateFixedAmountCappedAtOrderAmount(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seedCoupon(t, db, models.Coupon{
		Code: "FLAT500", Type: models.CouponTypeFixedAmount, Value: 500,
		ValidFrom: from, ValidUntil: until, IsActive: true,
	})

	result, err := ValidateAt(db, "FLAT500", 300, now)
	require.NoError(t, err)
	assert.InDelta(t, 300, result.CalculatedDiscount, 0.001)

	result, err = ValidateAt(db, "FLAT500", 800, now)
	require.NoError(t, err)
	assert.InDelta(t, 500, result.CalculatedDiscount, 0.001)
}

func TestValidateFreeShippingYieldsZeroDiscount(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seedCoupon(t, db, models.Coupon{
		Code: "SHIPFREE", Type: models.CouponTypeFreeShipping, Value: 0,
		ValidFrom: from, ValidUntil: until, IsActive: true,
	})

	result, err := ValidateAt(db, "SHIPFREE", 250, now)
	require.NoError(t, err)
	assert.Zero(t, result.CalculatedDiscount)
	assert.Equal(t, models.CouponTypeFreeShipping, result.Type)
}

func TestValidateDoesNotMutateUsedCount(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seeded := seedCoupon(t, db, models.Coupon{
		Code: "SAVE10", Type: models.CouponTypePercentage, Value: 10,
		UsageLimit: intPtr(10), UsedCount: 4, ValidFrom: from, ValidUntil: until, IsActive: true,
	})

	_, err := ValidateAt(db, "SAVE10", 500, now)
	require.NoError(t, err)

	var reloaded models.Coupon
	require.NoError(t, db.First(&reloaded, seeded.ID).Error)
	assert.Equal(t, 4, reloaded.UsedCount)
}

func TestListActiveFiltersWindowAndFlag(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)
	seedCoupon(t, db, models.Coupon{Code: "LIVE", Type: models.CouponTypePercentage, Value: 5, ValidFrom: from, ValidUntil: until, IsActive: true})
	seedCoupon(t, db, models.Coupon{Code: "DEAD", Type: models.CouponTypePercentage, Value: 5, ValidFrom: now.Add(-48 * time.Hour), ValidUntil: now.Add(-24 * time.Hour), IsActive: true})
	seedCoupon(t, db, models.Coupon{Code: "OFF", Type: models.CouponTypePercentage, Value: 5, ValidFrom: from, ValidUntil: until, IsActive: false})

	coupons, err := ListActive(db, now)
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	assert.Equal(t, "LIVE", coupons[0].Code)
}
