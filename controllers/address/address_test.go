package addressControllers

import (
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Address{}))
	return db
}

func defaultCount(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).Count(&n).Error)
	return n
}

func addrInput(city string, isDefault bool) AddressInput {
	return AddressInput{
		FirstName:  "Asha",
		Address1:   "12 MG Road",
		City:       city,
		PostalCode: "560001",
		IsDefault:  isDefault,
	}
}

func TestCreateFirstAddressForcesDefault(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateAddress(db, "u1", addrInput("Bengaluru", false))
	require.NoError(t, err)

	assert.True(t, created.IsDefault, "first address must be default regardless of input")
	assert.EqualValues(t, 1, defaultCount(t, db, "u1"))
}

func TestCreateSecondDefaultClearsPrevious(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateAddress(db, "u1", addrInput("Bengaluru", true))
	require.NoError(t, err)
	second, err := CreateAddress(db, "u1", addrInput("Mumbai", true))
	require.NoError(t, err)

	assert.True(t, second.IsDefault)
	assert.EqualValues(t, 1, defaultCount(t, db, "u1"))

	var reloaded models.Address
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.False(t, reloaded.IsDefault)
}

func TestCreateSecondNonDefaultKeepsFirst(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateAddress(db, "u1", addrInput("Bengaluru", false))
	require.NoError(t, err)
	second, err := CreateAddress(db, "u1", addrInput("Mumbai", false))
	require.NoError(t, err)

	assert.False(t, second.IsDefault)
	var reloaded models.Address
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.True(t, reloaded.IsDefault)
}

func TestUpdateAddressOwnership(t *testing.T) {
	db := newTestDB(t)

	created, err := CreateAddress(db, "u1", addrInput("Bengaluru", true))
	require.NoError(t, err)

	_, err = UpdateAddress(db, "u2", created.ID, addrInput("Delhi", false))
	assert.ErrorIs(t, err, ErrAddressNotFound)

	_, err = UpdateAddress(db, "u1", created.ID+100, addrInput("Delhi", false))
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestUpdateSetsDefaultExplicitly(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateAddress(db, "u1", addrInput("Bengaluru", true))
	require.NoError(t, err)
	second, err := CreateAddress(db, "u1", addrInput("Mumbai", false))
	require.NoError(t, err)

	updated, err := UpdateAddress(db, "u1", second.ID, addrInput("Mumbai", true))
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.EqualValues(t, 1, defaultCount(t, db, "u1"))

	// Absent flag in input writes false.
	updated, err = UpdateAddress(db, "u1", second.ID, addrInput("Mumbai", false))
	require.NoError(t, err)
	assert.False(t, updated.IsDefault)
	_ = first
}

func TestDeleteDefaultPromotesNewestRemaining(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateAddress(db, "u1", addrInput("Bengaluru", true))
	require.NoError(t, err)
	second, err := CreateAddress(db, "u1", addrInput("Mumbai", false))
	require.NoError(t, err)
	third, err := CreateAddress(db, "u1", addrInput("Chennai", false))
	require.NoError(t, err)

	require.NoError(t, DeleteAddress(db, "u1", first.ID))

	// Newest remaining is the third one; equal timestamps fall back to id.
	var promoted models.Address
	require.NoError(t, db.Where("user_id = ? AND is_default = ?", "u1", true).First(&promoted).Error)
	assert.Equal(t, third.ID, promoted.ID)
	assert.EqualValues(t, 1, defaultCount(t, db, "u1"))
	_ = second
}

func TestDeleteNonDefaultKeepsDefault(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateAddress(db, "u1", addrInput("Bengaluru", true))
	require.NoError(t, err)
	second, err := CreateAddress(db, "u1", addrInput("Mumbai", false))
	require.NoError(t, err)

	require.NoError(t, DeleteAddress(db, "u1", second.ID))

	var reloaded models.Address
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.True(t, reloaded.IsDefault)
}

func TestDeleteLastAddressLeavesNoDefault(t *testing.T) {
	db := newTestDB(t)

	only, err := CreateAddress(db, "u1", addrInput("Bengaluru", true))
	require.NoError(t, err)
	require.NoError(t, DeleteAddress(db, "u1", only.ID))

	assert.EqualValues(t, 0, defaultCount(t, db, "u1"))
}

func TestSetDefaultSwitches(t *testing.T) {
	db := newTestDB(t)

	first, err := CreateAddress(db, "u1", addrInput("Bengaluru", true))
	require.NoError(t, err)
	second, err := CreateAddress(db, "u1", addrInput("Mumbai", false))
	require.NoError(t, err)

	address, err := SetDefaultAddress(db, "u1", second.ID)
	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.EqualValues(t, 1, defaultCount(t, db, "u1"))

	var reloaded models.Address
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.False(t, reloaded.IsDefault)

	_, err = SetDefaultAddress(db, "u2", second.ID)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestInvariantHoldsAcrossSequence(t *testing.T) {
	db := newTestDB(t)

	a, _ := CreateAddress(db, "u1", addrInput("A", false))
	b, _ := CreateAddress(db, "u1", addrInput("B", true))
	c, _ := CreateAddress(db, "u1", addrInput("C", true))
	_, err := SetDefaultAddress(db, "u1", a.ID)
	require.NoError(t, err)
	require.NoError(t, DeleteAddress(db, "u1", a.ID))
	_, err = UpdateAddress(db, "u1", b.ID, addrInput("B2", true))
	require.NoError(t, err)
	require.NoError(t, DeleteAddress(db, "u1", b.ID))

	// One address left: it must be the default.
	assert.EqualValues(t, 1, defaultCount(t, db, "u1"))
	var last models.Address
	require.NoError(t, db.Where("user_id = ?", "u1").First(&last).Error)
	assert.Equal(t, c.ID, last.ID)
	assert.True(t, last.IsDefault)
}
