package addressControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

var ErrAddressNotFound = errors.New("address not found")

type AddressInput struct {
	Type       string `json:"type"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name"`
	Company    string `json:"company"`
	Address1   string `json:"address1" binding:"required"`
	Address2   string `json:"address2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

func (in AddressInput) toModel(userID string) models.Address {
	country := in.Country
	if country == "" {
		country = "India"
	}
	return models.Address{
		UserID:     userID,
		Type:       in.Type,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Company:    in.Company,
		Address1:   in.Address1,
		Address2:   in.Address2,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    country,
		Phone:      in.Phone,
		IsDefault:  in.IsDefault,
	}
}

// -------- Core Logic --------

// ListAddresses returns the user's addresses, default first, newest first.
func ListAddresses(db *gorm.DB, userID string) ([]models.Address, error) {
	var addresses []models.Address
	err := db.Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&addresses).Error
	return addresses, err
}

// CreateAddress inserts a new address. A user's first address is always the
// default regardless of input; a new default clears the previous one. The
// clear-then-set pair runs in one transaction so two concurrent writers
// cannot leave zero or two defaults behind.
func CreateAddress(db *gorm.DB, userID string, in AddressInput) (models.Address, error) {
	address := in.toModel(userID)

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			address.IsDefault = true
		}

		if address.IsDefault {
			if err := clearDefault(tx, userID); err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	return address, err
}

// UpdateAddress rewrites every field of an owned address. IsDefault is
// written explicitly: an absent flag in the input means false.
func UpdateAddress(db *gorm.DB, userID string, id uint, in AddressInput) (models.Address, error) {
	var address models.Address

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAddressNotFound
			}
			return err
		}

		if in.IsDefault && !address.IsDefault {
			if err := clearDefault(tx, userID); err != nil {
				return err
			}
		}

		updated := in.toModel(userID)
		updated.ID = address.ID
		updated.CreatedAt = address.CreatedAt
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}
		address = updated
		return nil
	})
	return address, err
}

// DeleteAddress removes an owned address. When the deleted row was the
// default, the most recently created remaining address (created_at DESC,
// id DESC as the tie-break) is promoted.
func DeleteAddress(db *gorm.DB, userID string, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAddressNotFound
			}
			return err
		}

		if err := tx.Delete(&address).Error; err != nil {
			return err
		}

		if !address.IsDefault {
			return nil
		}

		var next models.Address
		err := tx.Where("user_id = ?", userID).
			Order("created_at DESC").
			Order("id DESC").
			First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // no addresses left, nothing to promote
		}
		if err != nil {
			return err
		}
		return tx.Model(&next).Update("is_default", true).Error
	})
}

// SetDefaultAddress makes the owned address the single default.
func SetDefaultAddress(db *gorm.DB, userID string, id uint) (models.Address, error) {
	var address models.Address

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAddressNotFound
			}
			return err
		}

		if err := clearDefault(tx, userID); err != nil {
			return err
		}

		address.IsDefault = true
		return tx.Model(&address).Update("is_default", true).Error
	})
	return address, err
}

func clearDefault(tx *gorm.DB, userID string) error {
	return tx.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}

// -------- Handlers --------

// GET /addresses
func ListAddressesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		addresses, err := ListAddresses(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": addresses})
	}
}

// POST /addresses
func CreateAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var in AddressInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		address, err := CreateAddress(db, userID, in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"address": address})
	}
}

// PUT /addresses/:id
func UpdateAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var in AddressInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		address, err := UpdateAddress(db, userID, id, in)
		if err != nil {
			respondAddressError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"address": address})
	}
}

// DELETE /addresses/:id
func DeleteAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := DeleteAddress(db, userID, id); err != nil {
			respondAddressError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// POST /addresses/:id/default
func SetDefaultAddressHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		address, err := SetDefaultAddress(db, userID, id)
		if err != nil {
			respondAddressError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"address": address})
	}
}

func respondAddressError(c *gin.Context, err error) {
	if errors.Is(err, ErrAddressNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
}
