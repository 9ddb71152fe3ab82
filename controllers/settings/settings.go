package settingsControllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

var ErrSettingNotFound = errors.New("setting not found")

// publicKeys is the whitelist exposed without authentication.
var publicKeys = []string{
	"site.name",
	"site.description",
	"site.logo",
	"site.contact",
	"shipping.free_threshold",
	"shipping.base_rate",
}

// -------- Core Logic --------

// GetPublicSettings returns the whitelisted keys as a key→value map.
func GetPublicSettings(db *gorm.DB) (map[string]json.RawMessage, error) {
	var settings []models.Setting
	if err := db.Where("key IN ?", publicKeys).Find(&settings).Error; err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(settings))
	for _, s := range settings {
		out[s.Key] = json.RawMessage(s.Value)
	}
	return out, nil
}

func GetSetting(db *gorm.DB, key string) (models.Setting, error) {
	var setting models.Setting
	err := db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return setting, ErrSettingNotFound
	}
	return setting, err
}

// UpsertSetting creates or overwrites the value stored under key.
func UpsertSetting(db *gorm.DB, key string, value json.RawMessage) (models.Setting, error) {
	setting := models.Setting{Key: key, Value: datatypes.JSON(value)}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return setting, err
	}
	err = db.Where("key = ?", key).First(&setting).Error
	return setting, err
}

// -------- Handlers --------

// GET /settings/public
func GetPublicSettingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := GetPublicSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": settings})
	}
}

// GET /settings/:key
func GetSettingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		setting, err := GetSetting(db, c.Param("key"))
		if err != nil {
			if errors.Is(err, ErrSettingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch setting"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"setting": setting})
	}
}

// PUT /settings/:key
func UpdateSettingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Value json.RawMessage `json:"value" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		setting, err := UpsertSetting(db, c.Param("key"), body.Value)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"setting": setting})
	}
}
