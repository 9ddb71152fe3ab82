package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50
)

type ProductQuery struct {
	Page         int
	PageSize     int
	Q            string
	CategorySlug string
	IsFeatured   *bool
	IsNew        *bool
	Sort         string // price_asc | price_desc | newest
}

type ProductPage struct {
	Items    []models.Product `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// -------- Core Logic --------

// ListProducts pages through active products with optional search, category,
// flag filters and price sorting.
func ListProducts(db *gorm.DB, q ProductQuery) (ProductPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	query := db.Model(&models.Product{}).Where("is_active = ?", true)

	if q.Q != "" {
		like := "%" + q.Q + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}
	if q.IsFeatured != nil {
		query = query.Where("is_featured = ?", *q.IsFeatured)
	}
	if q.IsNew != nil {
		query = query.Where("is_new = ?", *q.IsNew)
	}
	if q.CategorySlug != "" {
		var category models.Category
		if err := db.Where("slug = ?", q.CategorySlug).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown slug matches nothing rather than everything.
				return ProductPage{Items: []models.Product{}, Page: page, PageSize: pageSize}, nil
			}
			return ProductPage{}, err
		}
		query = query.Where("category_id = ?", category.ID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ProductPage{}, err
	}

	switch q.Sort {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var items []models.Product
	err := query.
		Preload("Images").
		Preload("Category").
		Preload("Variants", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("type IN ?", []models.VariantType{models.VariantTypeSize, models.VariantTypeColor}).
				Order("name ASC")
		}).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return ProductPage{}, err
	}

	return ProductPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetProduct returns an active product with its full detail graph.
func GetProduct(db *gorm.DB, id uint) (models.Product, error) {
	var product models.Product
	err := db.Where("id = ? AND is_active = ?", id, true).
		Preload("Images").
		Preload("Variants", func(tx *gorm.DB) *gorm.DB { return tx.Order("name ASC") }).
		Preload("Specifications").
		Preload("Reviews").
		Preload("Category").
		First(&product).Error
	return product, err
}

// -------- Handlers --------

// GET /products
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := ProductQuery{
			Q:            c.Query("q"),
			CategorySlug: c.Query("category"),
			Sort:         c.Query("sort"),
		}
		q.Page, _ = strconv.Atoi(c.Query("page"))
		q.PageSize, _ = strconv.Atoi(c.Query("pageSize"))
		if raw := c.Query("isFeatured"); raw != "" {
			v := raw == "true"
			q.IsFeatured = &v
		}
		if raw := c.Query("isNew"); raw != "" {
			v := raw == "true"
			q.IsNew = &v
		}

		result, err := ListProducts(db, q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /products/:id
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be numeric"})
			return
		}
		product, err := GetProduct(db, uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
