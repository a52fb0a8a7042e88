package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dheighten/laundryapi/internal/catalog"
)

// CatalogResponse represents the catalog response
type CatalogResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Plans []MonthlyPlanResponse `json:"plans"`
}

type CatalogItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Category  string `json:"category"`
}

type MonthlyPlanResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// HandleGetCatalog handles GET /v1/catalog
func HandleGetCatalog(cat *catalog.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := cat.Items()
		itemResponses := make([]CatalogItemResponse, len(items))
		for i, item := range items {
			itemResponses[i] = CatalogItemResponse{
				ID:        item.ID,
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Category:  item.Category,
			}
		}

		plans := cat.Plans()
		planResponses := make([]MonthlyPlanResponse, len(plans))
		for i, plan := range plans {
			planResponses[i] = MonthlyPlanResponse{
				Name:        plan.Name,
				Description: plan.Description,
				Price:       plan.Price,
			}
		}

		c.JSON(http.StatusOK, CatalogResponse{
			Items: itemResponses,
			Plans: planResponses,
		})
	}
}
