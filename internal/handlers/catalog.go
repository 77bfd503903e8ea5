package handlers

import (
	"net/http"

	"github.com/avc/engagement-storefront/internal/domain"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService domain.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService domain.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

type catalogResponse struct {
	Services  []domain.EngagementService `json:"services"`
	Discounts []domain.DiscountTier      `json:"discounts"`
}

func newCatalogResponse(catalog *domain.Catalog) catalogResponse {
	resp := catalogResponse{
		Services:  catalog.Services,
		Discounts: catalog.Discounts,
	}
	if resp.Services == nil {
		resp.Services = []domain.EngagementService{}
	}
	if resp.Discounts == nil {
		resp.Discounts = []domain.DiscountTier{}
	}
	return resp
}

// ListServices возвращает услуги с текущими ценами и скидками за объем
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCatalogResponse(h.catalogService.Catalog()))
}
