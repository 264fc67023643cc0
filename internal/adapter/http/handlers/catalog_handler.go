package handlers

import (
	"net/http"

	response "vaif_quotes/internal/adapter/http/dto/response"
	"vaif_quotes/internal/usecase"
	"vaif_quotes/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	log     *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{usecase: uc, log: log}
}

// ListCatalog godoc
// @Summary      Active pricing catalog
// @Description  Options offered by the quote builder with their prices and multipliers.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	catalog, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		h.log.Error("[catalog][handler] list failed", zap.Error(err))
		appErr := pkg.NewDomainError("CATALOG_UNAVAILABLE", "Catalog unavailable", err, http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalog(catalog))
}

// Ping godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
