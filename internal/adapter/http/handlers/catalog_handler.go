package handlers

import (
	"net/http"

	response "shootbook/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// GetCatalog godoc
// @Summary  Options offered by the booking wizard
// @Tags     catalog
// @Produce  json
// @Success  200 {object} response.CatalogResponse
// @Router   /catalog [get]
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewCatalogResponse())
}
