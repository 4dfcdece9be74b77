package handlers

import (
	"net/http"

	"gastropass_backend/internal/middleware"
	"gastropass_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BenefitsHandler struct {
	*BaseHandler
	benefitsService services.BenefitsService
}

func NewBenefitsHandler(base *BaseHandler, benefitsService services.BenefitsService) *BenefitsHandler {
	return &BenefitsHandler{
		BaseHandler:     base,
		benefitsService: benefitsService,
	}
}

func (h *BenefitsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	benefits := rg.Group("/benefits")
	benefits.Use(middleware.AuthMiddleware())
	{
		benefits.GET("", h.Ledger)
		benefits.POST("/consume", h.Consume)
	}

	admin := rg.Group("/admin/benefits")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/reset", h.Reset)
	}
}

func (h *BenefitsHandler) Ledger(c *gin.Context) {
	response, err := h.benefitsService.Ledger()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BenefitsHandler) Consume(c *gin.Context) {
	response, err := h.benefitsService.Consume()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BenefitsHandler) Reset(c *gin.Context) {
	response, err := h.benefitsService.Reset()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
