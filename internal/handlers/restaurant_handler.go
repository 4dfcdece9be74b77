package handlers

import (
	"net/http"

	"gastropass_backend/internal/middleware"
	"gastropass_backend/internal/services"
	"gastropass_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	*BaseHandler
	restaurantService services.RestaurantService
}

func NewRestaurantHandler(base *BaseHandler, restaurantService services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		BaseHandler:       base,
		restaurantService: restaurantService,
	}
}

func (h *RestaurantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// The catalog is public: browsing does not require an account.
	restaurants := rg.Group("/restaurants")
	{
		restaurants.GET("", h.List)
		restaurants.GET("/:id", h.Get)
	}

	admin := rg.Group("/admin/restaurants")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.restaurantService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants, "total": len(restaurants)})
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	restaurant, err := h.restaurantService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	restaurant, err := h.restaurantService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRestaurantRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	restaurant, err := h.restaurantService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.restaurantService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}
