package dto

type CreatePlanRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
}

type UpdatePlanRequest struct {
	Name        *string   `json:"name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Description *string   `json:"description,omitempty"`
	Features    *[]string `json:"features,omitempty"`
}

type CreateRestaurantRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Estado      string  `json:"estado" binding:"required"`
	Phone       string  `json:"phone,omitempty"`
	Discount    string  `json:"discount" binding:"required"`
	ImageURL    string  `json:"imageUrl,omitempty" binding:"omitempty,url"`
	Rating      float64 `json:"rating,omitempty"`
}

type UpdateRestaurantRequest struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	Estado      *string  `json:"estado,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Discount    *string  `json:"discount,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}
