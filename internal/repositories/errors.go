package repositories

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrPaymentNotFound    = errors.New("payment not found")
)
