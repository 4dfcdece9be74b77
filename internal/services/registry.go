package services

// ServiceContainer holds every service the application wires up.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	RestaurantService   RestaurantService
	PlanService         PlanService
	BenefitsService     BenefitsService
	SubscriptionService SubscriptionService
	NotificationService NotificationService
}
