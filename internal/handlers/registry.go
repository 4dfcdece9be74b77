package handlers

// AppHandlers holds every handler the application wires up.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	RestaurantHandler   *RestaurantHandler
	PlanHandler         *PlanHandler
	BenefitsHandler     *BenefitsHandler
	SubscriptionHandler *SubscriptionHandler
	NotificationHandler *NotificationHandler
}
