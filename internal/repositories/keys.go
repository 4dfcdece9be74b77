package repositories

// Store keys. These names are the persisted contract and must not change:
// existing store files already carry them.
const (
	keyCurrentUser = "user"
	keyUsers       = "users"
	keyRestaurants = "restaurants"
	keyPlans       = "plans"
	keyPayments    = "payments"
	keyBenefits    = "userBenefits"
)
