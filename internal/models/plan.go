package models

type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// DefaultPlans is the catalog seeded on first load when no plans exist yet.
// The ids are stable slugs so links and tests can reference them.
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:          "basico",
			Name:        "Básico",
			Price:       19.90,
			Description: "Descontos em restaurantes participantes da sua cidade",
			Features: []string{
				"Descontos de até 15%",
				"Acesso ao catálogo completo",
				"Suporte por e-mail",
			},
		},
		{
			ID:          "premium",
			Name:        "Premium",
			Price:       39.90,
			Description: "Descontos maiores e benefícios exclusivos",
			Features: []string{
				"Descontos de até 30%",
				"Acesso ao catálogo completo",
				"Benefícios ilimitados",
				"Suporte prioritário",
			},
		},
		{
			ID:          "vip",
			Name:        "VIP",
			Price:       59.90,
			Description: "Tudo do Premium, para toda a família",
			Features: []string{
				"Descontos de até 50%",
				"Até 4 dependentes",
				"Benefícios ilimitados",
				"Eventos exclusivos",
			},
		},
	}
}
