package repositories

import (
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/store"
)

type PlanRepository interface {
	All() ([]models.Plan, error)
	FindByID(id string) (*models.Plan, error)
	Create(plan *models.Plan) error
	Save(plan *models.Plan) error
	Delete(id string) error

	// SeedDefaults writes the default catalog when no plans key exists yet.
	// Returns true when seeding happened.
	SeedDefaults() (bool, error)
}

type planRepository struct {
	store *store.Store
}

func NewPlanRepository(st *store.Store) PlanRepository {
	return &planRepository{store: st}
}

func (r *planRepository) All() ([]models.Plan, error) {
	var plans []models.Plan
	if _, err := r.store.Get(keyPlans, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) FindByID(id string) (*models.Plan, error) {
	plans, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], nil
		}
	}
	return nil, ErrPlanNotFound
}

func (r *planRepository) Create(plan *models.Plan) error {
	return r.store.WithLock(keyPlans, func() error {
		var plans []models.Plan
		if _, err := r.store.Get(keyPlans, &plans); err != nil {
			return err
		}
		plans = append(plans, *plan)
		return r.store.Set(keyPlans, plans)
	})
}

func (r *planRepository) Save(plan *models.Plan) error {
	return r.store.WithLock(keyPlans, func() error {
		var plans []models.Plan
		if _, err := r.store.Get(keyPlans, &plans); err != nil {
			return err
		}
		for i := range plans {
			if plans[i].ID == plan.ID {
				plans[i] = *plan
				return r.store.Set(keyPlans, plans)
			}
		}
		return ErrPlanNotFound
	})
}

func (r *planRepository) Delete(id string) error {
	return r.store.WithLock(keyPlans, func() error {
		var plans []models.Plan
		if _, err := r.store.Get(keyPlans, &plans); err != nil {
			return err
		}
		kept := plans[:0]
		found := false
		for _, p := range plans {
			if p.ID == id {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		if !found {
			return ErrPlanNotFound
		}
		return r.store.Set(keyPlans, kept)
	})
}

func (r *planRepository) SeedDefaults() (bool, error) {
	seeded := false
	err := r.store.WithLock(keyPlans, func() error {
		var plans []models.Plan
		found, err := r.store.Get(keyPlans, &plans)
		if err != nil {
			return err
		}
		if found {
			return nil
		}
		seeded = true
		return r.store.Set(keyPlans, models.DefaultPlans())
	})
	return seeded, err
}
