package repositories

import (
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/store"
)

type RestaurantRepository interface {
	All() ([]models.Restaurant, error)
	FindByID(id string) (*models.Restaurant, error)
	Create(restaurant *models.Restaurant) error
	Save(restaurant *models.Restaurant) error
	Delete(id string) error
}

type restaurantRepository struct {
	store *store.Store
}

func NewRestaurantRepository(st *store.Store) RestaurantRepository {
	return &restaurantRepository{store: st}
}

func (r *restaurantRepository) All() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if _, err := r.store.Get(keyRestaurants, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) FindByID(id string) (*models.Restaurant, error) {
	restaurants, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i], nil
		}
	}
	return nil, ErrRestaurantNotFound
}

func (r *restaurantRepository) Create(restaurant *models.Restaurant) error {
	return r.store.WithLock(keyRestaurants, func() error {
		var restaurants []models.Restaurant
		if _, err := r.store.Get(keyRestaurants, &restaurants); err != nil {
			return err
		}
		restaurants = append(restaurants, *restaurant)
		return r.store.Set(keyRestaurants, restaurants)
	})
}

func (r *restaurantRepository) Save(restaurant *models.Restaurant) error {
	return r.store.WithLock(keyRestaurants, func() error {
		var restaurants []models.Restaurant
		if _, err := r.store.Get(keyRestaurants, &restaurants); err != nil {
			return err
		}
		for i := range restaurants {
			if restaurants[i].ID == restaurant.ID {
				restaurants[i] = *restaurant
				return r.store.Set(keyRestaurants, restaurants)
			}
		}
		return ErrRestaurantNotFound
	})
}

func (r *restaurantRepository) Delete(id string) error {
	return r.store.WithLock(keyRestaurants, func() error {
		var restaurants []models.Restaurant
		if _, err := r.store.Get(keyRestaurants, &restaurants); err != nil {
			return err
		}
		kept := restaurants[:0]
		found := false
		for _, item := range restaurants {
			if item.ID == id {
				found = true
				continue
			}
			kept = append(kept, item)
		}
		if !found {
			return ErrRestaurantNotFound
		}
		return r.store.Set(keyRestaurants, kept)
	})
}
