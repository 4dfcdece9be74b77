package repositories

import (
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/store"
)

type PaymentRepository interface {
	All() ([]models.Payment, error)
	FindByID(id string) (*models.Payment, error)
	FindByUser(userID string) ([]models.Payment, error)
	Create(payment *models.Payment) error
	Save(payment *models.Payment) error
	ReplaceAll(payments []models.Payment) error
}

type paymentRepository struct {
	store *store.Store
}

func NewPaymentRepository(st *store.Store) PaymentRepository {
	return &paymentRepository{store: st}
}

func (r *paymentRepository) All() ([]models.Payment, error) {
	var payments []models.Payment
	if _, err := r.store.Get(keyPayments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByID(id string) (*models.Payment, error) {
	payments, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == id {
			return &payments[i], nil
		}
	}
	return nil, ErrPaymentNotFound
}

func (r *paymentRepository) FindByUser(userID string) ([]models.Payment, error) {
	payments, err := r.All()
	if err != nil {
		return nil, err
	}
	var result []models.Payment
	for _, p := range payments {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.store.WithLock(keyPayments, func() error {
		var payments []models.Payment
		if _, err := r.store.Get(keyPayments, &payments); err != nil {
			return err
		}
		payments = append(payments, *payment)
		return r.store.Set(keyPayments, payments)
	})
}

func (r *paymentRepository) Save(payment *models.Payment) error {
	return r.store.WithLock(keyPayments, func() error {
		var payments []models.Payment
		if _, err := r.store.Get(keyPayments, &payments); err != nil {
			return err
		}
		for i := range payments {
			if payments[i].ID == payment.ID {
				payments[i] = *payment
				return r.store.Set(keyPayments, payments)
			}
		}
		return ErrPaymentNotFound
	})
}

func (r *paymentRepository) ReplaceAll(payments []models.Payment) error {
	return r.store.WithLock(keyPayments, func() error {
		return r.store.Set(keyPayments, payments)
	})
}
