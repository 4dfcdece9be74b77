package repositories

import (
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/store"
)

// BenefitsRepository owns the entitlement ledger singleton. Update runs the
// caller's mutation under the key's critical section, so two callers can
// never both read the same pre-decrement value.
type BenefitsRepository interface {
	Ledger() (*models.BenefitLedger, error)
	Update(fn func(ledger *models.BenefitLedger) error) (*models.BenefitLedger, error)
	Reset() (*models.BenefitLedger, error)
}

type benefitsRepository struct {
	store     *store.Store
	freeQuota int
}

func NewBenefitsRepository(st *store.Store, freeQuota int) BenefitsRepository {
	if freeQuota <= 0 {
		freeQuota = models.DefaultFreeBenefits
	}
	return &benefitsRepository{store: st, freeQuota: freeQuota}
}

// Ledger reads the singleton, lazily seeding and persisting it on first access.
func (r *benefitsRepository) Ledger() (*models.BenefitLedger, error) {
	var ledger *models.BenefitLedger
	err := r.store.WithLock(keyBenefits, func() error {
		var err error
		ledger, err = r.load()
		return err
	})
	return ledger, err
}

func (r *benefitsRepository) Update(fn func(ledger *models.BenefitLedger) error) (*models.BenefitLedger, error) {
	var ledger *models.BenefitLedger
	err := r.store.WithLock(keyBenefits, func() error {
		var err error
		ledger, err = r.load()
		if err != nil {
			return err
		}
		if err := fn(ledger); err != nil {
			return err
		}
		return r.store.Set(keyBenefits, ledger)
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (r *benefitsRepository) Reset() (*models.BenefitLedger, error) {
	ledger := models.NewBenefitLedger(r.freeQuota)
	err := r.store.WithLock(keyBenefits, func() error {
		return r.store.Set(keyBenefits, ledger)
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (r *benefitsRepository) load() (*models.BenefitLedger, error) {
	var ledger models.BenefitLedger
	found, err := r.store.Get(keyBenefits, &ledger)
	if err != nil {
		return nil, err
	}
	if !found {
		seeded := models.NewBenefitLedger(r.freeQuota)
		if err := r.store.Set(keyBenefits, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}
	return &ledger, nil
}
