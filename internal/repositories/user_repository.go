package repositories

import (
	"strings"

	"gastropass_backend/internal/models"
	"gastropass_backend/internal/store"
)

// UserRepository is the typed accessor over the "users" collection and the
// "user" session mirror. Mutations run inside the store's per-key critical
// section; the session mirror is kept in sync whenever the matching user
// record changes.
type UserRepository interface {
	All() ([]models.User, error)
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	Delete(id string) error
	ReplaceAll(users []models.User) error

	Current() (*models.User, bool, error)
	SetCurrent(user *models.User) error
	ClearCurrent() error
}

type userRepository struct {
	store *store.Store
}

func NewUserRepository(st *store.Store) UserRepository {
	return &userRepository{store: st}
}

func (r *userRepository) All() ([]models.User, error) {
	var users []models.User
	if _, err := r.store.Get(keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *userRepository) Create(user *models.User) error {
	return r.store.WithLock(keyUsers, func() error {
		var users []models.User
		if _, err := r.store.Get(keyUsers, &users); err != nil {
			return err
		}
		for i := range users {
			if strings.EqualFold(users[i].Email, user.Email) {
				return ErrUserAlreadyExists
			}
		}
		users = append(users, *user)
		return r.store.Set(keyUsers, users)
	})
}

func (r *userRepository) Save(user *models.User) error {
	return r.store.WithLock(keyUsers, func() error {
		var users []models.User
		if _, err := r.store.Get(keyUsers, &users); err != nil {
			return err
		}
		found := false
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = *user
				found = true
				break
			}
		}
		if !found {
			return ErrUserNotFound
		}
		if err := r.store.Set(keyUsers, users); err != nil {
			return err
		}
		return r.syncCurrent(user)
	})
}

func (r *userRepository) Delete(id string) error {
	return r.store.WithLock(keyUsers, func() error {
		var users []models.User
		if _, err := r.store.Get(keyUsers, &users); err != nil {
			return err
		}
		kept := users[:0]
		found := false
		for _, u := range users {
			if u.ID == id {
				found = true
				continue
			}
			kept = append(kept, u)
		}
		if !found {
			return ErrUserNotFound
		}
		if err := r.store.Set(keyUsers, kept); err != nil {
			return err
		}
		// A deleted user cannot stay mirrored as the session record.
		current, ok, err := r.current()
		if err != nil {
			return err
		}
		if ok && current.ID == id {
			return r.store.Remove(keyCurrentUser)
		}
		return nil
	})
}

// ReplaceAll persists the whole collection at once. Used by the notification
// sweep, which mutates many users in one pass.
func (r *userRepository) ReplaceAll(users []models.User) error {
	return r.store.WithLock(keyUsers, func() error {
		if err := r.store.Set(keyUsers, users); err != nil {
			return err
		}
		current, ok, err := r.current()
		if err != nil || !ok {
			return err
		}
		for i := range users {
			if users[i].ID == current.ID {
				return r.store.Set(keyCurrentUser, users[i])
			}
		}
		return nil
	})
}

func (r *userRepository) Current() (*models.User, bool, error) {
	return r.current()
}

func (r *userRepository) current() (*models.User, bool, error) {
	var user models.User
	found, err := r.store.Get(keyCurrentUser, &user)
	if err != nil || !found {
		return nil, false, err
	}
	return &user, true, nil
}

func (r *userRepository) SetCurrent(user *models.User) error {
	return r.store.Set(keyCurrentUser, user)
}

func (r *userRepository) ClearCurrent() error {
	return r.store.Remove(keyCurrentUser)
}

func (r *userRepository) syncCurrent(user *models.User) error {
	current, ok, err := r.current()
	if err != nil || !ok {
		return err
	}
	if current.ID == user.ID {
		return r.store.Set(keyCurrentUser, user)
	}
	return nil
}
