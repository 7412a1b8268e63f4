package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/benx421/easydinar/internal/models"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkUnique(0, user.ClientIdentifier, user.CIN, user.Email, user.PhoneNumber); err != nil {
		return err
	}

	now := time.Now().UTC()
	r.s.nextUserID++
	user.ID = r.s.nextUserID
	user.CreatedAt = now
	if user.PasswordChangedAt.IsZero() {
		user.PasswordChangedAt = now
	}

	stored := *user
	r.s.users[user.ID] = &stored
	return nil
}

// checkUnique enforces the unique columns of the users table. Callers hold s.mu.
func (r *userRepository) checkUnique(selfID int64, clientIdentifier, cin, email, phone string) error {
	for id, u := range r.s.users {
		if id == selfID {
			continue
		}
		switch {
		case clientIdentifier != "" && u.ClientIdentifier == clientIdentifier:
			return models.ErrDuplicateClientIdentifier
		case cin != "" && u.CIN == cin:
			return fmt.Errorf("%w: cin", models.ErrDuplicateUser)
		case email != "" && u.Email == email:
			return fmt.Errorf("%w: email", models.ErrDuplicateUser)
		case phone != "" && u.PhoneNumber == phone:
			return fmt.Errorf("%w: phone_number", models.ErrDuplicateUser)
		}
	}
	return nil
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*models.User, error) {
	return r.findFirst(func(u *models.User) bool { return u.ID == id })
}

func (r *userRepository) FindByClientIdentifier(_ context.Context, clientIdentifier string) (*models.User, error) {
	return r.findFirst(func(u *models.User) bool { return u.ClientIdentifier == clientIdentifier })
}

func (r *userRepository) FindByCIN(_ context.Context, cin string) (*models.User, error) {
	return r.findFirst(func(u *models.User) bool { return u.CIN == cin })
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.findFirst(func(u *models.User) bool { return u.Email == email })
}

func (r *userRepository) findFirst(match func(u *models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *userRepository) List(_ context.Context, filter models.UserFilter) ([]*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var users []*models.User
	for _, u := range r.s.users {
		if filter.CIN != nil && u.CIN != *filter.CIN {
			continue
		}
		if filter.Email != nil && u.Email != *filter.Email {
			continue
		}
		c := *u
		users = append(users, &c)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *userRepository) UpdateContact(_ context.Context, id int64, update models.ContactUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return models.ErrNotFound
	}

	next := *u
	if update.Email != nil {
		next.Email = *update.Email
	}
	if update.Address != nil {
		next.Address = *update.Address
	}
	if update.PhoneNumber != nil {
		next.PhoneNumber = *update.PhoneNumber
	}

	if err := r.checkUnique(id, "", "", next.Email, next.PhoneNumber); err != nil {
		return err
	}

	r.s.users[id] = &next
	return nil
}

func (r *userRepository) UpdatePassword(_ context.Context, id int64, passwordHash string, changedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return models.ErrNotFound
	}

	next := *u
	next.PasswordHash = passwordHash
	next.PasswordChangedAt = changedAt
	r.s.users[id] = &next
	return nil
}

func (r *userRepository) UpdateTwoFactor(_ context.Context, id int64, transition models.TwoFactorTransition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return models.ErrNotFound
	}
	if !slices.Contains(transition.From, u.TwoFactor) {
		return models.ErrStateConflict
	}
	if transition.FromPhone != "" && u.TwoFactorPhone != transition.FromPhone {
		return models.ErrStateConflict
	}

	updated := *u
	updated.TwoFactor = transition.To
	updated.TwoFactorPhone = transition.Phone
	r.s.users[id] = &updated
	return nil
}
