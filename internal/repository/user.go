package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benx421/easydinar/internal/db"
	"github.com/benx421/easydinar/internal/models"
	"github.com/lib/pq"
)

const userColumns = `
	id, client_identifier, first_name, last_name, cin, phone_number, address, email,
	password_hash, role, two_factor, two_factor_phone, password_changed_at, created_at
`

// userRepository implements UserRepository
type userRepository struct {
	db db.DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database db.DBTX) UserRepository {
	return &userRepository{db: database}
}

// Create inserts a user and fills in its generated id and timestamps
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (client_identifier, first_name, last_name, cin, phone_number, address,
		                   email, password_hash, role, two_factor, two_factor_phone, password_changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	if user.PasswordChangedAt.IsZero() {
		return fmt.Errorf("create user: password_changed_at is required")
	}

	err := r.db.QueryRowContext(ctx, query,
		user.ClientIdentifier,
		user.FirstName,
		user.LastName,
		user.CIN,
		user.PhoneNumber,
		user.Address,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.TwoFactor,
		user.TwoFactorPhone,
		user.PasswordChangedAt,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return mapUserWriteError("create user", err)
	}

	return nil
}

// FindByID retrieves a user by id
func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByClientIdentifier retrieves a user by login handle
func (r *userRepository) FindByClientIdentifier(ctx context.Context, clientIdentifier string) (*models.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE client_identifier = $1`, clientIdentifier)
}

// FindByCIN retrieves a user by national identity number
func (r *userRepository) FindByCIN(ctx context.Context, cin string) (*models.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE cin = $1`, cin)
}

// FindByEmail retrieves a user by email address
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// List returns users matching filter ordered by id
func (r *userRepository) List(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CIN != nil {
		args = append(args, *filter.CIN)
		conds = append(conds, fmt.Sprintf("cin = $%d", len(args)))
	}
	if filter.Email != nil {
		args = append(args, *filter.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}

	query := `SELECT ` + userColumns + ` FROM users`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() {
		_ = rows.Close() //nolint:errcheck // close error is not critical in defer
	}()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// UpdateContact applies the non-nil fields of update
func (r *userRepository) UpdateContact(ctx context.Context, id int64, update models.ContactUpdate) error {
	query := `
		UPDATE users
		SET email = COALESCE($2, email),
		    address = COALESCE($3, address),
		    phone_number = COALESCE($4, phone_number)
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, update.Email, update.Address, update.PhoneNumber)
	if err != nil {
		return mapUserWriteError("update contact", err)
	}

	return expectOneRow(result)
}

// UpdatePassword stores a new password hash and records when it changed
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $2, password_changed_at = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash, changedAt)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return expectOneRow(result)
}

// UpdateTwoFactor performs a compare-and-set on the enrollment state
func (r *userRepository) UpdateTwoFactor(ctx context.Context, id int64, transition models.TwoFactorTransition) error {
	states := make([]string, len(transition.From))
	for i, s := range transition.From {
		states[i] = string(s)
	}

	query := `
		UPDATE users
		SET two_factor = $2, two_factor_phone = $3
		WHERE id = $1 AND two_factor = ANY($4) AND ($5 = '' OR two_factor_phone = $5)
	`

	result, err := r.db.ExecContext(ctx, query, id, transition.To, transition.Phone, pq.Array(states), transition.FromPhone)
	if err != nil {
		return fmt.Errorf("failed to update two-factor state: %w", err)
	}

	err = expectOneRow(result)
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	// Distinguish a missing user from a lost race.
	if _, findErr := r.FindByID(ctx, id); findErr != nil {
		return findErr
	}
	return models.ErrStateConflict
}

func expectOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func mapUserWriteError(op string, err error) error {
	constraint, ok := uniqueConstraint(err)
	switch {
	case ok && constraint == "users_client_identifier_key":
		return models.ErrDuplicateClientIdentifier
	case ok:
		return fmt.Errorf("%w: %s", models.ErrDuplicateUser, strings.TrimSuffix(strings.TrimPrefix(constraint, "users_"), "_key"))
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.ClientIdentifier,
		&user.FirstName,
		&user.LastName,
		&user.CIN,
		&user.PhoneNumber,
		&user.Address,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.TwoFactor,
		&user.TwoFactorPhone,
		&user.PasswordChangedAt,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
