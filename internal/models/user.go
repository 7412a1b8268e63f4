package models

import "time"

// Role is the privilege level of a user
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// TwoFactorState is the enrollment state of optional SMS step-up
type TwoFactorState string

const (
	TwoFactorOff     TwoFactorState = "off"
	TwoFactorPending TwoFactorState = "pending"
	TwoFactorOn      TwoFactorState = "on"
)

// TwoFactorTransition is a compare-and-set on a user's enrollment. The update
// applies only while the state is one of From and, when FromPhone is set, the
// bound phone still equals FromPhone.
type TwoFactorTransition struct {
	From      []TwoFactorState
	FromPhone string
	To        TwoFactorState
	Phone     string
}

// User represents a bank customer or administrator
type User struct {
	CreatedAt         time.Time      `db:"created_at"`
	PasswordChangedAt time.Time      `db:"password_changed_at"`
	ClientIdentifier  string         `db:"client_identifier"`
	FirstName         string         `db:"first_name"`
	LastName          string         `db:"last_name"`
	CIN               string         `db:"cin"`
	PhoneNumber       string         `db:"phone_number"`
	Address           string         `db:"address"`
	Email             string         `db:"email"`
	PasswordHash      string         `db:"password_hash"`
	Role              Role           `db:"role"`
	TwoFactor         TwoFactorState `db:"two_factor"`
	TwoFactorPhone    string         `db:"two_factor_phone"`
	ID                int64          `db:"id"`
}

// UserFilter narrows a user directory query
type UserFilter struct {
	CIN   *string
	Email *string
}

// ContactUpdate carries the optional profile fields a user may change
type ContactUpdate struct {
	Email       *string
	Address     *string
	PhoneNumber *string
}
