package model

import "time"

// Role names used by the authorization middleware.  ADMIN users
// manage the back office; CLIENTE users are hotel guests.
const (
	RoleAdmin   = "ADMIN"
	RoleCliente = "CLIENTE"
)

// User represents an application user record as stored in the
// `users` table.  FirstName and LastName are nullable because guest
// accounts can be created from a bare email address; the notification
// jobs fall back to a generic salutation when they are missing.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address, used as the external identity
//                 that notifications are addressed to.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name (ADMIN or CLIENTE).
//  FirstName    – given name (nullable).
//  LastName     – family name (nullable).
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	FirstName    *string   // users.first_name (nullable)
	LastName     *string   // users.last_name (nullable)
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation.  The plain token is not stored; only its
// SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
