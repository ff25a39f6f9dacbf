package user

import (
	"fmt"
	"time"

	"campusvoice/internal/domain/user/valueobjects"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

func (u *User) SetPassword(password *valueobjects.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.updatedAt = time.Now()

	return nil
}

// VerifyPassword checks the plaintext against the stored hash, counting a
// failure toward the lockout threshold and clearing the counter on success.
// The caller must persist the aggregate afterwards so the counter survives.
func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher, policy *SecurityPolicy) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}

	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		u.recordFailedLogin(policy)
		return fmt.Errorf("invalid password")
	}

	u.resetFailedLoginAttempts()
	return nil
}

func (u *User) recordFailedLogin(policy *SecurityPolicy) {
	u.failedLoginAttempts++
	u.updatedAt = time.Now()

	if u.failedLoginAttempts >= policy.MaxLoginAttempts {
		u.lockedUntil = timePtr(time.Now().Add(policy.LockoutDuration()))
	}
}

func (u *User) resetFailedLoginAttempts() {
	if u.failedLoginAttempts > 0 || u.lockedUntil != nil {
		u.failedLoginAttempts = 0
		u.lockedUntil = nil
		u.updatedAt = time.Now()
	}
}

// IsLocked reports whether the account is currently locked out. An expired
// lock counts as unlocked; the stale lockedUntil is cleared on the next
// successful login.
func (u *User) IsLocked() bool {
	if u.lockedUntil == nil {
		return false
	}
	return time.Now().Before(*u.lockedUntil)
}

// StampLastLogin records a successful authentication.
func (u *User) StampLastLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}
