package user

import "time"

// SecurityPolicy defines the lockout thresholds for failed authentication.
type SecurityPolicy struct {
	MaxLoginAttempts       int
	LockoutDurationMinutes int
}

// DefaultSecurityPolicy returns the default security policy
func DefaultSecurityPolicy() *SecurityPolicy {
	return &SecurityPolicy{
		MaxLoginAttempts:       5,
		LockoutDurationMinutes: 30,
	}
}

// LockoutDuration returns the lockout duration as time.Duration
func (p *SecurityPolicy) LockoutDuration() time.Duration {
	return time.Duration(p.LockoutDurationMinutes) * time.Minute
}
