package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s *ServerConfig) IsProduction() bool {
	return s.Mode == "release" || s.Mode == "production"
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	ExpiryDays int    `mapstructure:"expiry_days"`
	Issuer     string `mapstructure:"issuer"`
}

type LockoutConfig struct {
	MaxAttempts     int `mapstructure:"max_attempts"`
	DurationMinutes int `mapstructure:"duration_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Lockout  LockoutConfig  `mapstructure:"lockout"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig holds the two independent fixed-window limits: a general
// per-IP API cap and a tighter cap on login attempts.
type RateLimitConfig struct {
	APIRequests      int `mapstructure:"api_requests"`
	APIWindowMinutes int `mapstructure:"api_window_minutes"`
	LoginRequests    int `mapstructure:"login_requests"`
	LoginWindowHours int `mapstructure:"login_window_hours"`
}

// SeedConfig describes the default superadmin created on first start when no
// superadmin account exists yet.
type SeedConfig struct {
	AdminStudentID string `mapstructure:"admin_student_id"`
	AdminPassword  string `mapstructure:"admin_password"`
	AdminName      string `mapstructure:"admin_name"`
	AdminEmail     string `mapstructure:"admin_email"`
}
