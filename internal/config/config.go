package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"       validate:"required"`
	Notification NotificationConfig `mapstructure:"notification" validate:"required"`
}

// ServerConfig contains process-level settings.
type ServerConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// NotificationConfig contains settings for the user notification workflow.
type NotificationConfig struct {
	// MaxAttempts bounds the notification retry loop. Each delivery is tried
	// at most this many times before the operation fails.
	MaxAttempts int `mapstructure:"max_attempts" validate:"required,gt=0"`
}
