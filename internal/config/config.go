package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Environment controls development-only features such as the API description.
	Environment            string `mapstructure:"environment"              validate:"required,oneof=development production"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// IsDevelopment reports whether the server runs in the development environment.
func (c ServerConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// CORSConfig contains the cross-origin policy for browser clients.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
}

// Environment names accepted in ServerConfig.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)
