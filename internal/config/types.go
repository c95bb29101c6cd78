package config

// Config holds all configuration for the application.
type Config struct {
	DBName string
	Port   string
	Auth   AuthConfig
	Turso  TursoConfig
}

type AuthConfig struct {
	JWTSecret string
	// CommissionerHash is a bcrypt hash of the commissioner password.
	CommissionerHash string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
