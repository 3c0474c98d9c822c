package model

// Scope identifies who a unit of work is performed for.
type Scope struct {
	UserID   string
	Username string
	ChatID   int64
}

// Environment names accepted by config.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
