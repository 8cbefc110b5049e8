package model

// Scope carries the authenticated caller identity through every layer.
// It is resolved once by the auth middleware and never re-derived downstream.
type Scope struct {
	UserID string
	Email  string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
