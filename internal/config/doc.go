// Package config defines the application configuration structure and
// loading logic. Configuration is read once at process startup from
// PAGEFORGE_-prefixed environment variables and passed explicitly into
// the components that need it; business logic never reads ambient state.
package config
