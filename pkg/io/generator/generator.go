// Package generator defines the interface implemented by configuration text
// generators (systemd units, nginx sites, env files).
package generator

// Generator is implemented by specific configuration generators. The model
// type parameter allows each implementation to define its own input structure.
// Generators are pure: the same model always yields the same text.
type Generator[T any] interface {
	Generate(model T) (string, error)
}
