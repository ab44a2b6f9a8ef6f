// Package config defines the immutable run configuration and its
// flag/environment loader.
package config
