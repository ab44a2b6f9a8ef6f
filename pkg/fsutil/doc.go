// Package fsutil provides filesystem helpers for writing generated files and
// expanding user-supplied paths.
package fsutil
