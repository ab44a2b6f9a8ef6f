// Package notify renders user-facing progress, success, warning, and error
// messages with consistent symbols and colors.
package notify
