// Package cmd assembles the provision CLI command.
package cmd
