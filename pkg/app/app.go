// Package app defines the runtime contract shared by the cmd/* binaries
// (API server and batch worker).
package app

// Runner is a long-running process started from main.
type Runner interface {
	Run() error
}
