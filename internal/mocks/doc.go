// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized store mocks can be reused across test packages. Each
// mock exposes function fields for customizable behavior and falls
// back to a simple in-memory default when a field is nil.
package mocks
