// Package mock provides function-field mock implementations of the core
// service interfaces for use in tests.
package mock
