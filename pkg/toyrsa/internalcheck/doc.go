// Package internalcheck provides internal validation and testing utilities.
//
// This package contains source-policy tests for the toyrsa library. It is
// not intended for external use and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the toyrsa library. Use the public API
// provided by pkg/toyrsa and its subpackages instead.
package internalcheck
