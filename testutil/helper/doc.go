// Package helper provides test doubles and fixtures shared by the package tests:
// spies for slog records and metrics calls, a controllable clock and valid person identifiers.
package helper
