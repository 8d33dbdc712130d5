// Package testutil provides deterministic draw sources for tests.
package testutil
