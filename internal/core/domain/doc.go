// Package domain contains the core business entities for Parley.
// It has no dependencies on infrastructure or frameworks.
package domain
