//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (go.mod tool directive; cmd/migrate embeds the same provider API)
// - github.com/matryer/moq (mocks_test.go files)
