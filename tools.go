//go:build tools

// Package tools pins build tooling in go.mod.
package tools

import (
	_ "github.com/golang/mock/mockgen"
	_ "golang.org/x/tools/cmd/goimports"
)
