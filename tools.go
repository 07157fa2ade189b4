//go:build tools
// +build tools

package tools

// Development tools pinned in go.mod. None of them is linked into the binaries.
//
//	golangci-lint  lint
//	goose          settings schema migrations for postgres and sqlite
//	swag           regenerates docs/ from the handler annotations
//	mockery        service mocks for handler tests
//	benchstat      compares benchmarks/ runs

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
