package driver

import (
	"athena/internal/diag"
	"athena/internal/resolver"
	"athena/internal/types"
)

// CheckResult is the outcome of resolving one file.
type CheckResult struct {
	*ParseResult
	Table    *types.Table
	Resolved resolver.Result
}

// Check parses and resolves one file.
func Check(path string, maxDiagnostics int) (*CheckResult, error) {
	pr, err := Parse(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return checkParsed(pr), nil
}

// CheckVirtual resolves an in-memory buffer.
func CheckVirtual(name string, content []byte, maxDiagnostics int) *CheckResult {
	return checkParsed(ParseVirtual(name, content, maxDiagnostics))
}

func checkParsed(pr *ParseResult) *CheckResult {
	table := types.NewTable(pr.Interner)
	r := resolver.New(pr.Module, pr.Builder, pr.Interner, table, diag.BagReporter{Bag: pr.Bag})
	resolved := r.Resolve()

	return &CheckResult{
		ParseResult: pr,
		Table:       table,
		Resolved:    resolved,
	}
}
