// Command crosscheck feeds every golden-case query under ast/testdata
// to the AfterShip ClickHouse parser, an independent reference
// grammar. A query the reference parser rejects usually means the
// golden corpus drifted away from real SQL.
//
// Run from the repository root:
//
//	go run ./cmd/crosscheck
package main

import (
	"fmt"
	"os"
	"path/filepath"

	aftership "github.com/AfterShip/clickhouse-sql-parser/parser"

	"github.com/emmanuel-ferdman/OpenMLDB/internal/sqlnorm"
)

func tryParse(query string) (parsed bool, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			parsed = false
		}
	}()
	p := aftership.NewParser(query)
	stmts, err := p.ParseStmts()
	return err == nil && len(stmts) > 0, false
}

func main() {
	testdataDir := "ast/testdata"

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var total, parsed, panicked int
	var failed []string

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		queryPath := filepath.Join(testdataDir, entry.Name(), "query.sql")
		queryBytes, err := os.ReadFile(queryPath)
		if err != nil {
			continue
		}
		query := sqlnorm.Clean(string(queryBytes))
		if query == "" {
			continue
		}

		total++
		ok, crashed := tryParse(query)
		switch {
		case crashed:
			panicked++
			failed = append(failed, fmt.Sprintf("[PANIC] %s", entry.Name()))
		case ok:
			parsed++
		default:
			failed = append(failed, entry.Name())
		}
	}

	fmt.Println("Cross-check: golden queries vs clickhouse-sql-parser")
	fmt.Printf("  total:    %d\n", total)
	fmt.Printf("  parsed:   %d\n", parsed)
	fmt.Printf("  rejected: %d\n", len(failed)-panicked)
	fmt.Printf("  crashed:  %d\n", panicked)

	if len(failed) > 0 {
		fmt.Println("\nFailing cases:")
		for _, name := range failed {
			fmt.Printf("  %s\n", name)
		}
		os.Exit(1)
	}
}
