// Package cli provides common helpers for the piezo command-line tool.
//
// This package includes:
//   - Output formatting (YAML, JSON, table)
//   - Duration formatting for terminal display
//
// Example usage:
//
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatTable,
//	    File:   outputPath,
//	})
package cli
