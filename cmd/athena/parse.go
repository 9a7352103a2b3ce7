package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"athena/internal/diagfmt"
	"athena/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file" + driver.SourceExt,
	Short: "Parse an athena source file",
	Long:  `Parse builds the syntax tree for an athena source file and reports syntax diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, useColor, err := effectiveOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	result.Bag.Sort()
	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: useColor, Context: 2})
	case "json":
		if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fmt.Fprintf(os.Stdout, "parsed %d declarations\n", len(result.Module.Declarations))
	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}
