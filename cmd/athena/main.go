package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"athena/internal/project"
	"athena/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "athena",
	Short: "Athena language front end",
	Long:  `Athena is the front end of the athena language compiler: lexer, parser, and resolver with diagnostic tools`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// effectiveOptions merges the manifest (if any) with CLI flags; flags win.
func effectiveOptions(cmd *cobra.Command) (maxDiagnostics int, useColor bool, err error) {
	manifest, _, _, err := project.Find(".")
	if err != nil {
		return 0, false, err
	}

	maxDiagnostics = manifest.Compiler.MaxDiagnostics
	if v, ferr := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); ferr == nil && v > 0 {
		maxDiagnostics = v
	}

	colorMode := manifest.Compiler.Color
	if v, ferr := cmd.Root().PersistentFlags().GetString("color"); ferr == nil && v != "" {
		colorMode = v
	}
	useColor = colorMode == "on" || (colorMode == "auto" && isTerminal(os.Stderr))
	return maxDiagnostics, useColor, nil
}
