package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"athena/internal/diagfmt"
	"athena/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path",
	Short: "Parse and resolve athena sources",
	Long: `Check runs the whole front end: layout lexing, parsing, and name/type
resolution. Given a directory it checks every source file concurrently,
each as its own translation unit. Results are cached under ` + driver.CacheDirName + `
keyed by content hash.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "number of concurrent files (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "skip the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, useColor, err := effectiveOptions(cmd)
	if err != nil {
		return err
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}

	var results []driver.DirResult
	if info.IsDir() {
		results, err = driver.CheckDir(context.Background(), args[0], maxDiagnostics, jobs)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
	} else {
		res, err := driver.Check(args[0], maxDiagnostics)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		results = []driver.DirResult{{Path: args[0], Check: res}}
	}

	var cache *driver.DiskCache
	if !noCache {
		if c, err := driver.NewDiskCache("."); err == nil {
			cache = c
		}
	}

	failed := false
	for _, r := range results {
		r.Check.Bag.Sort()
		diagfmt.Pretty(os.Stderr, r.Check.Bag, r.Check.FileSet, diagfmt.PrettyOpts{Color: useColor, Context: 2})
		if r.Check.Bag.HasErrors() {
			failed = true
		}
		fmt.Fprintf(os.Stdout, "%s: %d declarations, %d functions, %d diagnostics\n",
			r.Path,
			len(r.Check.Module.Declarations),
			len(r.Check.Resolved.Functions),
			r.Check.Bag.Len())

		if cache != nil {
			if err := cache.Store(r.Check.File.Hash, driver.Summarize(r.Check)); err != nil {
				fmt.Fprintf(os.Stderr, "warning: cache write failed: %v\n", err)
			}
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
