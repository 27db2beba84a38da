package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ladle",
	Short: "ladle parses, scales and converts recipe ingredient lines",
	Long: "ladle is a recipe ingredient toolkit: it parses free-text ingredient lines\n" +
		"into quantity/unit/name, scales ingredient lists by a multiplier, and\n" +
		"converts between volume and weight using per-ingredient density.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readLines returns ingredient lines from args, or from stdin (one per
// line) when no args are given.
func readLines(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no ingredient lines given (pass as arguments or on stdin)")
	}
	return lines, nil
}
