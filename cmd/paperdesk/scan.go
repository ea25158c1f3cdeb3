// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshint/paperdesk/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [keyword]",
	Short: "Keyword scan over summaries and body text",
	Long: `Scan runs a case-insensitive substring search over the summary and
fulltext fields and shows a snippet around the first match as evidence.
Use --no-summary or --no-fulltext to narrow the target fields; use
"show --highlight" on a result to see every occurrence marked.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	keyword := strings.Join(args, " ")

	noSummary, _ := cmd.Flags().GetBool("no-summary")
	noFulltext, _ := cmd.Flags().GetBool("no-fulltext")
	opts := scan.Options{Summary: !noSummary, Fulltext: !noFulltext}

	// Bad input never reaches the store.
	if err := scan.Check(keyword, opts); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.SearchText(context.Background(), keyword)
	if err != nil {
		return coreErr(err)
	}

	matches, err := scan.Search(keyword, opts, papers)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return printMatches(matches, keyword, jsonOutput)
}

func printMatches(matches []scan.Match, keyword string, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Printf("No matches for %q.\n", keyword)
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-4s  %-40s  %-20s  %s\n",
		"ID", "Year", "Title", "Authors", "Match")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for _, m := range matches {
		fmt.Fprintf(os.Stdout, "%-4d  %-4d  %-40s  %-20s  %s\n",
			m.Paper.ID, m.Paper.Year,
			truncate(m.Paper.Title, 40),
			truncate(m.Paper.Authors, 20),
			m.Evidence())
	}

	fmt.Fprintf(os.Stdout, "\n%d matches (keyword: %s)\n", len(matches), keyword)
	return nil
}

func init() {
	scanCmd.Flags().Bool("no-summary", false, "skip the summary field")
	scanCmd.Flags().Bool("no-fulltext", false, "skip the fulltext field")
	scanCmd.Flags().Bool("json", false, "output matches as JSON")

	rootCmd.AddCommand(scanCmd)
}
