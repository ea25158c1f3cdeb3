// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshint/paperdesk/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cataloged papers",
	Long: `List prints every record, newest publication year first and titles in
ascending order within a year.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.List(context.Background())
	if err != nil {
		return coreErr(err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return printPapers(papers, jsonOutput)
}

func printPapers(papers []types.Paper, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}

	if len(papers) == 0 {
		fmt.Println("No papers found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-4s  %-45s  %-30s  %s\n",
		"ID", "Year", "Title", "Authors", "Tags")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, p := range papers {
		fmt.Fprintf(os.Stdout, "%-4d  %-4d  %-45s  %-30s  %s\n",
			p.ID, p.Year,
			truncate(p.Title, 45),
			truncate(p.Authors, 30),
			truncate(strings.Join(p.Tags, ", "), 30))
	}

	fmt.Fprintf(os.Stdout, "\n%d papers\n", len(papers))
	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func init() {
	listCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(listCmd)
}
