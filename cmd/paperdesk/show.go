// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meshint/paperdesk/internal/scan"
	"github.com/meshint/paperdesk/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the full detail of one record",
	Long: `Show prints every field of a record. With --highlight, all keyword
occurrences in the summary and body text are marked and the per-field
match snippets are listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parsePaperID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := store.Get(context.Background(), id)
	if err != nil {
		return coreErr(err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	keyword, _ := cmd.Flags().GetString("highlight")
	printPaperDetail(p, keyword)
	return nil
}

// highlight markers for plain-text preview output.
const (
	markOpen  = ">>"
	markClose = "<<"
)

func printPaperDetail(p types.Paper, keyword string) {
	fmt.Printf("ID:            %d\n", p.ID)
	fmt.Printf("Title:         %s\n", p.Title)
	if p.TitleEN != "" {
		fmt.Printf("Title (EN):    %s\n", p.TitleEN)
	}
	fmt.Printf("Authors:       %s\n", p.Authors)
	if p.AuthorsEN != "" {
		fmt.Printf("Authors (EN):  %s\n", p.AuthorsEN)
	}
	fmt.Printf("Year:          %d\n", p.Year)
	if len(p.Tags) > 0 {
		fmt.Printf("Tags:          %s\n", strings.Join(p.Tags, ", "))
	}
	if p.OriginalFile != "" {
		fmt.Printf("Source file:   %s\n", p.OriginalFile)
	}
	fmt.Printf("Created:       %s\n", p.CreatedAt.Local().Format(time.DateTime))
	fmt.Printf("Updated:       %s\n", p.UpdatedAt.Local().Format(time.DateTime))

	summary, fulltext := p.Summary, p.Fulltext
	if keyword != "" {
		summary = scan.Annotate(summary, keyword, markOpen, markClose)
		fulltext = scan.Annotate(fulltext, keyword, markOpen, markClose)

		// The detail view shows the snippet for each matched field, not
		// just the representative one.
		matches, err := scan.Search(keyword, scan.Options{Summary: true, Fulltext: true},
			[]types.Paper{p})
		if err == nil && len(matches) == 1 {
			fmt.Println()
			for _, sn := range matches[0].Snippets {
				fmt.Printf("Match:         %s\n", sn)
			}
		}
	}

	if summary != "" {
		fmt.Printf("\nSummary:\n%s\n", summary)
	}
	if fulltext != "" {
		fmt.Printf("\nFulltext:\n%s\n", fulltext)
	}
}

func init() {
	showCmd.Flags().Bool("json", false, "output the record as JSON")
	showCmd.Flags().String("highlight", "", "mark all occurrences of a keyword in the text fields")

	rootCmd.AddCommand(showCmd)
}
