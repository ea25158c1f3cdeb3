// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshint/paperdesk/internal/catalog"
	"github.com/meshint/paperdesk/internal/validate"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Filter the catalog on structured criteria",
	Long: `Search combines optional criteria with AND: title and author
substrings (matched against the native and English fields), an inclusive
publication-year range, and a tag substring. Matching is case-insensitive.
With no criteria, search behaves like list.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	q, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.Filter(context.Background(), q)
	if err != nil {
		return coreErr(err)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return printPapers(papers, jsonOutput)
}

func filterFromFlags(cmd *cobra.Command) (catalog.FilterQuery, error) {
	title, _ := cmd.Flags().GetString("title")
	authors, _ := cmd.Flags().GetString("authors")
	tags, _ := cmd.Flags().GetString("tags")

	fromStr, _ := cmd.Flags().GetString("year-from")
	from, err := validate.ParseYearBound(fromStr)
	if err != nil {
		return catalog.FilterQuery{}, fmt.Errorf("--year-from: %w", err)
	}

	toStr, _ := cmd.Flags().GetString("year-to")
	to, err := validate.ParseYearBound(toStr)
	if err != nil {
		return catalog.FilterQuery{}, fmt.Errorf("--year-to: %w", err)
	}

	return catalog.FilterQuery{
		Title:    title,
		Authors:  authors,
		YearFrom: from,
		YearTo:   to,
		Tags:     tags,
	}, nil
}

func init() {
	searchCmd.Flags().String("title", "", "title substring (native or English)")
	searchCmd.Flags().String("authors", "", "author substring (native or English)")
	searchCmd.Flags().String("year-from", "", "earliest publication year, inclusive")
	searchCmd.Flags().String("year-to", "", "latest publication year, inclusive")
	searchCmd.Flags().String("tags", "", "tag substring")
	searchCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(searchCmd)
}
