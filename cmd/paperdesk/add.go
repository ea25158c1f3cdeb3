// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshint/paperdesk/internal/validate"
	"github.com/meshint/paperdesk/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a paper to the catalog",
	Long: `Add creates a new catalog record. Title, authors, and a publication
year between 1000 and 9999 are required; everything else is optional.

Body text can be supplied inline with --fulltext or read from a file with
--from-file, which also records the file path as provenance.`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	p, err := paperFromFlags(cmd, types.Paper{})
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Create(context.Background(), p)
	if err != nil {
		return coreErr(err)
	}

	fmt.Printf("Added paper %d: %s (%d)\n", id, p.Title, p.Year)
	return nil
}

// paperFromFlags overlays the field flags that were set onto base. The
// year flag is carried as a string so a missing or malformed value falls
// through to the year validation rule instead of a flag-parse error.
func paperFromFlags(cmd *cobra.Command, base types.Paper) (types.Paper, error) {
	p := base

	if cmd.Flags().Changed("title") {
		p.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("title-en") {
		p.TitleEN, _ = cmd.Flags().GetString("title-en")
	}
	if cmd.Flags().Changed("authors") {
		p.Authors, _ = cmd.Flags().GetString("authors")
	}
	if cmd.Flags().Changed("authors-en") {
		p.AuthorsEN, _ = cmd.Flags().GetString("authors-en")
	}
	if cmd.Flags().Changed("year") {
		yearStr, _ := cmd.Flags().GetString("year")
		if year, err := validate.ParseYear(yearStr); err == nil {
			p.Year = year
		} else {
			p.Year = 0
		}
	}
	if cmd.Flags().Changed("tags") {
		tagsStr, _ := cmd.Flags().GetString("tags")
		p.Tags = splitTags(tagsStr)
	}
	if cmd.Flags().Changed("summary") {
		p.Summary, _ = cmd.Flags().GetString("summary")
	}
	if cmd.Flags().Changed("fulltext") {
		p.Fulltext, _ = cmd.Flags().GetString("fulltext")
	}
	if cmd.Flags().Changed("from-file") {
		path, _ := cmd.Flags().GetString("from-file")
		data, err := os.ReadFile(path)
		if err != nil {
			return types.Paper{}, fmt.Errorf("reading body text from %s: %w", path, err)
		}
		p.Fulltext = string(data)
		p.OriginalFile = path
	}
	if cmd.Flags().Changed("file") {
		p.OriginalFile, _ = cmd.Flags().GetString("file")
	}

	return p, nil
}

// splitTags parses a comma-separated tag string into the structured form,
// trimming whitespace and dropping empty entries.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// registerPaperFlags adds the shared record-field flags used by add and
// edit.
func registerPaperFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "paper title (required)")
	cmd.Flags().String("title-en", "", "English title")
	cmd.Flags().String("authors", "", "comma-separated author list (required)")
	cmd.Flags().String("authors-en", "", "romanized or English author list")
	cmd.Flags().String("year", "", "publication year, 1000-9999 (required)")
	cmd.Flags().String("tags", "", "comma-separated tags")
	cmd.Flags().String("summary", "", "abstract or summary")
	cmd.Flags().String("fulltext", "", "full body text")
	cmd.Flags().String("from-file", "", "read body text from a file and record it as provenance")
	cmd.Flags().String("file", "", "provenance path of the source file")
}

func init() {
	registerPaperFlags(addCmd)
	rootCmd.AddCommand(addCmd)
}
