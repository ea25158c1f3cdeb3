// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes record lists to interchange formats. CSV carries
// the fixed column set the original cataloguing workflow expects; YAML and
// JSON carry the full record.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/meshint/paperdesk/pkg/types"
)

// csvHeader is the fixed CSV column set, in order. Fulltext and provenance
// are deliberately omitted; the CSV is a bibliography view.
var csvHeader = []string{
	"id", "title", "title_en", "authors", "authors_en", "year",
	"tags", "summary", "created_at", "updated_at",
}

// CSV writes one row per paper with the fixed column set. Tags are
// serialized as a comma-joined string.
func CSV(w io.Writer, papers []types.Paper) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, p := range papers {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Title,
			p.TitleEN,
			p.Authors,
			p.AuthorsEN,
			strconv.Itoa(p.Year),
			strings.Join(p.Tags, ", "),
			p.Summary,
			p.CreatedAt.Format(time.RFC3339),
			p.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for paper %d: %w", p.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// YAML writes the full record list as a YAML document.
func YAML(w io.Writer, papers []types.Paper) error {
	data, err := yaml.Marshal(papers)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// JSON writes the full record list as indented JSON.
func JSON(w io.Writer, papers []types.Paper) error {
	data, err := json.MarshalIndent(papers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
