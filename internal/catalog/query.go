// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"strings"

	"github.com/meshint/paperdesk/internal/validate"
	"github.com/meshint/paperdesk/pkg/types"
)

// FilterQuery holds the structured search criteria. All provided criteria
// combine with logical AND; zero values impose no constraint.
type FilterQuery struct {
	// Title is a case-insensitive substring matched against title and
	// title_en.
	Title string

	// Authors is a case-insensitive substring matched against authors and
	// authors_en.
	Authors string

	// YearFrom and YearTo bound the publication year, inclusive. Zero
	// means unbounded.
	YearFrom int
	YearTo   int

	// Tags is a case-insensitive substring matched against each tag.
	Tags string
}

// IsEmpty reports whether the query has no criteria.
func (q FilterQuery) IsEmpty() bool {
	return q.Title == "" && q.Authors == "" &&
		q.YearFrom == 0 && q.YearTo == 0 && q.Tags == ""
}

// Filter runs the structured search. With no criteria it returns the same
// set and order as List. Substring matching uses instr over lowered text
// rather than LIKE, so user input containing % or _ matches literally.
func (s *Store) Filter(ctx context.Context, q FilterQuery) ([]types.Paper, error) {
	if err := validate.YearRange(q.YearFrom, q.YearTo); err != nil {
		return nil, err
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT ` + paperColumns + ` FROM papers WHERE 1=1`)

	if q.Title != "" {
		qb.WriteString(` AND (instr(lower(title), lower(?)) > 0
			OR instr(lower(ifnull(title_en, '')), lower(?)) > 0)`)
		args = append(args, q.Title, q.Title)
	}

	if q.Authors != "" {
		qb.WriteString(` AND (instr(lower(authors), lower(?)) > 0
			OR instr(lower(ifnull(authors_en, '')), lower(?)) > 0)`)
		args = append(args, q.Authors, q.Authors)
	}

	if q.YearFrom != 0 {
		qb.WriteString(` AND year >= ?`)
		args = append(args, q.YearFrom)
	}

	if q.YearTo != 0 {
		qb.WriteString(` AND year <= ?`)
		args = append(args, q.YearTo)
	}

	if q.Tags != "" {
		qb.WriteString(` AND EXISTS (
			SELECT 1 FROM json_each(ifnull(papers.tags, '[]'))
			WHERE instr(lower(json_each.value), lower(?)) > 0)`)
		args = append(args, q.Tags)
	}

	qb.WriteString(orderClause)

	return s.queryPapers(ctx, qb.String(), args...)
}

// SearchText returns the papers whose summary or fulltext contains the
// keyword, ordered as List. It is the candidate prefilter for the keyword
// scan; per-field target selection and snippet extraction happen in the
// scan package.
func (s *Store) SearchText(ctx context.Context, keyword string) ([]types.Paper, error) {
	return s.queryPapers(ctx,
		`SELECT `+paperColumns+` FROM papers
		 WHERE instr(lower(ifnull(summary, '')), lower(?)) > 0
		    OR instr(lower(ifnull(fulltext, '')), lower(?)) > 0`+orderClause,
		keyword, keyword)
}
