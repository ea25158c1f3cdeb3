// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Paper holds one cataloged paper entry: bibliographic fields, free-form
// tags, the abstract and body text, and provenance.
type Paper struct {
	// ID is assigned by the catalog on creation and never changes.
	ID int64 `json:"id" yaml:"id"`

	// Title is the paper title in its original language. Required.
	Title string `json:"title" yaml:"title"`

	// TitleEN is the English title, if the original is not English.
	TitleEN string `json:"title_en,omitempty" yaml:"title_en,omitempty"`

	// Authors lists the authors in source order, comma-separated by
	// convention. Required.
	Authors string `json:"authors" yaml:"authors"`

	// AuthorsEN is the romanized or English author list.
	AuthorsEN string `json:"authors_en,omitempty" yaml:"authors_en,omitempty"`

	// Year is the publication year, between 1000 and 9999 inclusive.
	Year int `json:"year" yaml:"year"`

	// Tags are free-form topic labels. Order is preserved; uniqueness is
	// not enforced.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Summary is the abstract or a free-form summary.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Fulltext is the full body text.
	Fulltext string `json:"fulltext,omitempty" yaml:"fulltext,omitempty"`

	// OriginalFile is the provenance path of the source file. Recorded as
	// given; existence is not checked at save time.
	OriginalFile string `json:"original_file,omitempty" yaml:"original_file,omitempty"`

	// CreatedAt is set once when the record is created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is set at creation and refreshed on every successful update.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}
