package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/meshint/paperdesk/pkg/types"
)

func samplePapers() []types.Paper {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return []types.Paper{
		{
			ID: 1, Title: "注意機構の研究", TitleEN: "On Attention",
			Authors: "山田太郎", AuthorsEN: "Yamada, T.",
			Year: 2021, Tags: []string{"attention", "transformers"},
			Summary: "A short summary.", Fulltext: "Body text.",
			CreatedAt: created, UpdatedAt: created.Add(time.Hour),
		},
		{
			ID: 2, Title: "Second Paper", Authors: "Suzuki",
			Year:      2019,
			CreatedAt: created, UpdatedAt: created,
		},
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, samplePapers()); err != nil {
		t.Fatalf("CSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(records))
	}

	wantHeader := []string{
		"id", "title", "title_en", "authors", "authors_en", "year",
		"tags", "summary", "created_at", "updated_at",
	}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	first := records[1]
	if first[0] != "1" || first[1] != "注意機構の研究" || first[5] != "2021" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[6] != "attention, transformers" {
		t.Errorf("tags column = %q, want comma-joined", first[6])
	}
	if first[8] != "2024-03-01T10:00:00Z" {
		t.Errorf("created_at column = %q", first[8])
	}

	second := records[2]
	if second[6] != "" {
		t.Errorf("empty tags column = %q, want empty", second[6])
	}
}

func TestCSVFulltextExcluded(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, samplePapers()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "Body text.") {
		t.Error("CSV export must not carry fulltext")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := YAML(&buf, samplePapers()); err != nil {
		t.Fatalf("YAML: %v", err)
	}

	var got []types.Paper
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshaling: %v", err)
	}
	if len(got) != 2 || got[0].Title != "注意機構の研究" || got[0].Fulltext != "Body text." {
		t.Errorf("unexpected YAML round-trip: %+v", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, samplePapers()); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var got []types.Paper
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshaling: %v", err)
	}
	if len(got) != 2 || got[1].Authors != "Suzuki" {
		t.Errorf("unexpected JSON round-trip: %+v", got)
	}
}
