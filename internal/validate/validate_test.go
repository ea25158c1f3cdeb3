// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshint/paperdesk/pkg/types"
)

func TestFields(t *testing.T) {
	valid := types.Paper{Title: "深層学習による論文分類", Authors: "山田太郎, 佐藤花子", Year: 2020}

	tests := []struct {
		name    string
		mutate  func(p *types.Paper)
		wantMsg string
	}{
		{
			name:   "valid paper passes",
			mutate: func(p *types.Paper) {},
		},
		{
			name:    "empty title",
			mutate:  func(p *types.Paper) { p.Title = "" },
			wantMsg: "title required",
		},
		{
			name:    "whitespace-only title",
			mutate:  func(p *types.Paper) { p.Title = "   \t" },
			wantMsg: "title required",
		},
		{
			name:    "empty authors",
			mutate:  func(p *types.Paper) { p.Authors = "" },
			wantMsg: "authors required",
		},
		{
			name:    "missing year",
			mutate:  func(p *types.Paper) { p.Year = 0 },
			wantMsg: "year must be an integer between 1000 and 9999",
		},
		{
			name:    "year below range",
			mutate:  func(p *types.Paper) { p.Year = 999 },
			wantMsg: "year must be an integer between 1000 and 9999",
		},
		{
			name:    "year above range",
			mutate:  func(p *types.Paper) { p.Year = 10000 },
			wantMsg: "year must be an integer between 1000 and 9999",
		},
		{
			name:   "year at lower boundary",
			mutate: func(p *types.Paper) { p.Year = 1000 },
		},
		{
			name:   "year at upper boundary",
			mutate: func(p *types.Paper) { p.Year = 9999 },
		},
		{
			name: "title wins over bad year",
			mutate: func(p *types.Paper) {
				p.Title = ""
				p.Year = 999
			},
			wantMsg: "title required",
		},
		{
			name: "authors win over bad year",
			mutate: func(p *types.Paper) {
				p.Authors = " "
				p.Year = 0
			},
			wantMsg: "authors required",
		},
		{
			name: "optional fields may be empty",
			mutate: func(p *types.Paper) {
				p.TitleEN = ""
				p.AuthorsEN = ""
				p.Tags = nil
				p.Summary = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			err := Fields(p)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain year", input: "2020", want: 2020},
		{name: "trims whitespace", input: " 1999 ", want: 1999},
		{name: "lower boundary", input: "1000", want: 1000},
		{name: "upper boundary", input: "9999", want: 9999},
		{name: "not an integer", input: "20x0", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "below range", input: "999", wantErr: true},
		{name: "above range", input: "10000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseYear(tt.input)
			if tt.wantErr {
				var verr *Error
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "year must be an integer between 1000 and 9999", verr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYearBound(t *testing.T) {
	got, err := ParseYearBound("")
	require.NoError(t, err)
	assert.Zero(t, got, "empty bound is absent")

	got, err = ParseYearBound("2021")
	require.NoError(t, err)
	assert.Equal(t, 2021, got)

	_, err = ParseYearBound("abc")
	assert.Error(t, err)
}

func TestYearRange(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		to      int
		wantMsg string
	}{
		{name: "both absent", from: 0, to: 0},
		{name: "only from", from: 2000, to: 0},
		{name: "only to", from: 0, to: 2010},
		{name: "ordered bounds", from: 2000, to: 2010},
		{name: "equal bounds", from: 2020, to: 2020},
		{name: "inverted bounds", from: 2021, to: 2020, wantMsg: "start year must not exceed end year"},
		{name: "from out of range", from: 999, to: 2020, wantMsg: "year must be an integer between 1000 and 9999"},
		{name: "to out of range", from: 2000, to: 10000, wantMsg: "year must be an integer between 1000 and 9999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := YearRange(tt.from, tt.to)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
