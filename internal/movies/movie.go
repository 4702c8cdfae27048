package movies

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Columns is the fixed column order of the movies table, excluding id.
// The bulk loader writes staging rows in this order.
var Columns = []string{
	"poster_link",
	"series_title",
	"released_year",
	"certificate",
	"runtime",
	"genre",
	"imdb_rating",
	"overview",
	"meta_score",
	"director",
	"star1",
	"star2",
	"star3",
	"star4",
	"no_of_votes",
	"gross",
}

// Movie is one row of the movies table. Nil pointers are SQL NULL.
type Movie struct {
	ID           int64
	PosterLink   *string
	SeriesTitle  string
	ReleasedYear *int
	Certificate  *string
	Runtime      *string
	Genre        *string
	IMDBRating   *float64
	Overview     *string
	MetaScore    *int
	Director     *string
	Star1        *string
	Star2        *string
	Star3        *string
	Star4        *string
	NoOfVotes    *int
	Gross        *string
}

// Field is a named value in the record's JSON shape.
type Field struct {
	Name  string
	Value any
}

// Fields lists the record's values with id first, then Columns order.
func (m *Movie) Fields() []Field {
	return []Field{
		{"id", m.ID},
		{"poster_link", m.PosterLink},
		{"series_title", m.SeriesTitle},
		{"released_year", m.ReleasedYear},
		{"certificate", m.Certificate},
		{"runtime", m.Runtime},
		{"genre", m.Genre},
		{"imdb_rating", m.IMDBRating},
		{"overview", m.Overview},
		{"meta_score", m.MetaScore},
		{"director", m.Director},
		{"star1", m.Star1},
		{"star2", m.Star2},
		{"star3", m.Star3},
		{"star4", m.Star4},
		{"no_of_votes", m.NoOfVotes},
		{"gross", m.Gross},
	}
}

// scanTargets returns pointers matching "id" followed by Columns.
func (m *Movie) scanTargets() []any {
	return []any{
		&m.ID,
		&m.PosterLink,
		&m.SeriesTitle,
		&m.ReleasedYear,
		&m.Certificate,
		&m.Runtime,
		&m.Genre,
		&m.IMDBRating,
		&m.Overview,
		&m.MetaScore,
		&m.Director,
		&m.Star1,
		&m.Star2,
		&m.Star3,
		&m.Star4,
		&m.NoOfVotes,
		&m.Gross,
	}
}

// MarshalJSON writes the fields in Fields order.
func (m Movie) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
