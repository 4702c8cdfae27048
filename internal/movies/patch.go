package movies

import (
	"fmt"
	"strings"
)

// Patch is a create or partial-update payload. Absent fields are left
// untouched on update and stored as NULL on create.
type Patch struct {
	PosterLink   Optional[string]  `json:"poster_link"`
	SeriesTitle  Optional[string]  `json:"series_title"`
	ReleasedYear Optional[int]     `json:"released_year"`
	Certificate  Optional[string]  `json:"certificate"`
	Runtime      Optional[string]  `json:"runtime"`
	Genre        Optional[string]  `json:"genre"`
	IMDBRating   Optional[float64] `json:"imdb_rating"`
	Overview     Optional[string]  `json:"overview"`
	MetaScore    Optional[int]     `json:"meta_score"`
	Director     Optional[string]  `json:"director"`
	Star1        Optional[string]  `json:"star1"`
	Star2        Optional[string]  `json:"star2"`
	Star3        Optional[string]  `json:"star3"`
	Star4        Optional[string]  `json:"star4"`
	NoOfVotes    Optional[int]     `json:"no_of_votes"`
	Gross        Optional[string]  `json:"gross"`
}

type assignment struct {
	column string
	set    bool
	value  any
}

func (p *Patch) assignments() []assignment {
	return []assignment{
		{"poster_link", p.PosterLink.Set, p.PosterLink.arg()},
		{"series_title", p.SeriesTitle.Set, p.SeriesTitle.arg()},
		{"released_year", p.ReleasedYear.Set, p.ReleasedYear.arg()},
		{"certificate", p.Certificate.Set, p.Certificate.arg()},
		{"runtime", p.Runtime.Set, p.Runtime.arg()},
		{"genre", p.Genre.Set, p.Genre.arg()},
		{"imdb_rating", p.IMDBRating.Set, p.IMDBRating.arg()},
		{"overview", p.Overview.Set, p.Overview.arg()},
		{"meta_score", p.MetaScore.Set, p.MetaScore.arg()},
		{"director", p.Director.Set, p.Director.arg()},
		{"star1", p.Star1.Set, p.Star1.arg()},
		{"star2", p.Star2.Set, p.Star2.arg()},
		{"star3", p.Star3.Set, p.Star3.arg()},
		{"star4", p.Star4.Set, p.Star4.arg()},
		{"no_of_votes", p.NoOfVotes.Set, p.NoOfVotes.arg()},
		{"gross", p.Gross.Set, p.Gross.arg()},
	}
}

// IsEmpty reports whether no field is set.
func (p *Patch) IsEmpty() bool {
	for _, a := range p.assignments() {
		if a.set {
			return false
		}
	}
	return true
}

// ValidateCreate requires a non-empty series_title.
func (p *Patch) ValidateCreate() error {
	if !p.SeriesTitle.Set || p.SeriesTitle.Null {
		return fmt.Errorf("series_title is required: %w", ErrValidation)
	}
	return p.ValidateUpdate()
}

// ValidateUpdate rejects clearing series_title.
func (p *Patch) ValidateUpdate() error {
	if !p.SeriesTitle.Set {
		return nil
	}
	if p.SeriesTitle.Null || strings.TrimSpace(p.SeriesTitle.Value) == "" {
		return fmt.Errorf("series_title must not be empty: %w", ErrValidation)
	}
	return nil
}
