package movies

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int      { return &n }

func TestMovie_MarshalJSON_KeyOrderAndNulls(t *testing.T) {
	rating := 7.1
	m := Movie{ID: 42, SeriesTitle: "Test", IMDBRating: &rating}

	data, err := json.Marshal(m)

	require.NoError(t, err)
	assert.Equal(t,
		`{"id":42,"poster_link":null,"series_title":"Test","released_year":null,"certificate":null,`+
			`"runtime":null,"genre":null,"imdb_rating":7.1,"overview":null,"meta_score":null,"director":null,`+
			`"star1":null,"star2":null,"star3":null,"star4":null,"no_of_votes":null,"gross":null}`,
		string(data))
}

func TestMovie_MarshalJSON_InSlice(t *testing.T) {
	movies := []Movie{
		{ID: 1, SeriesTitle: "The Shawshank Redemption", ReleasedYear: intPtr(1994), Gross: strPtr("28,341,469")},
	}

	data, err := json.Marshal(movies)

	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.EqualValues(t, 1994, decoded[0]["released_year"])
	assert.Equal(t, "28,341,469", decoded[0]["gross"])
}

func TestMovie_FieldsMatchColumns(t *testing.T) {
	var m Movie
	fields := m.Fields()

	require.Len(t, fields, len(Columns)+1)
	assert.Equal(t, "id", fields[0].Name)
	for i, col := range Columns {
		assert.Equal(t, col, fields[i+1].Name)
	}
	assert.Len(t, m.scanTargets(), len(fields))
}
