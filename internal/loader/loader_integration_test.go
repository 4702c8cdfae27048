package loader_test

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/movieapi/internal/loader"
	"github.com/vvka-141/movieapi/internal/logging"
	"github.com/vvka-141/movieapi/internal/movies"
	testhelpers "github.com/vvka-141/movieapi/internal/testing"
	"github.com/vvka-141/movieapi/pkg/movieapi"
)

const sample = `Poster_Link,Series_Title,Released_Year,Certificate,Runtime,Genre,IMDB_Rating,Overview,Meta_score,Director,Star1,Star2,Star3,Star4,No_of_Votes,Gross
https://x/1.jpg,The Shawshank Redemption,1994,A,142 min,Drama,9.3,Two imprisoned men bond.,80,Frank Darabont,Tim Robbins,Morgan Freeman,Bob Gunton,William Sadler,2343110,"28,341,469"
https://x/2.jpg,Apollo 13,PG,U,140 min,"Adventure, Drama",7.6,Houston.,77,Ron Howard,Tom Hanks,Bill Paxton,Kevin Bacon,Gary Sinise,269197,"173,837,933"
https://x/3.jpg,Heat,1995,,170 min,"Crime, Drama",8.3,A group of robbers.,,Michael Mann,Al Pacino,Robert De Niro,Val Kilmer,Jon Voight,577113,"67,436,818"
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imdb_top_1000.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func assertNoStagingFiles(t *testing.T, csvPath string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(csvPath), "movies_temp_*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestLoad(t *testing.T) {
	pool, _ := testhelpers.NewTestDB(t)
	ctx := context.Background()
	csvPath := writeCSV(t, sample)

	res, err := loader.New(pool, logging.NewNullLogger()).Load(ctx, csvPath)

	require.NoError(t, err)
	assert.Equal(t, loader.Result{Rows: 3}, res)
	assertNoStagingFiles(t, csvPath)

	all, err := movies.NewStore(pool).List(ctx, movies.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	byTitle := map[string]movies.Movie{}
	for _, m := range all {
		byTitle[m.SeriesTitle] = m
	}

	apollo := byTitle["Apollo 13"]
	require.NotNil(t, apollo.ReleasedYear)
	assert.Equal(t, 0, *apollo.ReleasedYear, "non-numeric year stored as 0")

	heat := byTitle["Heat"]
	require.NotNil(t, heat.MetaScore)
	assert.Equal(t, 0, *heat.MetaScore)
	assert.Equal(t, "67,436,818", *heat.Gross)
	assert.Equal(t, 8.3, *heat.IMDBRating)
	require.NotNil(t, heat.Certificate)
	assert.Equal(t, "NULL", *heat.Certificate, "empty text cell keeps the sentinel")
}

func TestLoad_EmptyCells(t *testing.T) {
	pool, _ := testhelpers.NewTestDB(t)
	ctx := context.Background()
	csvPath := writeCSV(t, `Poster_Link,Series_Title,Released_Year,Certificate,Runtime,Genre,IMDB_Rating,Overview,Meta_score,Director,Star1,Star2,Star3,Star4,No_of_Votes,Gross
p,,1999,,90 min,Drama,,o,,d,a,b,c,e,,
`)

	res, err := loader.New(pool, logging.NewNullLogger()).Load(ctx, csvPath)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Rows)

	all, err := movies.NewStore(pool).List(ctx, movies.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	m := all[0]

	assert.Equal(t, "NULL", m.SeriesTitle)
	require.NotNil(t, m.Certificate)
	assert.Equal(t, "NULL", *m.Certificate)
	require.NotNil(t, m.Gross)
	assert.Equal(t, "NULL", *m.Gross)
	assert.Nil(t, m.IMDBRating)
	assert.Nil(t, m.NoOfVotes)
	require.NotNil(t, m.MetaScore)
	assert.Equal(t, 0, *m.MetaScore)

	f, err := movies.ParseFilter(url.Values{"gross_gt": {"A"}})
	require.NoError(t, err)
	matched, err := movies.NewStore(pool).List(ctx, f)
	require.NoError(t, err)
	assert.Len(t, matched, 1, "sentinel text takes part in lexical comparisons")
}

func TestLoad_TwiceDuplicates(t *testing.T) {
	pool, _ := testhelpers.NewTestDB(t)
	ctx := context.Background()
	csvPath := writeCSV(t, sample)
	l := loader.New(pool, logging.NewNullLogger())

	_, err := l.Load(ctx, csvPath)
	require.NoError(t, err)
	_, err = l.Load(ctx, csvPath)
	require.NoError(t, err)

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM movies").Scan(&count))
	assert.Equal(t, 6, count)
}

func TestLoad_MissingFileSkipped(t *testing.T) {
	pool, _ := testhelpers.NewTestDB(t)

	res, err := loader.New(pool, logging.NewNullLogger()).Load(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))

	require.NoError(t, err)
	assert.True(t, res.Skipped)
}

func TestLoad_CopyFailureCommitsNothing(t *testing.T) {
	pool, _ := testhelpers.NewTestDB(t)
	ctx := context.Background()
	bad := sample + "https://x/4.jpg,Broken,2000,A,90 min,Drama,not-a-rating,o,50,d,a,b,c,e,10,\"1\"\n"
	csvPath := writeCSV(t, bad)

	_, err := loader.New(pool, logging.NewNullLogger()).Load(ctx, csvPath)

	require.Error(t, err)
	assert.ErrorIs(t, err, movieapi.ErrLoadFailed)
	assertNoStagingFiles(t, csvPath)

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM movies").Scan(&count))
	assert.Zero(t, count)
}

func TestLoad_MissingHeaderFails(t *testing.T) {
	pool, _ := testhelpers.NewTestDB(t)
	csvPath := writeCSV(t, "Series_Title\nHeat\n")

	_, err := loader.New(pool, logging.NewNullLogger()).Load(context.Background(), csvPath)

	assert.ErrorIs(t, err, movieapi.ErrLoadFailed)
	assertNoStagingFiles(t, csvPath)
}
