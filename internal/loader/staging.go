package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// nullSentinel replaces empty text cells and is stored as literal text.
const nullSentinel = "NULL"

// sourceHeaders are the CSV headers in movies.Columns order.
var sourceHeaders = []string{
	"Poster_Link",
	"Series_Title",
	"Released_Year",
	"Certificate",
	"Runtime",
	"Genre",
	"IMDB_Rating",
	"Overview",
	"Meta_score",
	"Director",
	"Star1",
	"Star2",
	"Star3",
	"Star4",
	"No_of_Votes",
	"Gross",
}

// nullableNumericHeaders keep empty cells empty so COPY stores NULL; the
// sentinel is not a valid number.
var nullableNumericHeaders = map[string]bool{
	"IMDB_Rating": true,
	"No_of_Votes": true,
}

// integerHeaders are coerced to whole numbers, with 0 for anything unparsable.
var integerHeaders = map[string]bool{
	"Released_Year": true,
	"Meta_score":    true,
}

// stage writes a normalised, headerless copy of csvPath into a temporary
// file in the same directory. The caller owns closing and removing it.
func stage(csvPath string) (*os.File, int64, error) {
	src, err := os.Open(csvPath)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(csvPath), "movies_temp_*.csv")
	if err != nil {
		return nil, 0, fmt.Errorf("create staging file: %w", err)
	}

	rows, err := normalize(src, tmp)
	if err == nil {
		err = tmp.Sync()
	}
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, 0, err
	}
	return tmp, rows, nil
}

// normalize reads the source CSV from r and writes staging rows to w.
func normalize(r io.Reader, w io.Writer) (int64, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, errors.New("source file is empty")
		}
		return 0, fmt.Errorf("read header: %w", err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	out := make([]string, len(sourceHeaders))
	var rows int64
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("read row %d: %w", rows+1, err)
		}

		for i, name := range sourceHeaders {
			out[i] = normalizeCell(name, record[index[i]])
		}
		if err := writer.Write(out); err != nil {
			return rows, fmt.Errorf("write staging row: %w", err)
		}
		rows++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return rows, fmt.Errorf("write staging file: %w", err)
	}
	return rows, nil
}

// headerIndex maps sourceHeaders positions to positions in header.
// Headers are case-sensitive; extra columns are ignored.
func headerIndex(header []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		pos[h] = i
	}

	index := make([]int, len(sourceHeaders))
	var missing []string
	for i, name := range sourceHeaders {
		p, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		index[i] = p
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing CSV columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func normalizeCell(header, value string) string {
	if integerHeaders[header] {
		return coerceInt(value)
	}
	if value != "" {
		return value
	}
	if nullableNumericHeaders[header] {
		return ""
	}
	return nullSentinel
}

// coerceInt truncates a numeric cell toward zero. Empty, non-numeric and
// non-finite values become "0".
func coerceInt(value string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	return strconv.FormatInt(int64(math.Trunc(f)), 10)
}
