package question

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

// CSVSource fetches question pools from a published-spreadsheet CSV feed.
// Each category is one sheet tab exported as CSV; the first row is a
// header. Rows that fail validation are skipped with a log line rather
// than failing the whole pool, since a single bad row in the sheet must
// not take quizzes offline.
type CSVSource struct {
	client *http.Client
	urlFor func(category string) string
}

// NewCSVSource creates a source resolving category feed URLs via urlFor.
func NewCSVSource(urlFor func(category string) string) *CSVSource {
	return &CSVSource{
		client: &http.Client{Timeout: 15 * time.Second},
		urlFor: urlFor,
	}
}

// Header columns of the question feed, in order.
const (
	colID = iota
	colKind
	colPrompt
	colImageRef
	colImageW
	colImageH
	colTargetX
	colTargetY
	colRadius
	colOptionA
	colOptionB
	colOptionC
	colOptionD
	colCorrectKey
	colExplanation
	columnCount
)

func (s *CSVSource) FetchPool(ctx context.Context, category string) (Pool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.urlFor(category), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed returned %s", ErrFetchFailed, resp.Status)
	}

	return parsePool(resp.Body, category)
}

func parsePool(r io.Reader, category string) (Pool, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated per row below

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %v", ErrFetchFailed, err)
	}
	if len(rows) == 0 {
		return Pool{}, nil
	}

	pool := make(Pool, 0, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		q, err := parseRow(row, category)
		if err != nil {
			log.Printf("question feed %s: skipping row %d: %v", category, i+2, err)
			continue
		}
		pool = append(pool, q)
	}
	return pool, nil
}

func parseRow(row []string, category string) (Question, error) {
	if len(row) < columnCount {
		return Question{}, fmt.Errorf("%w: expected %d columns, got %d", ErrInvalidQuestion, columnCount, len(row))
	}

	q := Question{
		ID:       row[colID],
		Category: category,
		Kind:     Kind(row[colKind]),
		Prompt:   row[colPrompt],
	}

	switch q.Kind {
	case KindCoordinate:
		q.ImageRef = row[colImageRef]
		var err error
		if q.ImageW, err = parseFloat(row[colImageW]); err != nil {
			return Question{}, err
		}
		if q.ImageH, err = parseFloat(row[colImageH]); err != nil {
			return Question{}, err
		}
		if q.Target.X, err = parseFloat(row[colTargetX]); err != nil {
			return Question{}, err
		}
		if q.Target.Y, err = parseFloat(row[colTargetY]); err != nil {
			return Question{}, err
		}
		if q.Target.Radius, err = parseFloat(row[colRadius]); err != nil {
			return Question{}, err
		}
	case KindChoice:
		q.Options = [4]string{row[colOptionA], row[colOptionB], row[colOptionC], row[colOptionD]}
		q.CorrectKey = row[colCorrectKey]
		q.Explanation = row[colExplanation]
	}

	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrInvalidQuestion, s)
	}
	return v, nil
}
