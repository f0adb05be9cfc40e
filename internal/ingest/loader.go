// Package ingest loads sale records from JSON documents and renders
// category totals for the command line.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"sales-analytics/internal/dto"
	"sales-analytics/internal/models"

	"golang.org/x/sync/errgroup"
)

// StdinName is the path that reads records from standard input
const StdinName = "-"

const maxConcurrentReads = 8

var (
	ErrNoRecordsDocument = errors.New("document is neither a record array nor an object with records")
	ErrStdinRepeated     = errors.New("standard input can only be read once")
)

// Batch is the concatenation of every loaded document, in argument order
type Batch struct {
	Records []models.SaleRecord
	sources []source
}

type source struct {
	path   string
	offset int
	count  int
}

// Locate maps a batch index back to the file it came from and its index there
func (b *Batch) Locate(index int) (string, int, bool) {
	for _, src := range b.sources {
		if index >= src.offset && index < src.offset+src.count {
			return src.path, index - src.offset, true
		}
	}
	return "", 0, false
}

// Loader reads record documents concurrently
type Loader struct {
	stdin    io.Reader
	readFile func(string) ([]byte, error)
}

// NewLoader returns a loader reading "-" from stdin and other paths from disk
func NewLoader(stdin io.Reader) *Loader {
	return &Loader{stdin: stdin, readFile: os.ReadFile}
}

// Load reads every path concurrently and concatenates the records in the
// order the paths were given. The first failure cancels the remaining reads.
func (l *Loader) Load(ctx context.Context, paths []string) (*Batch, error) {
	if len(paths) == 0 {
		paths = []string{StdinName}
	}

	// stdin is consumed before the fan-out so no goroutine shares the reader
	var stdinRaw []byte
	stdinSeen := false
	for _, path := range paths {
		if path != StdinName {
			continue
		}
		if stdinSeen {
			return nil, ErrStdinRepeated
		}
		stdinSeen = true
	}
	if stdinSeen {
		raw, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", StdinName, err)
		}
		stdinRaw = raw
	}

	loaded := make([][]models.SaleRecord, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			raw := stdinRaw
			if path != StdinName {
				var err error
				if raw, err = l.readFile(path); err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
			}

			records, err := Decode(raw)
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", path, err)
			}

			loaded[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &Batch{Records: []models.SaleRecord{}}
	for i, records := range loaded {
		batch.sources = append(batch.sources, source{path: paths[i], offset: len(batch.Records), count: len(records)})
		batch.Records = append(batch.Records, records...)
	}

	return batch, nil
}

// Decode parses either a JSON array of records or an object of the form
// {"records": [...]}. Absent or null price and quantity stay missing.
func Decode(raw []byte) ([]models.SaleRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []models.SaleRecord{}, nil
	}

	var requests []dto.SaleRecordRequest
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &requests); err != nil {
			return nil, err
		}
	case '{':
		var doc dto.CreateSalesRequest
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, err
		}
		requests = doc.Records
	default:
		return nil, ErrNoRecordsDocument
	}

	return dto.CreateSalesRequest{Records: requests}.ToModels(), nil
}
