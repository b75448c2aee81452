package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// InputRecord is one line of the JSONL batch input: a prompt plus the
// techniques to compare it across.
type InputRecord struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Techniques []string `json:"techniques,omitempty"`

	LineNumber int   `json:"-"`
	Error      error `json:"-"`
}

// Reader parses JSONL comparison requests line by line.
type Reader struct {
	input  io.Reader
	logger *zerolog.Logger
}

func NewReader(input io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		input:  input,
		logger: logger,
	}
}

// ReadAll streams records on the returned channel. Blank lines are
// skipped; malformed lines produce a record with Error set so the caller
// can count and report them.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.input)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			var record InputRecord
			if err := json.Unmarshal([]byte(line), &record); err != nil {
				r.logger.Warn().Err(err).Int("line", lineNumber).Msg("skipping malformed input line")
				record = InputRecord{Error: fmt.Errorf("line %d: %w", lineNumber, err)}
			}
			record.LineNumber = lineNumber

			select {
			case out <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("failed to read batch input")
		}
	}()

	return out
}
