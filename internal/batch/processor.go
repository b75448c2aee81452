package batch

import (
	"context"
	"sync"

	"github.com/povarna/prompt-playground/internal/compare"
	"github.com/povarna/prompt-playground/internal/models"
	"github.com/rs/zerolog"
)

// OutputRecord pairs a batch input with its comparison result.
type OutputRecord struct {
	ID         string                  `json:"id"`
	Comparison models.ComparisonResult `json:"comparison"`
	Error      string                  `json:"error,omitempty"`
}

// Processor fans batch records out over a bounded worker pool. Each
// worker runs one comparison at a time; ordering of results is not
// preserved.
type Processor struct {
	runner  *compare.Runner
	workers int
	logger  *zerolog.Logger
}

func NewProcessor(runner *compare.Runner, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		runner:  runner,
		workers: workers,
		logger:  logger,
	}
}

func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan OutputRecord {
	in := make(chan InputRecord)
	out := make(chan OutputRecord)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range in {
				out <- p.process(ctx, record)
			}
		}()
	}

	go func() {
		defer close(in)
		for _, record := range records {
			select {
			case in <- record:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func (p *Processor) process(ctx context.Context, record InputRecord) OutputRecord {
	if record.Error != nil {
		return OutputRecord{ID: record.ID, Error: record.Error.Error()}
	}

	p.logger.Debug().
		Str("id", record.ID).
		Int("line", record.LineNumber).
		Msg("processing batch record")

	return OutputRecord{
		ID:         record.ID,
		Comparison: p.runner.Compare(ctx, record.Prompt, record.Techniques),
	}
}
