package enrich

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/avdata/registry-enrich/pkg/csvio"
	"github.com/avdata/registry-enrich/pkg/model"
	"github.com/avdata/registry-enrich/pkg/registry"
)

// LookupClient resolves one N-NUMBER to its registry fields.
type LookupClient interface {
	Lookup(ctx context.Context, nnumber string) (registry.Fields, error)
}

// Enricher drives the load, lookup, merge, write pipeline over one file.
// Rows are processed strictly one at a time, in file order.
type Enricher struct {
	client         LookupClient
	logger         *zap.Logger
	checkpointRows int
	resume         bool
}

// NewEnricher creates an enricher with default checkpoint and resume settings
func NewEnricher(client LookupClient, logger *zap.Logger) *Enricher {
	return &Enricher{
		client:         client,
		logger:         logger.Named("enrich"),
		checkpointRows: 20,
		resume:         true,
	}
}

// WithCheckpointRows sets how many rows are processed between intermediate
// writes. Zero disables checkpoints, leaving only the final write.
func (e *Enricher) WithCheckpointRows(rows int) *Enricher {
	e.checkpointRows = rows
	return e
}

// WithResume controls whether the run starts at the first unfetched row or
// re-fetches the whole file.
func (e *Enricher) WithResume(resume bool) *Enricher {
	e.resume = resume
	return e
}

// Run enriches every row of the file in place and reports a summary.
//
// Lookup failures are per-row: the row's registry columns stay empty and the
// run continues. Input and output failures abort the run. Cancelling the
// context stops the loop after the current row and still writes everything
// fetched so far; the summary comes back with Interrupted set.
func (e *Enricher) Run(ctx context.Context, path string) (*RunSummary, error) {
	table, err := csvio.Load(path)
	if err != nil {
		return nil, err
	}

	summary := NewRunSummary(path, table.RowCount())

	start := 0
	if e.resume {
		start = resumeIndex(table)
	}
	summary.SkippedRows = start

	for _, column := range registry.FieldColumns {
		table.AddColumn(column)
	}

	e.logger.Info("Starting enrichment run",
		zap.String("runID", summary.RunID),
		zap.String("file", path),
		zap.Int("totalRows", table.RowCount()),
		zap.Int("startRow", start),
		zap.Int("checkpointRows", e.checkpointRows),
		zap.Bool("resume", e.resume))

	sinceCheckpoint := 0
	for i := start; i < table.RowCount(); i++ {
		if err := e.enrichRow(ctx, table, i, summary); err != nil {
			summary.Interrupted = true
			e.logger.Warn("Run interrupted, writing rows fetched so far",
				zap.Int("row", i),
				zap.Error(err))
			break
		}

		sinceCheckpoint++
		if e.checkpointRows > 0 && sinceCheckpoint >= e.checkpointRows {
			if err := e.checkpoint(table, path, summary); err != nil {
				return nil, err
			}
			sinceCheckpoint = 0
		}
	}

	if err := csvio.Write(table, path); err != nil {
		return nil, err
	}

	summary.Complete()
	e.logger.Info("Enrichment run complete", summary.LogFields()...)

	return summary, nil
}

// enrichRow looks up one row and merges the result into it. Lookup failures
// are recorded on the summary and swallowed; the only error returned is the
// context's, so the caller knows to stop.
func (e *Enricher) enrichRow(ctx context.Context, table *model.Table, i int, summary *RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row := table.Rows[i]
	nnumber := strings.TrimSpace(row.NNumber())
	if nnumber == "" {
		summary.RecordFailed("")
		e.logger.Warn("Row has no N-NUMBER, leaving it unfilled", zap.Int("row", i))
		return nil
	}

	fields, err := e.client.Lookup(ctx, nnumber)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		summary.RecordFailed(nnumber)
		e.logger.Warn("Lookup failed, leaving row unfilled",
			zap.Int("row", i),
			zap.String("nNumber", nnumber),
			zap.Error(err))
		return nil
	}

	for _, column := range registry.FieldColumns {
		row.Set(column, fields[column])
	}
	summary.RecordFetched()
	e.logger.Info("Row enriched",
		zap.Int("row", i),
		zap.String("nNumber", nnumber),
		zap.String("status", fields[registry.FieldStatus]))

	return nil
}

// checkpoint writes the table back so progress survives a crash.
func (e *Enricher) checkpoint(table *model.Table, path string, summary *RunSummary) error {
	if err := csvio.Write(table, path); err != nil {
		return err
	}
	summary.Checkpoints++
	e.logger.Info("Checkpoint written",
		zap.Int("processedRows", summary.ProcessedRows),
		zap.Int("checkpoints", summary.Checkpoints))
	return nil
}

// resumeIndex returns the first row whose STATUS cell is still empty. A file
// that has never been enriched has no STATUS column, so it starts at zero; a
// fully enriched file resumes past its last row. Rows whose lookup failed on
// an earlier run read back as empty and are fetched again.
func resumeIndex(table *model.Table) int {
	if !table.HasColumn(registry.FieldStatus) {
		return 0
	}
	for i, row := range table.Rows {
		if strings.TrimSpace(row.Get(registry.FieldStatus)) == "" {
			return i
		}
	}
	return table.RowCount()
}
