package enrich

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxFailedSamples caps how many failed N-NUMBERs a summary keeps for the
// final report. The full list is already in the log, one warning per row.
const maxFailedSamples = 5

// RunSummary represents the result of one enrichment run
type RunSummary struct {
	RunID          string    // Unique run identifier
	InputFile      string    // File read and written in place
	TotalRows      int       // Data rows in the file
	SkippedRows    int       // Rows already enriched before this run
	ProcessedRows  int       // Rows this run attempted
	FetchedRows    int       // Rows successfully enriched
	FailedRows     int       // Rows whose lookup failed
	Checkpoints    int       // Intermediate writes performed
	Interrupted    bool      // Run was cancelled before reaching the last row
	FailedNNumbers []string  // Sample of failed N-NUMBERs
	StartTime      time.Time // Run start timestamp
	EndTime        time.Time
	Duration       time.Duration
}

// NewRunSummary initializes a summary for a run over the given file
func NewRunSummary(path string, totalRows int) *RunSummary {
	return &RunSummary{
		RunID:          uuid.New().String(),
		InputFile:      path,
		TotalRows:      totalRows,
		StartTime:      time.Now(),
		FailedNNumbers: make([]string, 0, maxFailedSamples),
	}
}

// RecordFetched counts a successfully enriched row
func (s *RunSummary) RecordFetched() {
	s.ProcessedRows++
	s.FetchedRows++
}

// RecordFailed counts a failed lookup and keeps a sample of its N-NUMBER
func (s *RunSummary) RecordFailed(nnumber string) {
	s.ProcessedRows++
	s.FailedRows++
	if len(s.FailedNNumbers) < maxFailedSamples {
		s.FailedNNumbers = append(s.FailedNNumbers, nnumber)
	}
}

// Complete marks the run as finished and calculates duration
func (s *RunSummary) Complete() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

// RowsPerSecond returns the processing throughput
func (s *RunSummary) RowsPerSecond() float64 {
	seconds := s.Duration.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(s.ProcessedRows) / seconds
}

// LogFields renders the summary as structured log fields
func (s *RunSummary) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("runID", s.RunID),
		zap.String("file", s.InputFile),
		zap.Int("totalRows", s.TotalRows),
		zap.Int("skippedRows", s.SkippedRows),
		zap.Int("processedRows", s.ProcessedRows),
		zap.Int("fetchedRows", s.FetchedRows),
		zap.Int("failedRows", s.FailedRows),
		zap.Int("checkpoints", s.Checkpoints),
		zap.Bool("interrupted", s.Interrupted),
		zap.Strings("failedSample", s.FailedNNumbers),
		zap.Duration("duration", s.Duration),
		zap.Float64("rowsPerSecond", s.RowsPerSecond()),
	}
}
