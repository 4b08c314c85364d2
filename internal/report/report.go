// Package report persists match evaluations as JSON or Excel workbooks.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/cv-tailor/internal/ingest"
	"github.com/spigell/cv-tailor/internal/keywords"
	"github.com/spigell/cv-tailor/internal/relevance"
)

// Report is one evaluated posting and CV pair.
type Report struct {
	ID        uuid.UUID               `json:"id"`
	CreatedAt time.Time               `json:"created_at"`
	JobSource string                  `json:"job_source"`
	CVSource  string                  `json:"cv_source"`
	Pool      keywords.Pool           `json:"pool"`
	Selected  []string                `json:"selected"`
	Result    relevance.Result        `json:"result"`
	Strength  relevance.Strength      `json:"strength"`
	Boost     int                     `json:"estimated_ats_boost"`
	Insights  relevance.InsightResult `json:"insights"`
}

// New builds a report for an evaluation.
func New(job, cv *ingest.Document, eval relevance.Evaluation) *Report {
	r := &Report{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Pool:      eval.Pool,
		Selected:  eval.Selected,
		Result:    eval.Result,
		Strength:  eval.Strength,
		Boost:     eval.Boost,
		Insights:  eval.Insights,
	}
	if job != nil {
		r.JobSource = job.Source
	}
	if cv != nil {
		r.CVSource = cv.Source
	}
	return r
}

// DumpToTmpFile writes the report as JSON into a new temporary file and
// returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "cv-tailor_*.json")
	if err != nil {
		return "", err
	}

	if err := writeJSON(file, r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ToFile writes the report as JSON to path, replacing its content.
func (r *Report) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	return writeJSON(file, r)
}

// writeJSON encodes r into w and closes it. A failed close is reported
// unless encoding already failed.
func writeJSON(w io.WriteCloser, r *Report) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report: %w", cerr)
		}
	}()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
