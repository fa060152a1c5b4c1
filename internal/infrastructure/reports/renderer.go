package reports

import (
	"io"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

const (
	FormatHuman = "human"
	FormatJSON  = "json"
)

// Renderer writes reports in one output format. Output must only depend on
// the report so that identical reports render byte-identical.
type Renderer interface {
	RenderReview(w io.Writer, report *entities.ReviewReport) error
	RenderStatus(w io.Writer, report *entities.StatusReport) error
	RenderHistory(w io.Writer, report *entities.HistoryReport) error
	RenderBranch(w io.Writer, report *entities.BranchReport) error
	RenderSelfTest(w io.Writer, report *entities.SelfTestReport) error
}
