package reports

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/gitassist/internal/domain/entities"
)

// JSONRenderer writes reports as indented JSON documents.
type JSONRenderer struct{}

// NewJSONRenderer creates the structured output renderer.
func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (it *JSONRenderer) RenderReview(w io.Writer, report *entities.ReviewReport) error {
	return encode(w, report)
}

func (it *JSONRenderer) RenderStatus(w io.Writer, report *entities.StatusReport) error {
	return encode(w, report)
}

func (it *JSONRenderer) RenderHistory(w io.Writer, report *entities.HistoryReport) error {
	return encode(w, report)
}

func (it *JSONRenderer) RenderBranch(w io.Writer, report *entities.BranchReport) error {
	return encode(w, report)
}

func (it *JSONRenderer) RenderSelfTest(w io.Writer, report *entities.SelfTestReport) error {
	return encode(w, report)
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
