package report

import "github.com/compose-network/filedemo/internal/outcome"

type (
	Model struct {
		RunID string `yaml:"run-id"`
		Steps []Step `yaml:"steps"`
	}

	Step struct {
		Name    string       `yaml:"step"`
		Kind    outcome.Kind `yaml:"kind"`
		Message string       `yaml:"message"`
	}
)

func New(runID string) *Model {
	return &Model{RunID: runID}
}

// Record appends the outcome of one step.
func (m *Model) Record(step string, result outcome.Result) {
	m.Steps = append(m.Steps, Step{Name: step, Kind: result.Kind, Message: result.Message})
}

// Failures counts the recorded steps that did not succeed.
func (m *Model) Failures() int {
	n := 0
	for _, s := range m.Steps {
		if s.Kind != outcome.OK {
			n++
		}
	}
	return n
}
