package importer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nissyi-gh/todo/internal/model"
)

// YAMLTask represents a single task in the YAML input.
type YAMLTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	DueDate     string `yaml:"due_date,omitempty"`
	Difficulty  string `yaml:"difficulty,omitempty"`
	State       string `yaml:"state,omitempty"`
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// Adder is the part of a session the importer needs.
type Adder interface {
	Add(spec model.Spec) (model.Task, error)
}

// Import parses a YAML document and adds its tasks in order. It stops at the
// first task that fails; tasks added before it stay.
// Returns the number of tasks created.
func Import(s Adder, data []byte) (int, error) {
	var input YAMLInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return 0, fmt.Errorf("YAML parse error: %w", err)
	}

	if len(input.Tasks) == 0 {
		return 0, fmt.Errorf("no tasks found in YAML")
	}

	count := 0
	for i, yt := range input.Tasks {
		if _, err := s.Add(yt.spec()); err != nil {
			return count, fmt.Errorf("task %d (%q): %w", i+1, yt.Title, err)
		}
		count++
	}
	return count, nil
}

func (yt YAMLTask) spec() model.Spec {
	return model.Spec{
		Title:       yt.Title,
		Description: yt.Description,
		DueDate:     yt.DueDate,
		State:       yt.State,
		Difficulty:  yt.Difficulty,
	}
}
