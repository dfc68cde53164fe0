package domain

import "time"

// BuildInfo represents the build information for a task.
type BuildInfo struct {
	TaskName   string     `json:"task_name,omitzero" yaml:"task_name"`
	Agent      BuildAgent `json:"build_agent,omitzero" yaml:"build_agent,omitempty"`
	InputHash  string     `json:"input_hash,omitzero" yaml:"input_hash,omitempty"`
	OutputHash string     `json:"output_hash,omitzero" yaml:"output_hash,omitempty"`
	Timestamp  time.Time  `json:"timestamp,omitzero" yaml:"timestamp,omitempty"`
}
