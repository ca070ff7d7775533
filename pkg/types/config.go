package types

// NormalizeConfig holds the settings for one normalization run.
type NormalizeConfig struct {
	// InputPath is the tracker export CSV to read.
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is where the normalized CSV is written. Parent directories
	// are created as needed.
	OutputPath string `json:"output" yaml:"output"`

	// Source is stamped into every record's source field.
	Source string `json:"source" yaml:"source"`
}
