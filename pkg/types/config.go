package types

// LoadConfig holds settings for reading and normalizing the source CSV.
type LoadConfig struct {
	// CSVPath is the path or http(s) URL of the study database CSV.
	CSVPath string `json:"csv_path" yaml:"csv_path"`

	// Delimiter overrides field-delimiter detection when non-empty.
	// One of "," "\t" "|" ";". Empty means guess from the header line.
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
}

// QueryConfig holds settings for the query and stats commands.
type QueryConfig struct {
	// MaxResults caps table output. Zero means unlimited.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Load  LoadConfig  `json:"load" yaml:"load"`
	Query QueryConfig `json:"query" yaml:"query"`
}
