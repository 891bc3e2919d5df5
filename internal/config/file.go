package config

// File represents the contents of a configuration file.
// Empty fields leave the corresponding setting unchanged.
type File struct {
	// Input is the HTML document to scan.
	Input string `yaml:"input,omitempty" ini:"input"`

	// Output is the report destination; "-" writes to stdout.
	Output string `yaml:"output,omitempty" ini:"output"`

	// Format is the report format: text, json or markdown.
	Format string `yaml:"format,omitempty" ini:"format"`

	// Tokenize enables whole-document tokenizing.
	Tokenize bool `yaml:"tokenize,omitempty" ini:"tokenize"`
}

// Apply copies the values set in the file onto cfg.
func (f *File) Apply(cfg *Config) error {
	if f.Input != "" {
		cfg.InputPath = f.Input
	}
	if f.Output != "" {
		cfg.OutputPath = f.Output
	}
	if f.Format != "" {
		format, err := ParseFormat(f.Format)
		if err != nil {
			return err
		}
		cfg.SetFormat(format)
	}
	if f.Tokenize {
		cfg.Tokenize = true
	}
	return nil
}
