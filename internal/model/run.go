package model

// Run is the state of one extraction run as it moves through the pipeline.
type Run struct {
	// InputPath is the path of the HTML document being processed.
	InputPath string

	// Lines are the lines of the document, each with its line terminator.
	// Nil until the document has been loaded.
	Lines []string

	// Report accumulates the references found in the document.
	Report *Report

	// TagsMatched counts the tags of interest seen during scanning.
	TagsMatched int

	// PerformedSteps lists the names of the pipeline steps that ran.
	PerformedSteps []string
}

// NewRun creates a Run for the given input path with an empty Report.
func NewRun(inputPath string) *Run {
	return &Run{
		InputPath: inputPath,
		Report:    NewReport(),
	}
}
