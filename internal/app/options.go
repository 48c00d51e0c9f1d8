package app

// Options carries the persistent command line settings into the
// orchestrator. Every command accepts the same set.
type Options struct {
	// OutputMode selects the renderer: "auto", "tui", "linear" or "ci".
	OutputMode string

	// ConfigPath is an explicit rpack.yaml location. Empty means the
	// default location inside the project root.
	ConfigPath string

	// Verbose adds environment resolution details to the output.
	Verbose bool
}
