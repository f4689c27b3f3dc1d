package stitch

// Default paths used when no flags are given.
const (
	DefaultSourceDir = "./src"
	DefaultOutput    = "./src.txt"
)

// Delimiter is the literal marker line separating an entry's path header
// from its content and one entry block from the next.
const Delimiter = "---"

// Arguments holds the configuration options for one stitch run.
type Arguments struct {
	SourceDir string // Directory whose direct children are stitched together.
	Output    string // Destination path for the stitched document.
}
