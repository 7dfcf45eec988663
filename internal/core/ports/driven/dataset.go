package driven

import "github.com/codify-labs/codify-cli/internal/core/domain"

// DatasetReader imports tabular response data from a file. The first
// column holds unique identifiers, remaining columns hold response text.
type DatasetReader interface {
	// Supports reports whether this reader handles the file, by extension.
	Supports(path string) bool

	// Read parses the file into a dataset. Returns
	// domain.ErrImportFormat for unreadable or malformed files and
	// domain.ErrEncodingDetection when the character encoding cannot be
	// determined.
	Read(path string) (*domain.Dataset, error)
}

// DatasetExporter writes a project's dataset augmented with its category
// assignments to a delimited file.
type DatasetExporter interface {
	// Export writes the categorized dataset to path.
	Export(path string, project *domain.Project) error
}
