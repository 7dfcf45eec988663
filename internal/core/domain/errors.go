package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateCategory indicates a category with that name already exists.
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrUnknownCategory indicates a reference to a category that does not
	// exist in the codeframe. Seen on assignment and on project load.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrReservedCategory indicates an attempt to create, rename or delete
	// the reserved Uncategorized bucket.
	ErrReservedCategory = errors.New("category name is reserved")

	// ErrInvalidCategoryName indicates a blank or otherwise unusable name.
	ErrInvalidCategoryName = errors.New("invalid category name")

	// ErrEmptyQuery indicates a fuzzy match was requested with a blank query.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrInvalidThreshold indicates a similarity threshold outside 0-100.
	ErrInvalidThreshold = errors.New("threshold out of range 0-100")

	// ErrNoDataset indicates an operation that needs imported data was
	// called on an empty project.
	ErrNoDataset = errors.New("project has no dataset")

	// Import errors.

	// ErrImportFormat indicates an unreadable or unsupported input file.
	ErrImportFormat = errors.New("unsupported or malformed input file")

	// ErrEncodingDetection indicates the character encoding of an input
	// file could not be determined.
	ErrEncodingDetection = errors.New("encoding detection failed")

	// ErrColumnMismatch indicates appended data whose columns do not line
	// up with the dataset already in the project.
	ErrColumnMismatch = errors.New("column count does not match current dataset")

	// Persistence errors.

	// ErrProjectValidation indicates a project file that failed structural
	// validation on load. The load is aborted and no state is replaced.
	ErrProjectValidation = errors.New("project file failed validation")

	// ErrModeConflict indicates a lossy categorization-mode switch that was
	// not explicitly forced.
	ErrModeConflict = errors.New("mode switch would discard assignments")
)
