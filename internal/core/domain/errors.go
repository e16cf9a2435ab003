package domain

import "go.trai.ch/zerr"

var (
	// ErrLockReadFailed is returned when the lock file cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockParseFailed is returned when the lock file is not valid JSON or
	// is missing a required top-level field.
	ErrLockParseFailed = zerr.New("failed to parse lock file")

	// ErrUnsupportedLockVersion is returned when the lock file schema version
	// is not the supported one.
	ErrUnsupportedLockVersion = zerr.New("unsupported flake.lock version")

	// ErrUnknownSourceKind is returned when a locked source carries a type
	// tag outside the seven known kinds.
	ErrUnknownSourceKind = zerr.New("unknown locked source type")

	// ErrIncompleteSource is returned when a locked source is missing a field
	// its kind requires.
	ErrIncompleteSource = zerr.New("locked source is missing a required field")

	// ErrIgnoreReadFailed is returned when an ignore file exists but cannot
	// be read.
	ErrIgnoreReadFailed = zerr.New("failed to read ignore file")

	// ErrIgnoreParseFailed is returned when the ignore file is not valid YAML.
	ErrIgnoreParseFailed = zerr.New("failed to parse ignore file")

	// ErrDuplicatesFound signals that duplicate inputs were found and
	// reported. It marks the run outcome, not a failure of the linter itself.
	ErrDuplicatesFound = zerr.New("duplicate inputs found")
)
