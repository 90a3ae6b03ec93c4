// Package constants provides shared constants used throughout the apidrift
// codebase. Values that tune a single component's behavior (such as the
// conflict detector's similarity threshold) live with that component; only
// genuinely cross-cutting values belong here.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxConcurrentExtractions caps how many documentation pages are
	// extracted in parallel by the pipeline.
	MaxConcurrentExtractions = 8

	// MaxDescriptionLength is the maximum length carried into merged
	// descriptions; longer docstrings are truncated for display.
	MaxDescriptionLength = 4096
)
