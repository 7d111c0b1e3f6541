package ports

// SourceCollector expands command line paths into the source files to process.
//
//go:generate mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type SourceCollector interface {
	// Collect resolves files, directories and glob patterns to a sorted,
	// de-duplicated list of file paths. Directory entries whose base name
	// matches one of ignores are skipped.
	Collect(paths []string, ignores []string) ([]string, error)
}
