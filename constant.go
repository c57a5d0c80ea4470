package logsink

// Export
const (
	// Header row of the delimited text export. The column order is part of
	// the format and consumed by external tooling; do not reorder.
	exportHeader = "Timestamp,Message,Type,Source,CallStack,ElapsedTime"

	// Pattern for the temporary file an export is staged in before rename
	exportTempPattern = ".logsink-export-*"
)

// Buffer
const (
	// Initial capacity of a fresh buffer's backing slice
	initialBufferCapacity = 64
)

// Fixed entry message emitted when EndOperation finds no pending start.
// The wording is part of the observable contract; consumers match on it.
const operationNotFoundMessage = "Failed to find start time for operation."
