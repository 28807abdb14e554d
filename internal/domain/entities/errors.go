package entities

import (
	"errors"
)

// Error kinds surfaced by a resorepo invocation. Adapters wrap the underlying cause
// so both the kind and the cause remain reachable through errors.Is / errors.As.
var (
	ErrMalformedReference    = errors.New("malformed repository reference")
	ErrEmptyPath             = errors.New("repository URL has no usable path segment")
	ErrCacheRootUnwritable   = errors.New("cache root is not writable")
	ErrConfigCorrupt         = errors.New("cache config is corrupt")
	ErrCloneFailed           = errors.New("clone failed")
	ErrBranchNotFound        = errors.New("branch or tag not found")
	ErrNoSearchArgs          = errors.New("at least one search argument is required")
	ErrSearchToolUnavailable = errors.New("search tool could not be started")
)

// Process exit codes for each fatal error kind (loosely following sysexits.h).
const (
	ExitSuccess               = 0
	ExitFailure               = 1
	ExitUsage                 = 64
	ExitNoSearchArgs          = ExitUsage
	ExitMalformedReference    = 65
	ExitEmptyPath             = 66
	ExitSearchToolUnavailable = 69
	ExitCacheRootUnwritable   = 73
	ExitCloneFailed           = 74
	ExitBranchNotFound        = 75
	ExitConfigCorrupt         = 78
)

//nolint:gochecknoglobals // lookup table
var exitCodes = []struct {
	kind error
	code int
}{
	{ErrNoSearchArgs, ExitNoSearchArgs},
	{ErrMalformedReference, ExitMalformedReference},
	{ErrEmptyPath, ExitEmptyPath},
	{ErrSearchToolUnavailable, ExitSearchToolUnavailable},
	{ErrCacheRootUnwritable, ExitCacheRootUnwritable},
	{ErrCloneFailed, ExitCloneFailed},
	{ErrBranchNotFound, ExitBranchNotFound},
	{ErrConfigCorrupt, ExitConfigCorrupt},
}

// ExitCode maps an error returned by an invocation to the process exit code.
// A nil error maps to ExitSuccess; errors of unknown kind map to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	for _, entry := range exitCodes {
		if errors.Is(err, entry.kind) {
			return entry.code
		}
	}
	return ExitFailure
}
