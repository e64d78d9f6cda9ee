// Package realtime drives live chunked acquisition of in-progress NEXRAD
// Level II volumes from the public unidata-nexrad-level2-chunks bucket: it
// discovers the currently active volume, downloads chunks as they land,
// predicts when the next one should arrive, and advances across volume
// boundaries.
package realtime

import "fmt"

// S3ListObjectsError wraps a failed LIST call against the object store.
type S3ListObjectsError struct {
	Prefix string
	Err    error
}

func (e *S3ListObjectsError) Error() string {
	return fmt.Sprintf("listing objects with prefix %q: %v", e.Prefix, e.Err)
}
func (e *S3ListObjectsError) Unwrap() error { return e.Err }

// S3GetObjectRequestError wraps a failed GET request (before any response
// was received) against the object store.
type S3GetObjectRequestError struct {
	Key string
	Err error
}

func (e *S3GetObjectRequestError) Error() string {
	return fmt.Sprintf("requesting object %q: %v", e.Key, e.Err)
}
func (e *S3GetObjectRequestError) Unwrap() error { return e.Err }

// S3GetObjectError wraps a failed read of a GET response body.
type S3GetObjectError struct {
	Key string
	Err error
}

func (e *S3GetObjectError) Error() string {
	return fmt.Sprintf("reading object %q: %v", e.Key, e.Err)
}
func (e *S3GetObjectError) Unwrap() error { return e.Err }

// S3ObjectNotFoundError reports a 404 from the object store. During chunk
// polling this is not treated as an error condition by the iterator — it is
// a signal to wait — but the client still surfaces it as a typed value so
// callers outside the iterator can distinguish it.
type S3ObjectNotFoundError struct {
	Key string
}

func (e *S3ObjectNotFoundError) Error() string {
	return fmt.Sprintf("object not found: %q", e.Key)
}

// S3StreamingError wraps a failure while streaming a GET response body.
type S3StreamingError struct {
	Key string
	Err error
}

func (e *S3StreamingError) Error() string {
	return fmt.Sprintf("streaming object %q: %v", e.Key, e.Err)
}
func (e *S3StreamingError) Unwrap() error { return e.Err }

// TruncatedListObjectsResponse reports a LIST call that returned a
// truncated result when the caller required completeness.
type TruncatedListObjectsResponse struct {
	Prefix string
}

func (e *TruncatedListObjectsResponse) Error() string {
	return fmt.Sprintf("LIST response for prefix %q was truncated", e.Prefix)
}

// UnrecognizedChunkFormat reports a chunk filename that does not match the
// `YYYYMMDD-HHMMSS-NNN-X` convention at all.
type UnrecognizedChunkFormat struct {
	Name string
}

func (e *UnrecognizedChunkFormat) Error() string {
	return fmt.Sprintf("unrecognized chunk name format: %q", e.Name)
}

// UnrecognizedChunkDateTime reports a chunk name whose date/time prefix
// could not be parsed.
type UnrecognizedChunkDateTime struct {
	Name string
	Err  error
}

func (e *UnrecognizedChunkDateTime) Error() string {
	return fmt.Sprintf("unrecognized chunk date/time in %q: %v", e.Name, e.Err)
}
func (e *UnrecognizedChunkDateTime) Unwrap() error { return e.Err }

// UnrecognizedChunkSequence reports a chunk name whose sequence field could
// not be parsed as a zero-padded integer.
type UnrecognizedChunkSequence struct {
	Name string
}

func (e *UnrecognizedChunkSequence) Error() string {
	return fmt.Sprintf("unrecognized chunk sequence in %q", e.Name)
}

// UnrecognizedChunkType reports a chunk name whose trailing type letter is
// not one of S, I, E.
type UnrecognizedChunkType struct {
	Name string
}

func (e *UnrecognizedChunkType) Error() string {
	return fmt.Sprintf("unrecognized chunk type in %q", e.Name)
}

// LatestVolumeNotFound reports that volume discovery could not find any
// populated volume for a site.
type LatestVolumeNotFound struct {
	Site string
}

func (e *LatestVolumeNotFound) Error() string {
	return fmt.Sprintf("no populated volume found for site %q", e.Site)
}

// ExpectedChunkNotFound reports that a chunk believed to exist (e.g. the
// Start chunk of a volume already producing later chunks) could not be
// retrieved.
type ExpectedChunkNotFound struct {
	Key string
}

func (e *ExpectedChunkNotFound) Error() string {
	return fmt.Sprintf("expected chunk not found: %q", e.Key)
}

// PollingAsyncError wraps a failure encountered while polling for a chunk
// or volume's availability (e.g. a context cancellation or deadline during
// crossBoundary's discovery loop), distinct from the per-attempt errors the
// retry policy already accounts for.
type PollingAsyncError struct {
	Err error
}

func (e *PollingAsyncError) Error() string { return fmt.Sprintf("polling error: %v", e.Err) }
func (e *PollingAsyncError) Unwrap() error { return e.Err }

// FailedToDetermineNextChunk reports that the iterator could not compute
// the next chunk identifier, e.g. because the successor volume was still
// unpopulated after the discovery retry budget ran out.
type FailedToDetermineNextChunk struct {
	Reason string
}

func (e *FailedToDetermineNextChunk) Error() string {
	return fmt.Sprintf("failed to determine next chunk: %s", e.Reason)
}

// InvalidSiteIdentifier reports a site string that is not a 4-letter ICAO
// identifier.
type InvalidSiteIdentifier struct {
	Site string
}

func (e *InvalidSiteIdentifier) Error() string {
	return fmt.Sprintf("invalid site identifier: %q", e.Site)
}

// DateTimeError wraps a failure parsing or formatting a wire date/time.
type DateTimeError struct {
	Err error
}

func (e *DateTimeError) Error() string { return fmt.Sprintf("date/time error: %v", e.Err) }
func (e *DateTimeError) Unwrap() error { return e.Err }
