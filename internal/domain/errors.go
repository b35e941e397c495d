package domain

// InvalidQueryError reports bad caller input. No network call is made once
// one of these is returned.
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return "invalid query: " + e.Reason
}

// UpstreamError reports an auth, not-found, or network failure from Reddit.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return "upstream " + e.Op + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// OutputWriteError reports a destination that could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return "writing " + e.Path + ": " + e.Err.Error()
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
