package action

import "context"

// Recorder is an Executor that records requests instead of running them.
// It stands in for ShellExecutor in tests and dry runs.
type Recorder struct {
	Requests []Request
	Err      error
}

// Execute records req and returns r.Err.
func (r *Recorder) Execute(ctx context.Context, req *Request) error {
	r.Requests = append(r.Requests, *req)
	return r.Err
}
