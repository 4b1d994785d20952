package outcome

import "fmt"

// Result is what every guarded operation and runner step hands back
// instead of an error: a success payload or one classified failure.
type Result struct {
	Kind    Kind
	Message string
	Err     error
}

// Success builds an OK result.
func Success(format string, args ...any) Result {
	return Result{Kind: OK, Message: fmt.Sprintf(format, args...)}
}

// Failure classifies err and attaches a human readable message.
func Failure(err error, format string, args ...any) Result {
	kind := Classify(err)
	if kind == OK {
		kind = Unclassified
	}
	return Result{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Unexpected records err as unclassified whatever its cause. Steps use it
// on their catch-all branch so the kind matches the generic message.
func Unexpected(err error, format string, args ...any) Result {
	return Result{Kind: Unclassified, Message: fmt.Sprintf(format, args...), Err: err}
}

func (r Result) Failed() bool {
	return r.Kind != OK
}

func (r Result) String() string {
	return r.Message
}
