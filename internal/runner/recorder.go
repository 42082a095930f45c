package runner

import (
	"context"
	"sync"
)

// Call is a recorded invocation
type Call struct {
	Program string
	Args    []string
}

// Recorder records every invocation instead of running it. It backs dry
// runs and tests.
type Recorder struct {
	mu    sync.Mutex
	calls []Call

	// Respond, when set, decides the result of each call
	Respond func(program string, args []string) (Result, error)
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Run(ctx context.Context, program string, args []string) (Result, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Program: program, Args: append([]string(nil), args...)})
	respond := r.Respond
	r.mu.Unlock()

	if respond != nil {
		return respond(program, args)
	}
	return Result{}, nil
}

// Calls returns the recorded invocations in order
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}
