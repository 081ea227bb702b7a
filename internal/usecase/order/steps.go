package order

// StepResult reports one post-commit side effect of a workflow operation.
// The primary write has already succeeded when these run; a failed step is
// reported, never rolled back.
type StepResult struct {
	Step string
	Err  error
}

func (s StepResult) Failed() bool {
	return s.Err != nil
}
