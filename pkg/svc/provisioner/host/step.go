package host

import "context"

// stepOutcome classifies how a completed step affects the rest of the run.
type stepOutcome int

const (
	// stepSucceeded means the step completed and the run continues.
	stepSucceeded stepOutcome = iota
	// stepSkipped means the step did not run; the run continues with a warning.
	stepSkipped
	// stepTolerated means the step failed but the run continues with a warning.
	stepTolerated
	// stepFailed means the step failed and the run must abort.
	stepFailed
)

// stepResult carries a step's outcome plus its warning message or error.
type stepResult struct {
	outcome stepOutcome
	message string
	err     error
}

// step pairs user-facing messages with the function executing the step.
type step struct {
	activity string
	success  string
	run      func(ctx context.Context) stepResult
}

func succeeded() stepResult {
	return stepResult{outcome: stepSucceeded}
}

func skipped(message string) stepResult {
	return stepResult{outcome: stepSkipped, message: message}
}

func tolerated(err error) stepResult {
	return stepResult{outcome: stepTolerated, err: err}
}

func failed(err error) stepResult {
	return stepResult{outcome: stepFailed, err: err}
}
