package tui

import "time"

// MsgInitSteps seeds the step list from the emitted plan.
type MsgInitSteps struct {
	Steps []string
}

// MsgStepStart marks a planned step as running.
type MsgStepStart struct {
	SpanID    string
	ParentID  string
	Name      string
	StartTime time.Time
}

// MsgStepLog carries a chunk of output from a running step.
type MsgStepLog struct {
	SpanID string
	Data   []byte
}

// MsgStepComplete records the outcome of a step.
type MsgStepComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

// MsgTick drives the spinner animation.
type MsgTick time.Time
