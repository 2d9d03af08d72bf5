// SPDX-License-Identifier: EPL-2.0

package main

import "github.com/ik5/sfx"

// failureReporter forwards reports and hands the first one to the
// command, so a sound that never starts fails the run.
type failureReporter struct {
	next   sfx.Reporter
	failed chan error
}

func newFailureReporter(next sfx.Reporter) *failureReporter {
	return &failureReporter{
		next:   next,
		failed: make(chan error, 1),
	}
}

func (r *failureReporter) Report(err error) {
	r.next.Report(err)

	select {
	case r.failed <- err:
	default:
	}
}
