// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"slices"
	"sync"
)

// Recorder is an sfx.Reporter that keeps every report.
type Recorder struct {
	mu   sync.Mutex
	errs []error
}

func (r *Recorder) Report(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errs = append(r.errs, err)
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.errs)
}

// Count is the number of reports matching target with errors.Is.
func (r *Recorder) Count(target error) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, err := range r.errs {
		if errors.Is(err, target) {
			n++
		}
	}
	return n
}
