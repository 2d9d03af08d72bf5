// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestClampUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "inside", input: 0.7, want: 0.7},
		{name: "zero", input: 0, want: 0},
		{name: "one", input: 1, want: 1},
		{name: "negative", input: -0.3, want: 0},
		{name: "above one", input: 1.5, want: 1},
		{name: "positive infinity", input: math.Inf(1), want: 1},
		{name: "negative infinity", input: math.Inf(-1), want: 0},
		{name: "NaN", input: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ClampUnit(tt.input); got != tt.want {
				t.Errorf("ClampUnit(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	if got := Clamp(5, -1, 1); got != 1 {
		t.Errorf("Clamp(5, -1, 1) = %v, want 1", got)
	}
	if got := Clamp(-5, -1, 1); got != -1 {
		t.Errorf("Clamp(-5, -1, 1) = %v, want -1", got)
	}
	if got := Clamp(0.25, -1, 1); got != 0.25 {
		t.Errorf("Clamp(0.25, -1, 1) = %v, want 0.25", got)
	}
}
