// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int32
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  math.MaxInt32,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  math.MinInt32,
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  1073741823, // 2147483647 * 0.5 = 1073741823.5, truncated
		},
		{
			name:  "half negative",
			input: -0.5,
			want:  -1073741824,
		},
		{
			name:  "quarter positive",
			input: 0.25,
			want:  536870911,
		},
		{
			name:  "quarter negative",
			input: -0.25,
			want:  -536870912,
		},
		{
			name:  "tiny positive rounds down to zero",
			input: 1e-10,
			want:  0,
		},
		{
			name:  "tiny negative rounds down to minus one",
			input: -1e-10,
			want:  -1,
		},
		{
			name:  "negative fraction rounds down",
			input: -3e-9,
			want:  -7, // -6.44 scaled
		},
		{
			name:  "clamp over max",
			input: 1.5,
			want:  math.MaxInt32,
		},
		{
			name:  "clamp under min",
			input: -1.5,
			want:  math.MinInt32,
		},
		{
			name:  "positive infinity",
			input: float32(math.Inf(1)),
			want:  math.MaxInt32,
		},
		{
			name:  "negative infinity",
			input: float32(math.Inf(-1)),
			want:  math.MinInt32,
		},
		{
			name:  "nan is silence",
			input: float32(math.NaN()),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt32(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt32(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt32Monotonic tests that function is monotonic
func TestFloat32ToInt32Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt32(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt32(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt32 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

// BenchmarkFloat32ToInt32Realistic simulates converting a decoded float buffer
func BenchmarkFloat32ToInt32Realistic(b *testing.B) {
	// 1 second of mono audio at 48kHz
	floatSamples := make([]float32, 48000)
	intSamples := make([]int32, 48000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range floatSamples {
			intSamples[j] = Float32ToInt32(floatSamples[j])
		}
	}
}

// TestFloat32ToInt32_ZeroAllocs verifies no heap allocations
func TestFloat32ToInt32_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt32(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt32 allocated %v times, want 0", allocs)
	}
}
