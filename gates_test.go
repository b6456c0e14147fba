package qgrover

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"
)

func TestDiagonalPower(t *testing.T) {
	diag := []Complex{
		cmplx.Rect(1, 0.7),
		cmplx.Rect(1, -1.3),
		1,
		-1i,
	}

	squared := DiagonalPower(diag, 2)
	for i, z := range squared {
		require.InDelta(t, 1.0, cmplx.Abs(z), 1e-15, "entry %d drifted off the unit circle", i)
		want := diag[i] * diag[i]
		require.InDelta(t, 0, cmplx.Abs(z-want), 1e-12, "entry %d", i)
	}

	// Negative exponent gives the elementwise inverse.
	inv := DiagonalPower(diag, -1)
	for i, z := range inv {
		require.InDelta(t, 0, cmplx.Abs(z*diag[i]-1), 1e-12, "entry %d", i)
	}
}

func TestDiagonalPowerLargeExponent(t *testing.T) {
	// 2^10 repeated squarings stay exactly unit modulus.
	diag := []Complex{cmplx.Rect(1, 2*math.Pi/1024), cmplx.Rect(1, 0.1)}
	out := DiagonalPower(diag, 1024)
	for i, z := range out {
		require.InDelta(t, 1.0, cmplx.Abs(z), 1e-15, "entry %d", i)
	}
	require.InDelta(t, 0, cmplx.Abs(out[0]-1), 1e-9)
}

func TestMultiControlledPhase(t *testing.T) {
	s := NewStateVector(3)
	for q := 0; q < 3; q++ {
		s.ApplyMatrix(hadamardMatrix, []int{q}, nil, 0)
	}
	MultiControlledPhase([]int{0, 1, 2}, math.Pi).Apply(s)

	amp := complex(1/math.Sqrt(8), 0)
	for i := 0; i < 7; i++ {
		require.InDelta(t, 0, cmplx.Abs(s.Amplitudes[i]-amp), 1e-12, "basis %d", i)
	}
	require.InDelta(t, 0, cmplx.Abs(s.Amplitudes[7]+amp), 1e-12)
}

func TestGlobalPhase(t *testing.T) {
	s := NewStateVector(2)
	s.ApplyMatrix(hadamardMatrix, []int{0}, nil, 0)
	before := s.Clone()
	GlobalPhase(0, math.Pi/3).Apply(s)

	factor := cmplx.Rect(1, math.Pi/3)
	for i := range s.Amplitudes {
		require.InDelta(t, 0, cmplx.Abs(s.Amplitudes[i]-factor*before.Amplitudes[i]), 1e-12)
	}
}

// qftTestState returns a fixed normalized 8-amplitude state with nontrivial
// phases.
func qftTestState() []Complex {
	amps := make([]Complex, 8)
	norm := 0.0
	for i := range amps {
		amps[i] = cmplx.Rect(float64(i+1), 0.4*float64(i))
		norm += real(amps[i] * cmplx.Conj(amps[i]))
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range amps {
		amps[i] *= scale
	}
	return amps
}

func TestInverseQFTMatchesFFT(t *testing.T) {
	// The inverse QFT over the whole register must act on the amplitude
	// vector as the normalized DFT, with register value bit j on qubit j.
	amps := qftTestState()
	s := &StateVector{Amplitudes: append([]Complex(nil), amps...), NumQubits: 3}
	InverseQFT([]int{0, 1, 2}).Apply(s)

	fft := fourier.NewCmplxFFT(8)
	want := fft.Coefficients(nil, amps)
	scale := complex(1/math.Sqrt(8), 0)
	for i := range want {
		require.InDelta(t, 0, cmplx.Abs(s.Amplitudes[i]-scale*want[i]), 1e-9, "basis %d", i)
	}
}

func TestForwardQFTMatchesInverseFFT(t *testing.T) {
	// Inverting the node yields the forward transform, the normalized
	// unconjugated DFT.
	amps := qftTestState()
	s := &StateVector{Amplitudes: append([]Complex(nil), amps...), NumQubits: 3}
	InverseQFT([]int{0, 1, 2}).Inverse().Apply(s)

	fft := fourier.NewCmplxFFT(8)
	want := fft.Sequence(nil, amps)
	scale := complex(1/math.Sqrt(8), 0)
	for i := range want {
		require.InDelta(t, 0, cmplx.Abs(s.Amplitudes[i]-scale*want[i]), 1e-9, "basis %d", i)
	}
}

func TestInverseQFTRoundTrip(t *testing.T) {
	amps := qftTestState()
	s := &StateVector{Amplitudes: append([]Complex(nil), amps...), NumQubits: 3}
	iqft := InverseQFT([]int{0, 1, 2})
	iqft.Apply(s)
	iqft.Inverse().Apply(s)
	for i := range amps {
		require.InDelta(t, 0, cmplx.Abs(s.Amplitudes[i]-amps[i]), 1e-9, "basis %d", i)
	}
}
