package qgrover

import (
	"math"
	"math/cmplx"
)

type Complex = complex128

// StateVector holds the full complex amplitude vector of a register of
// NumQubits qubits. Basis index bit 1<<q is qubit q.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector returns a state with every qubit at |0⟩.
func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// ApplyMatrix left-multiplies the k-qubit unitary m onto the target qubits
// of every amplitude block whose control qubits match pattern. Matrix index
// bit b corresponds to targets[b], targets[0] least significant. Bit b of
// pattern is the required value of controls[b]; blocks that do not match
// are left untouched. Blocks are disjoint, so each index is read and
// written exactly once per call.
func (s *StateVector) ApplyMatrix(m Matrix, targets, controls []int, pattern int) {
	k := len(targets)
	dim := 1 << k

	targetMask := 0
	for _, q := range targets {
		targetMask |= 1 << q
	}
	controlMask := 0
	patternBits := 0
	for b, q := range controls {
		controlMask |= 1 << q
		if pattern>>b&1 == 1 {
			patternBits |= 1 << q
		}
	}

	// Offset of matrix index j within a block.
	offsets := make([]int, dim)
	for j := 0; j < dim; j++ {
		for b := 0; b < k; b++ {
			if j>>b&1 == 1 {
				offsets[j] |= 1 << targets[b]
			}
		}
	}

	block := make([]Complex, dim)
	for i := range s.Amplitudes {
		if i&targetMask != 0 {
			continue // not a block base index
		}
		if i&controlMask != patternBits {
			continue
		}
		for j := 0; j < dim; j++ {
			block[j] = s.Amplitudes[i|offsets[j]]
		}
		for j := 0; j < dim; j++ {
			var sum Complex
			row := m[j]
			for l := 0; l < dim; l++ {
				sum += row[l] * block[l]
			}
			s.Amplitudes[i|offsets[j]] = sum
		}
	}
}

// ApplyDiagonal multiplies each amplitude by the diagonal entry selected by
// the basis value of the target qubits, on branches where the control
// qubits match pattern.
func (s *StateVector) ApplyDiagonal(diag []Complex, targets, controls []int, pattern int) {
	controlMask := 0
	patternBits := 0
	for b, q := range controls {
		controlMask |= 1 << q
		if pattern>>b&1 == 1 {
			patternBits |= 1 << q
		}
	}

	for i := range s.Amplitudes {
		if i&controlMask != patternBits {
			continue
		}
		x := 0
		for b, q := range targets {
			x |= (i >> q & 1) << b
		}
		s.Amplitudes[i] *= diag[x]
	}
}

// Probabilities returns the squared magnitude of every basis amplitude.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		probs[i] = real(amp * cmplx.Conj(amp))
	}
	return probs
}

// MainProbabilities marginalizes over everything above the low n qubits,
// returning the 2^n outcome probabilities of the main register.
func (s *StateVector) MainProbabilities(n int) []float64 {
	probs := make([]float64, 1<<n)
	mask := 1<<n - 1
	for i, amp := range s.Amplitudes {
		probs[i&mask] += real(amp * cmplx.Conj(amp))
	}
	return probs
}

// Norm returns the l2 norm of the amplitude vector, 1 for any state
// produced by unitary evolution.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for _, amp := range s.Amplitudes {
		total += real(amp * cmplx.Conj(amp))
	}
	return math.Sqrt(total)
}
