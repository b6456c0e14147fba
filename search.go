// Package qgrover builds and simulates Grover search circuits that locate
// the eigenstate of a diagonal unitary whose eigenphase matches a target
// value, using a phase-estimation oracle over an ancilla register.
package qgrover

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Epsilon is the numerical tolerance for construction-time validation.
const Epsilon = 1e-9

// validate checks the search configuration per the construction contract:
// positive register sizes, a 2^n unit-modulus diagonal, and a target phase
// in [0,1) that d ancilla bits can represent exactly.
func validate(n, d int, diag []Complex, t float64) error {
	if n < 1 || d < 1 {
		return fmt.Errorf("%w: n=%d, d=%d", ErrInvalidConfiguration, n, d)
	}
	if len(diag) != 1<<n {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(diag), 1<<n)
	}
	for i, z := range diag {
		if math.Abs(cmplx.Abs(z)-1) > Epsilon {
			return fmt.Errorf("%w: entry %d has modulus %g", ErrInvalidDiagonal, i, cmplx.Abs(z))
		}
	}
	if t < 0 || t >= 1 {
		return fmt.Errorf("%w: t=%g outside [0,1)", ErrPhasePrecision, t)
	}
	scaled := t * float64(int(1)<<d)
	if math.Abs(scaled-math.Round(scaled)) > Epsilon {
		return fmt.Errorf("%w: t*2^d=%g", ErrPhasePrecision, scaled)
	}
	return nil
}

// NumIterations returns the Grover iteration count floor(π/4·√(2^n)) for
// a single marked state among 2^n.
func NumIterations(n int) int {
	return int(math.Floor(math.Pi / 4 * math.Sqrt(float64(int(1)<<n))))
}

// BuildSearchCircuit assembles the full search circuit over n+d qubits:
// Hadamards put the main register into uniform superposition (the ancilla
// starts at zero and the oracle restores it), then NumIterations(n) rounds
// of oracle followed by diffuser.
func BuildSearchCircuit(n, d int, diag []Complex, t float64) (*Node, error) {
	oracle, err := BuildOracle(n, d, diag, t)
	if err != nil {
		return nil, err
	}
	diffuser := BuildDiffuser(n)

	children := make([]*Node, 0, n+2*NumIterations(n))
	for _, q := range mainRegister(n) {
		children = append(children, Hadamard(q))
	}
	for i := 0; i < NumIterations(n); i++ {
		children = append(children, oracle, diffuser)
	}
	return Seq("GroverSearch", children...), nil
}

// Run builds the search circuit and simulates it from |0...0⟩, returning
// the final state for the caller to measure or inspect. No measurement
// happens here; the probability mass on main-register values x with
// θ(x) = t is amplified per the standard Grover bound.
func Run(n, d int, diag []Complex, t float64) (*StateVector, error) {
	circuit, err := BuildSearchCircuit(n, d, diag, t)
	if err != nil {
		return nil, err
	}
	state := NewStateVector(n + d)
	circuit.Apply(state)
	return state, nil
}
