package qgrover

import "math"

// mainRegister and ancillaRegister fix the qubit layout: the main register
// is the low n qubits, the ancilla sits above it.
func mainRegister(n int) []int {
	qubits := make([]int, n)
	for i := range qubits {
		qubits[i] = i
	}
	return qubits
}

func ancillaRegister(n, d int) []int {
	qubits := make([]int, d)
	for i := range qubits {
		qubits[i] = n + i
	}
	return qubits
}

// buildQPE composes the phase-estimation sub-circuit: Hadamards put the
// ancilla into uniform superposition, ancilla qubit j controls the 2^j-th
// power of the diagonal, and the inverse QFT turns the accumulated phase
// kickback into the d-bit integer round(θ(x)·2^d) on the ancilla.
func buildQPE(n, d int, diag []Complex) *Node {
	children := make([]*Node, 0, d+d+1)
	for j := 0; j < d; j++ {
		children = append(children, Hadamard(n+j))
	}
	main := mainRegister(n)
	for j := 0; j < d; j++ {
		children = append(children, ControlledDiagonal(DiagonalPower(diag, 1<<j), main, n+j))
	}
	children = append(children, InverseQFT(ancillaRegister(n, d)))
	return Seq("QPE", children...)
}

// buildMarking flips the sign of every branch whose ancilla value equals
// the target integer T: X gates map |T⟩ to |1...1⟩, a (d-1)-controlled
// phase of π flips that single branch, and the X gates are undone.
func buildMarking(n, d, target int) *Node {
	var children []*Node
	for j := 0; j < d; j++ {
		if target>>j&1 == 0 {
			children = append(children, PauliX(n+j))
		}
	}
	children = append(children, MultiControlledPhase(ancillaRegister(n, d), math.Pi))
	for j := 0; j < d; j++ {
		if target>>j&1 == 0 {
			children = append(children, PauliX(n+j))
		}
	}
	return Seq("Mark", children...)
}

// BuildOracle returns the phase-flip oracle over n main and d ancilla
// qubits: QPE, marking on the ancilla, then the structural inverse of the
// QPE. The uncomputation is an algebraic consequence of applying U then
// U⁻¹, so the ancilla ends at |0...0⟩ on every branch and the net effect
// on the main register is a sign flip exactly where θ(x) = t.
func BuildOracle(n, d int, diag []Complex, t float64) (*Node, error) {
	if err := validate(n, d, diag, t); err != nil {
		return nil, err
	}
	target := int(math.Round(t * float64(int(1)<<d)))
	qpe := buildQPE(n, d, diag)
	return Seq("Oracle", qpe, buildMarking(n, d, target), qpe.Inverse()), nil
}
