package qgrover

import (
	"math"
	"math/cmplx"
)

var hadamardMatrix = Matrix{
	{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
	{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
}

var pauliXMatrix = Matrix{
	{0, 1},
	{1, 0},
}

// Hadamard returns the Hadamard gate on qubit q.
func Hadamard(q int) *Node {
	return &Node{Kind: KindGate, Name: "H", Matrix: hadamardMatrix, Targets: []int{q}}
}

// PauliX returns the bit-flip gate on qubit q.
func PauliX(q int) *Node {
	return &Node{Kind: KindGate, Name: "X", Matrix: pauliXMatrix, Targets: []int{q}}
}

// DiagonalPower raises every entry of a unit-modulus diagonal to an integer
// exponent. Working on the phase directly keeps the entries exactly on the
// unit circle, where repeated complex multiplication would drift.
func DiagonalPower(diag []Complex, power int) []Complex {
	out := make([]Complex, len(diag))
	for i, z := range diag {
		out[i] = cmplx.Rect(1, float64(power)*cmplx.Phase(z))
	}
	return out
}

// ControlledDiagonal applies the diagonal to the target qubits on branches
// where the control qubit is 1, identity elsewhere.
func ControlledDiagonal(diag []Complex, targets []int, control int) *Node {
	return &Node{
		Kind:     KindDiagonal,
		Name:     "cU",
		Diagonal: diag,
		Targets:  targets,
		Controls: []int{control},
		Pattern:  1,
	}
}

// MultiControlledPhase multiplies the amplitude by e^{i·angle} exactly on
// the branch where every listed qubit is 1: a phase on the last qubit
// controlled by all the others. With angle π this is a multi-controlled Z.
func MultiControlledPhase(qubits []int, angle float64) *Node {
	last := len(qubits) - 1
	phase := cmplx.Rect(1, angle)
	nd := &Node{
		Kind:     KindDiagonal,
		Name:     "cP",
		Diagonal: []Complex{1, phase},
		Targets:  []int{qubits[last]},
	}
	if last > 0 {
		nd.Controls = qubits[:last]
		nd.Pattern = 1<<last - 1
	}
	return nd
}

// GlobalPhase multiplies the whole state by e^{i·angle}, expressed as a
// uniform diagonal on a single qubit so it stays inside the gate set.
func GlobalPhase(q int, angle float64) *Node {
	phase := cmplx.Rect(1, angle)
	return &Node{
		Kind:     KindDiagonal,
		Name:     "Ph",
		Diagonal: []Complex{phase, phase},
		Targets:  []int{q},
	}
}

// InverseQFT returns the inverse quantum Fourier transform over the given
// register as a dense unitary: entry [y][k] = exp(-2πi·y·k/2^d)/√2^d.
// Bit j of a register value lives on targets[j], targets[0] least
// significant; the forward transform is the node's Inverse.
func InverseQFT(targets []int) *Node {
	dim := 1 << len(targets)
	norm := 1 / math.Sqrt(float64(dim))
	m := make(Matrix, dim)
	for y := 0; y < dim; y++ {
		m[y] = make([]Complex, dim)
		for k := 0; k < dim; k++ {
			angle := -2 * math.Pi * float64(y) * float64(k) / float64(dim)
			m[y][k] = cmplx.Rect(norm, angle)
		}
	}
	return &Node{Kind: KindGate, Name: "QFT†", Matrix: m, Targets: targets}
}
