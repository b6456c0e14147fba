package qgrover

import "math"

// multiControlledX flips the last listed qubit when all the others are 1.
func multiControlledX(qubits []int) *Node {
	last := len(qubits) - 1
	nd := &Node{
		Kind:    KindGate,
		Name:    "cX",
		Matrix:  pauliXMatrix,
		Targets: []int{qubits[last]},
	}
	if last > 0 {
		nd.Controls = qubits[:last]
		nd.Pattern = 1<<last - 1
	}
	return nd
}

// BuildDiffuser returns the Grover reflection about the uniform
// superposition over the low n qubits: Hadamard all, X all, a
// multi-controlled Z on the last qubit via basis change
// (H, (n-1)-controlled X, H), X all, Hadamard all. That sandwich realizes
// I - 2|s⟩⟨s|; the trailing global phase of π makes the node equal
// 2|s⟩⟨s| - I as a matrix.
func BuildDiffuser(n int) *Node {
	main := mainRegister(n)
	last := main[n-1]
	var children []*Node
	for _, q := range main {
		children = append(children, Hadamard(q))
	}
	for _, q := range main {
		children = append(children, PauliX(q))
	}
	children = append(children,
		Hadamard(last),
		multiControlledX(main),
		Hadamard(last),
	)
	for _, q := range main {
		children = append(children, PauliX(q))
	}
	for _, q := range main {
		children = append(children, Hadamard(q))
	}
	children = append(children, GlobalPhase(0, math.Pi))
	return Seq("Diffuser", children...)
}
