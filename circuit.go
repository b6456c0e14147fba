package qgrover

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// Matrix is a dense square unitary, row-major.
type Matrix [][]Complex

// ConjTranspose returns the adjoint of m.
func (m Matrix) ConjTranspose() Matrix {
	dim := len(m)
	out := make(Matrix, dim)
	for i := range out {
		out[i] = make([]Complex, dim)
		for j := range out[i] {
			out[i][j] = cmplx.Conj(m[j][i])
		}
	}
	return out
}

// NodeKind discriminates circuit node variants.
type NodeKind int

const (
	// KindGate applies a dense k-qubit unitary to the target qubits.
	KindGate NodeKind = iota
	// KindDiagonal applies per-basis-value phases to the target qubits.
	KindDiagonal
	// KindSeq applies its children in order.
	KindSeq
)

// Node is an immutable description of a gate application. Composite nodes
// own their child sequence; Inverse builds a new node and never mutates.
type Node struct {
	Kind     NodeKind
	Name     string
	Matrix   Matrix    // KindGate
	Diagonal []Complex // KindDiagonal
	Targets  []int
	Controls []int // empty for uncontrolled gates
	Pattern  int   // required control values, bit b for Controls[b]
	Children []*Node
}

// Seq builds a composite node from the given children.
func Seq(name string, children ...*Node) *Node {
	return &Node{Kind: KindSeq, Name: name, Children: children}
}

// Inverse returns the adjoint circuit: a sequence is reversed with each
// child inverted, a dense gate becomes its conjugate transpose, a diagonal
// conjugates each phase. Controls and pattern carry over unchanged.
func (nd *Node) Inverse() *Node {
	switch nd.Kind {
	case KindSeq:
		children := make([]*Node, len(nd.Children))
		for i, child := range nd.Children {
			children[len(children)-1-i] = child.Inverse()
		}
		return &Node{Kind: KindSeq, Name: nd.Name + "†", Children: children}
	case KindDiagonal:
		diag := make([]Complex, len(nd.Diagonal))
		for i, z := range nd.Diagonal {
			diag[i] = cmplx.Conj(z)
		}
		return &Node{
			Kind:     KindDiagonal,
			Name:     nd.Name + "†",
			Diagonal: diag,
			Targets:  nd.Targets,
			Controls: nd.Controls,
			Pattern:  nd.Pattern,
		}
	default:
		return &Node{
			Kind:     KindGate,
			Name:     nd.Name + "†",
			Matrix:   nd.Matrix.ConjTranspose(),
			Targets:  nd.Targets,
			Controls: nd.Controls,
			Pattern:  nd.Pattern,
		}
	}
}

// Apply runs the circuit against the state, mutating it in place.
func (nd *Node) Apply(s *StateVector) {
	switch nd.Kind {
	case KindSeq:
		for _, child := range nd.Children {
			child.Apply(s)
		}
	case KindDiagonal:
		s.ApplyDiagonal(nd.Diagonal, nd.Targets, nd.Controls, nd.Pattern)
	default:
		s.ApplyMatrix(nd.Matrix, nd.Targets, nd.Controls, nd.Pattern)
	}
}

// CountGates returns the number of elementary (non-composite) applications
// the circuit performs.
func (nd *Node) CountGates() int {
	if nd.Kind != KindSeq {
		return 1
	}
	total := 0
	for _, child := range nd.Children {
		total += child.CountGates()
	}
	return total
}

// Describe renders the circuit as an indented gate listing, the textual
// descriptor handed to external backends and shown in the demo.
func (nd *Node) Describe() string {
	var sb strings.Builder
	nd.describe(&sb, 0)
	return sb.String()
}

func (nd *Node) describe(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	if nd.Kind == KindSeq {
		fmt.Fprintf(sb, "%s%s {\n", indent, nd.Name)
		for _, child := range nd.Children {
			child.describe(sb, depth+1)
		}
		fmt.Fprintf(sb, "%s}\n", indent)
		return
	}

	fmt.Fprintf(sb, "%s%s %s", indent, nd.Name, formatQubits(nd.Targets))
	if len(nd.Controls) > 0 {
		fmt.Fprintf(sb, " ctrl %s=%s", formatQubits(nd.Controls), formatPattern(nd.Pattern, len(nd.Controls)))
	}
	sb.WriteString(";\n")
}

func formatQubits(qubits []int) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = fmt.Sprintf("q[%d]", q)
	}
	return strings.Join(parts, ",")
}

// formatPattern writes the control pattern bits in Controls order.
func formatPattern(pattern, width int) string {
	var sb strings.Builder
	for b := 0; b < width; b++ {
		if pattern>>b&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
