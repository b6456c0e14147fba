package qgrover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumIterations(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{6, 6},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NumIterations(tt.n), "n=%d", tt.n)
	}
}

func TestSearchAmplifiesTarget(t *testing.T) {
	// n=3, d=3, θ(x) = x/8, t = 5/8: outcome 5 at ~0.945, the rest at
	// ~0.0078 each.
	const n, d = 3, 3
	state, err := Run(n, d, rampDiagonal(n), 5.0/8)
	require.NoError(t, err)

	probs := state.MainProbabilities(n)
	require.Len(t, probs, 8)

	total := 0.0
	for x, p := range probs {
		total += p
		if x == 5 {
			require.InDelta(t, 0.945, p, 1e-3, "target outcome")
			continue
		}
		require.InDelta(t, 0.0078, p, 1e-3, "outcome %d", x)
		require.Less(t, p, probs[5], "outcome %d should stay below the target", x)
	}
	require.InDelta(t, 1.0, total, 1e-6)
}

func TestSearchLeavesAncillaAtZero(t *testing.T) {
	const n, d = 3, 3
	state, err := Run(n, d, rampDiagonal(n), 5.0/8)
	require.NoError(t, err)

	outside := 0.0
	probs := state.Probabilities()
	for i, p := range probs {
		if i>>n != 0 {
			outside += p
		}
	}
	require.InDelta(t, 0.0, outside, 1e-9)
}

func TestSearchOtherTargets(t *testing.T) {
	// Every representable target phase amplifies its own eigenstate.
	const n, d = 2, 2
	diag := rampDiagonal(n)
	for x := 0; x < 1<<n; x++ {
		state, err := Run(n, d, diag, float64(x)/4)
		require.NoError(t, err)

		probs := state.MainProbabilities(n)
		for y, p := range probs {
			if y == x {
				continue
			}
			require.Less(t, p, probs[x], "target %d, outcome %d", x, y)
		}
	}
}

func TestBuildSearchCircuitShape(t *testing.T) {
	const n, d = 3, 3
	circuit, err := BuildSearchCircuit(n, d, rampDiagonal(n), 5.0/8)
	require.NoError(t, err)
	require.Equal(t, KindSeq, circuit.Kind)
	// n initial Hadamards plus k (oracle, diffuser) pairs.
	require.Len(t, circuit.Children, n+2*NumIterations(n))
}

func TestRunValidation(t *testing.T) {
	_, err := Run(0, 3, rampDiagonal(3), 0.5)
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Run(3, 3, rampDiagonal(2), 0.5)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Run(3, 3, rampDiagonal(3), 0.1)
	require.ErrorIs(t, err, ErrPhasePrecision)
}
