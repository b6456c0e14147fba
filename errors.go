package qgrover

import "errors"

var (
	// ErrInvalidConfiguration indicates a register size below one qubit.
	ErrInvalidConfiguration = errors.New("qgrover: main and ancilla registers need at least one qubit each")
	// ErrDimensionMismatch indicates the diagonal length is not 2^n.
	ErrDimensionMismatch = errors.New("qgrover: diagonal length must equal 2^n")
	// ErrInvalidDiagonal indicates a diagonal entry off the unit circle.
	ErrInvalidDiagonal = errors.New("qgrover: diagonal entries must have unit modulus")
	// ErrPhasePrecision indicates t*2^d is not an integer, so the oracle
	// cannot mark exactly.
	ErrPhasePrecision = errors.New("qgrover: target phase is not representable in d ancilla bits")
)
