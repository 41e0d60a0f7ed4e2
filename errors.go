// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed256

import (
	"errors"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this module.
var Error = errs.Class("fixed256")

// Kind is an arithmetic error condition.
// Kind implements error, so errors.Is(err, MulOverflow) reports if err carries that condition.
type Kind uint8

// Error kinds.
const (
	_ Kind = iota
	AddOverflow
	SubUnderflow
	MulOverflow
	MulDivOverflow
	MulDiv18Overflow
	MulInputTooSmall
	DivideByZero
	DivOverflow
	DivInputTooSmall
	AbsInputTooSmall
	CeilOverflow
	FloorUnderflow
	SqrtOverflow
	SqrtNegativeInput
	GmOverflow
	GmNegativeProduct
	ExpInputTooBig
	Exp2InputTooBig
	LogInputTooSmall
	PowuOverflow
	FromUintOverflow
	FromIntOverflow
	FromIntUnderflow
	ConvertOverflow
	ConvertUnderflow
	InvalidDecimals
)

var kindNames = [...]string{
	AddOverflow:       "add overflow",
	SubUnderflow:      "sub underflow",
	MulOverflow:       "mul overflow",
	MulDivOverflow:    "muldiv overflow",
	MulDiv18Overflow:  "muldiv18 overflow",
	MulInputTooSmall:  "mul input too small",
	DivideByZero:      "divide by zero",
	DivOverflow:       "div overflow",
	DivInputTooSmall:  "div input too small",
	AbsInputTooSmall:  "abs input too small",
	CeilOverflow:      "ceil overflow",
	FloorUnderflow:    "floor underflow",
	SqrtOverflow:      "sqrt overflow",
	SqrtNegativeInput: "sqrt negative input",
	GmOverflow:        "gm overflow",
	GmNegativeProduct: "gm negative product",
	ExpInputTooBig:    "exp input too big",
	Exp2InputTooBig:   "exp2 input too big",
	LogInputTooSmall:  "log input too small",
	PowuOverflow:      "powu overflow",
	FromUintOverflow:  "from uint overflow",
	FromIntOverflow:   "from int overflow",
	FromIntUnderflow:  "from int underflow",
	ConvertOverflow:   "convert overflow",
	ConvertUnderflow:  "convert underflow",
	InvalidDecimals:   "invalid decimals",
}

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown error"
}

func (k Kind) Error() string {
	return k.String()
}

// ArithError is a failed arithmetic operation.
type ArithError struct {
	Kind Kind
	// Operands are the inputs, which caused the error. May be empty.
	Operands []*big.Int
}

func (e *ArithError) Error() string {
	if len(e.Operands) == 0 {
		return e.Kind.String()
	}
	var builder strings.Builder
	builder.WriteString(e.Kind.String())
	builder.WriteString(" (")
	for i, op := range e.Operands {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(op.String())
	}
	builder.WriteRune(')')
	return builder.String()
}

// Unwrap returns error kind.
func (e *ArithError) Unwrap() error {
	return e.Kind
}

// NewError returns a new error of the given kind.
func NewError(kind Kind, operands ...*big.Int) error {
	return Error.Wrap(&ArithError{Kind: kind, Operands: operands})
}

func wordError(kind Kind, operands ...*uint256.Int) error {
	ops := make([]*big.Int, len(operands))
	for i, op := range operands {
		ops[i] = op.ToBig()
	}
	return NewError(kind, ops...)
}

// KindOf returns the kind of an arithmetic error.
func KindOf(err error) (Kind, bool) {
	var ae *ArithError
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}
