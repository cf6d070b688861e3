package core

import (
	"math"
	"math/bits"

	"github.com/Helset123/olang/internal/parse"
)

func wrongOperandTypes(operator parse.BinaryOperator, left, right Value) *Exception {
	return NewException(ValueIsWrongType, "operator %s cannot be applied to %s and %s", operator, TypeName(left), TypeName(right))
}

// add implements the overloaded + operator: integer addition, string concatenation and list append.
func add(left, right Value) (Value, error) {
	switch l := left.(type) {
	case Int:
		if r, ok := right.(Int); ok {
			return l + r, nil
		}
	case String:
		if r, ok := right.(String); ok {
			return l + r, nil
		}
	case List:
		return l.Append(right), nil
	}
	return nil, wrongOperandTypes(parse.Add, left, right)
}

// evalIntBinaryOperation applies an arithmetic operator other than + to two integers.
// Addition, subtraction and multiplication wrap around on overflow.
func evalIntBinaryOperation(operator parse.BinaryOperator, left, right Value) (Value, error) {
	l, ok1 := left.(Int)
	r, ok2 := right.(Int)
	if !ok1 || !ok2 {
		return nil, wrongOperandTypes(operator, left, right)
	}

	switch operator {
	case parse.Add:
		return l + r, nil
	case parse.Sub:
		return l - r, nil
	case parse.Mul:
		return l * r, nil
	case parse.Div:
		if r == 0 {
			return nil, NewException(DivisionByZero, "integer division by zero")
		}
		return l / r, nil
	case parse.Mod:
		if r == 0 {
			return nil, NewException(DivisionByZero, "integer modulo by zero")
		}
		return l % r, nil
	case parse.Exponentiation:
		return intPow(l, r)
	}
	panic(ErrUnreachable)
}

// intPow computes base ** exponent on the unsigned reinterpretation of base, the result must fit
// in a non-negative int64. A negative exponent always overflows.
func intPow(base, exponent Int) (Value, error) {
	if exponent < 0 {
		return nil, NewException(ExponentiationOverflowed, "negative exponent %d", exponent)
	}

	result, ok := checkedPowUint64(uint64(base), uint64(exponent))
	if !ok || result > math.MaxInt64 {
		return nil, NewException(ExponentiationOverflowed, "%d ** %d does not fit in an integer", base, exponent)
	}
	return Int(result), nil
}

// checkedPowUint64 computes base ** exponent by squaring, ok is false if an intermediate product overflows.
func checkedPowUint64(base, exponent uint64) (result uint64, ok bool) {
	result = 1

	for exponent > 0 {
		if exponent&1 == 1 {
			hi, lo := bits.Mul64(result, base)
			if hi != 0 {
				return 0, false
			}
			result = lo
		}

		exponent >>= 1
		if exponent > 0 {
			hi, lo := bits.Mul64(base, base)
			if hi != 0 {
				return 0, false
			}
			base = lo
		}
	}

	return result, true
}

func compareInts(operator parse.BinaryOperator, left, right Value) (Value, error) {
	l, ok1 := left.(Int)
	r, ok2 := right.(Int)
	if !ok1 || !ok2 {
		return nil, wrongOperandTypes(operator, left, right)
	}

	switch operator {
	case parse.LessThan:
		return Bool(l < r), nil
	case parse.LessOrEqual:
		return Bool(l <= r), nil
	case parse.GreaterThan:
		return Bool(l > r), nil
	case parse.GreaterOrEqual:
		return Bool(l >= r), nil
	}
	panic(ErrUnreachable)
}

func combineBools(operator parse.BinaryOperator, left, right Value) (Value, error) {
	l, ok1 := left.(Bool)
	r, ok2 := right.(Bool)
	if !ok1 || !ok2 {
		return nil, wrongOperandTypes(operator, left, right)
	}

	if operator == parse.And {
		return l && r, nil
	}
	return l || r, nil
}
