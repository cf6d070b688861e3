package core

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Helset123/olang/internal/sourcecode"
)

var (
	//loop signals, they are absorbed by the innermost enclosing loop.
	ErrContinue = errors.New("continue")
	ErrBreak    = errors.New("break")

	ErrContinueOutsideLoop = errors.New("continue outside of a loop")
	ErrBreakOutsideLoop    = errors.New("break outside of a loop")

	_ = []sourcecode.LocatedError{(*UnhandledExceptionError)(nil)}
)

type ExceptionKind uint8

const (
	WrongNumberOfArguments ExceptionKind = iota + 1
	UndeclaredIdentifier
	CalledValueIsNotFunction
	ValueIsWrongType
	ExponentiationOverflowed
	IndexOutOfRange
	DivisionByZero
	Custom
)

var exceptionKindNames = [...]string{
	WrongNumberOfArguments:   "WrongNumberOfArguments",
	UndeclaredIdentifier:     "UndeclaredIdentifier",
	CalledValueIsNotFunction: "CalledValueIsNotFunction",
	ValueIsWrongType:         "ValueIsWrongType",
	ExponentiationOverflowed: "ExponentiationOverflowed",
	IndexOutOfRange:          "IndexOutOfRange",
	DivisionByZero:           "DivisionByZero",
	Custom:                   "Custom",
}

func (k ExceptionKind) String() string {
	if int(k) < len(exceptionKindNames) && exceptionKindNames[k] != "" {
		return exceptionKindNames[k]
	}
	return "InvalidExceptionKind(" + strconv.Itoa(int(k)) + ")"
}

// An Exception is a runtime error raised by the evaluation of an expression, it propagates
// to the top level because the language has no way to catch it.
type Exception struct {
	Kind    ExceptionKind
	Message string

	//name of the undeclared variable for UndeclaredIdentifier exceptions
	Identifier string

	//region of the innermost expression that raised the exception,
	//the zero value means that the exception has not been located yet.
	Region sourcecode.Region
}

func NewException(kind ExceptionKind, format string, args ...any) *Exception {
	return &Exception{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func newUndeclaredIdentifierException(name string) *Exception {
	exception := NewException(UndeclaredIdentifier, "%s is not declared", name)
	exception.Identifier = name
	return exception
}

func (e *Exception) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Exception) located() bool {
	return e.Region.Start.Line != 0
}

// An UnhandledExceptionError is returned by Eval when an exception reaches the top level.
type UnhandledExceptionError struct {
	Exception *Exception
}

func (err *UnhandledExceptionError) MessageWithoutLocation() string {
	return "Unhandled exception: " + err.Exception.Error()
}

func (err *UnhandledExceptionError) LocationRegion() sourcecode.Region {
	return err.Exception.Region
}

func (err *UnhandledExceptionError) Error() string {
	return err.Exception.Region.String() + ": " + err.MessageWithoutLocation()
}

func (err *UnhandledExceptionError) Unwrap() error {
	return err.Exception
}

// ExceptionKindOf returns the kind of the exception wrapped by err, ok is false if err does
// not wrap an exception.
func ExceptionKindOf(err error) (kind ExceptionKind, ok bool) {
	var exception *Exception
	if errors.As(err, &exception) {
		return exception.Kind, true
	}
	return 0, false
}
