package core

import (
	"errors"
	"io"
	"strings"
)

const (
	PRINTLN_BUILTIN_NAME  = "printLn"
	TOSTRING_BUILTIN_NAME = "toString"
	READLN_BUILTIN_NAME   = "readLn"
	LEN_BUILTIN_NAME      = "len"
)

// Builtins returns the builtin functions declared in the global scope of default environments.
func Builtins() []*BuiltinFunction {
	return []*BuiltinFunction{
		{Name: PRINTLN_BUILTIN_NAME, Fn: printLn},
		{Name: TOSTRING_BUILTIN_NAME, Fn: toString},
		{Name: READLN_BUILTIN_NAME, Fn: readLn},
		{Name: LEN_BUILTIN_NAME, Fn: length},
	}
}

func checkArgCount(name string, args []Value, expected int) error {
	if len(args) != expected {
		return NewException(WrongNumberOfArguments, "%s expects %d argument(s) but got %d", name, expected, len(args))
	}
	return nil
}

// printLn writes the display forms of its arguments followed by a newline, it accepts any number of arguments.
func printLn(ctx *Context, args []Value) (Value, error) {
	buf := &strings.Builder{}
	for _, arg := range args {
		buf.WriteString(Display(arg))
	}
	buf.WriteByte('\n')

	if _, err := io.WriteString(ctx.Out, buf.String()); err != nil {
		return nil, NewException(Custom, "%s", err.Error())
	}
	return Null{}, nil
}

func toString(ctx *Context, args []Value) (Value, error) {
	if err := checkArgCount(TOSTRING_BUILTIN_NAME, args, 1); err != nil {
		return nil, err
	}
	return String(Display(args[0])), nil
}

// readLn reads a line from the input of the context, the trailing line separator is removed.
// The last line of the input does not need to end with a newline.
func readLn(ctx *Context, args []Value) (Value, error) {
	if err := checkArgCount(READLN_BUILTIN_NAME, args, 0); err != nil {
		return nil, err
	}

	line, err := ctx.In.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return nil, NewException(Custom, "%s", err.Error())
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return String(line), nil
}

func length(ctx *Context, args []Value) (Value, error) {
	if err := checkArgCount(LEN_BUILTIN_NAME, args, 1); err != nil {
		return nil, err
	}

	list, ok := args[0].(List)
	if !ok {
		return nil, NewException(ValueIsWrongType, "%s expects a list but got a value of type %s", LEN_BUILTIN_NAME, TypeName(args[0]))
	}
	return Int(len(list)), nil
}
