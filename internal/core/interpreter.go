package core

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/Helset123/olang/internal/parse"
	"github.com/Helset123/olang/internal/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	INTERPRETER_ID_LOG_FIELD_NAME = "interp"
)

// An Interpreter evaluates programs against a persistent environment: variables declared by a
// call to Eval are visible to the next calls. An Interpreter is not safe for concurrent use.
type Interpreter struct {
	id     ulid.ULID
	ctx    *Context
	state  *TreeWalkState
	logger zerolog.Logger
}

// NewInterpreter creates an interpreter with a default environment, a nil ctx is replaced by a
// context using the standard streams.
func NewInterpreter(ctx *Context) *Interpreter {
	if ctx == nil {
		ctx = NewContext(ContextConfig{})
	}

	id := ulid.Make()

	return &Interpreter{
		id:     id,
		ctx:    ctx,
		state:  NewTreeWalkState(ctx, NewDefaultEnvironment()),
		logger: ctx.Logger.With().Str(INTERPRETER_ID_LOG_FIELD_NAME, id.String()).Logger(),
	}
}

func (interp *Interpreter) ID() ulid.ULID {
	return interp.id
}

func (interp *Interpreter) Environment() *Environment {
	return interp.state.Env
}

func (interp *Interpreter) Context() *Context {
	return interp.ctx
}

// Eval parses and evaluates source, it returns the value of the last top-level expression or
// null if there is none. Lexer and parser errors are returned unchanged.
func (interp *Interpreter) Eval(source string) (Value, error) {
	program, err := parse.ParseSource(source)
	if err != nil {
		interp.logger.Debug().Err(err).Msg("failed to parse source")
		return nil, err
	}
	return interp.EvalProgram(program)
}

// EvalProgram evaluates the top-level expressions of program in order, the first error stops the evaluation.
// The returned error is an *UnhandledExceptionError, ErrContinueOutsideLoop or ErrBreakOutsideLoop.
func (interp *Interpreter) EvalProgram(program *parse.Program) (result Value, finalErr error) {
	start := time.Now()

	defer func() {
		if e := recover(); e != nil {
			finalErr = fmt.Errorf("core: %w: %s", utils.ConvertPanicValueToError(e), debug.Stack())
			result = nil
		}

		event := interp.logger.Debug().
			Int("expressions", len(program.Expressions)).
			Dur("duration", time.Since(start))

		if finalErr != nil {
			event = event.Err(finalErr)
		}
		event.Msg("program evaluated")
	}()

	result = Null{}

	for _, expr := range program.Expressions {
		value, err := TreeWalkEval(expr, interp.state)
		if err != nil {
			return nil, toEvalError(err)
		}
		result = value
	}

	return result, nil
}

// toEvalError converts a control flow signal that escaped the top level to an error.
func toEvalError(err error) error {
	switch {
	case errors.Is(err, ErrContinue):
		return ErrContinueOutsideLoop
	case errors.Is(err, ErrBreak):
		return ErrBreakOutsideLoop
	}

	var exception *Exception
	if errors.As(err, &exception) {
		return &UnhandledExceptionError{Exception: exception}
	}
	return err
}

// Eval evaluates source with a new interpreter using the standard streams.
func Eval(source string) (Value, error) {
	return NewInterpreter(nil).Eval(source)
}
