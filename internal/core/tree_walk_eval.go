package core

import (
	"errors"
	"fmt"

	"github.com/Helset123/olang/internal/parse"
)

var (
	ErrUnreachable = errors.New("unreachable")
)

// A TreeWalkState stores the data accessed during the tree walking evaluation.
type TreeWalkState struct {
	Ctx *Context
	Env *Environment
}

func NewTreeWalkState(ctx *Context, env *Environment) *TreeWalkState {
	return &TreeWalkState{
		Ctx: ctx,
		Env: env,
	}
}

// TreeWalkEval evaluates a node. The returned error is either an *Exception, ErrContinue or ErrBreak.
// An exception that is not located yet gets the region of node.
func TreeWalkEval(node parse.Node, state *TreeWalkState) (result Value, err error) {
	result, err = treeWalkEval(node, state)

	if err != nil {
		var exception *Exception
		if errors.As(err, &exception) && !exception.located() {
			exception.Region = node.Base().Region
		}
		return nil, err
	}
	return result, nil
}

func treeWalkEval(node parse.Node, state *TreeWalkState) (Value, error) {
	switch n := node.(type) {
	case *parse.IntLiteral:
		return Int(n.Value), nil
	case *parse.StringLiteral:
		return String(n.Value), nil
	case *parse.BooleanLiteral:
		return Bool(n.Value), nil
	case *parse.NullLiteral:
		return Null{}, nil
	case *parse.IdentifierLiteral:
		return state.Env.GetOrFail(n.Name)
	case *parse.Block:
		return evalBlock(n, state, true)
	case *parse.BinaryExpression:
		return evalBinaryExpression(n, state)
	case *parse.UpdateExpression:
		return evalUpdateExpression(n, state)
	case *parse.VariableDeclaration:
		value, err := TreeWalkEval(n.Init, state)
		if err != nil {
			return nil, err
		}
		state.Env.Declare(n.Name, value)
		return Null{}, nil
	case *parse.Assignment:
		return evalAssignment(n, state)
	case *parse.FunctionLiteral:
		return &DefinedFunction{
			Parameters: n.Parameters,
			Body:       n.Body,
		}, nil
	case *parse.CallExpression:
		return evalCallExpression(n, state)
	case *parse.ListLiteral:
		list := make(List, 0, len(n.Elements))
		for _, elemNode := range n.Elements {
			elem, err := TreeWalkEval(elemNode, state)
			if err != nil {
				return nil, err
			}
			list = append(list, elem)
		}
		return list, nil
	case *parse.IndexExpression:
		return evalIndexExpression(n, state)
	case *parse.IfExpression:
		return evalIfExpression(n, state)
	case *parse.LoopExpression:
		return evalLoopExpression(n, state)
	case *parse.ContinueExpression:
		return nil, ErrContinue
	case *parse.BreakExpression:
		return nil, ErrBreak
	default:
		return nil, fmt.Errorf("cannot evaluate %#v (%T)", node, node)
	}
}

// evalBlock evaluates the expressions of a block and returns the value of the last one, or null if the block is empty.
func evalBlock(block *parse.Block, state *TreeWalkState, pushScope bool) (Value, error) {
	if pushScope {
		state.Env.Push()
		defer state.Env.Pop()
	}

	var result Value = Null{}

	for _, expr := range block.Expressions {
		value, err := TreeWalkEval(expr, state)
		if err != nil {
			return nil, err
		}
		result = value
	}

	return result, nil
}

// evalBinaryExpression always evaluates both operands, && and || do not short-circuit.
func evalBinaryExpression(n *parse.BinaryExpression, state *TreeWalkState) (Value, error) {
	left, err := TreeWalkEval(n.Left, state)
	if err != nil {
		return nil, err
	}

	right, err := TreeWalkEval(n.Right, state)
	if err != nil {
		return nil, err
	}

	return applyBinaryOperator(n.Operator, left, right)
}

func applyBinaryOperator(operator parse.BinaryOperator, left, right Value) (Value, error) {
	switch operator {
	case parse.Add:
		return add(left, right)
	case parse.Sub, parse.Mul, parse.Div, parse.Mod, parse.Exponentiation:
		return evalIntBinaryOperation(operator, left, right)
	case parse.Equal:
		return Bool(Equal(left, right)), nil
	case parse.NotEqual:
		return Bool(!Equal(left, right)), nil
	case parse.LessThan, parse.LessOrEqual, parse.GreaterThan, parse.GreaterOrEqual:
		return compareInts(operator, left, right)
	case parse.And, parse.Or:
		return combineBools(operator, left, right)
	default:
		return nil, fmt.Errorf("invalid binary operator %d", operator)
	}
}

func evalUpdateExpression(n *parse.UpdateExpression, state *TreeWalkState) (Value, error) {
	value, err := state.Env.GetOrFail(n.Name)
	if err != nil {
		return nil, err
	}

	i, ok := value.(Int)
	if !ok {
		return nil, NewException(ValueIsWrongType, "operator %s cannot be applied to a value of type %s", n.Operator, TypeName(value))
	}

	if n.Operator == parse.Increment {
		i++
	} else {
		i--
	}

	if err := state.Env.Assign(n.Name, i); err != nil {
		return nil, err
	}
	return Null{}, nil
}

// evalAssignment evaluates the right-hand side first, compound assignments read the variable afterwards.
func evalAssignment(n *parse.Assignment, state *TreeWalkState) (Value, error) {
	value, err := TreeWalkEval(n.Value, state)
	if err != nil {
		return nil, err
	}

	if operator, ok := n.Operator.BinaryOperator(); ok {
		current, err := state.Env.GetOrFail(n.Name)
		if err != nil {
			return nil, err
		}

		value, err = applyBinaryOperator(operator, current, value)
		if err != nil {
			return nil, err
		}
	}

	if err := state.Env.Assign(n.Name, value); err != nil {
		return nil, err
	}
	return Null{}, nil
}

func evalCallExpression(n *parse.CallExpression, state *TreeWalkState) (Value, error) {
	callee, err := state.Env.GetOrFail(n.Callee)
	if err != nil {
		return nil, err
	}

	switch callee.(type) {
	case *DefinedFunction, *BuiltinFunction:
	default:
		return nil, NewException(CalledValueIsNotFunction, "%s is a value of type %s", n.Callee, TypeName(callee))
	}

	args := make([]Value, 0, len(n.Arguments))
	for _, argNode := range n.Arguments {
		arg, err := TreeWalkEval(argNode, state)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	switch fn := callee.(type) {
	case *BuiltinFunction:
		return fn.Fn(state.Ctx, args)
	case *DefinedFunction:
		return callDefinedFunction(n.Callee, fn, args, state)
	}
	panic(ErrUnreachable)
}

// callDefinedFunction evaluates the body of fn in a new scope containing the parameters,
// the scope is popped whatever the outcome.
func callDefinedFunction(name string, fn *DefinedFunction, args []Value, state *TreeWalkState) (Value, error) {
	state.Env.Push()
	defer state.Env.Pop()

	if len(args) != len(fn.Parameters) {
		return nil, NewException(WrongNumberOfArguments, "%s expects %d argument(s) but got %d", name, len(fn.Parameters), len(args))
	}

	for i, param := range fn.Parameters {
		state.Env.Declare(param, args[i])
	}

	return evalBlock(fn.Body, state, false)
}

func evalIndexExpression(n *parse.IndexExpression, state *TreeWalkState) (Value, error) {
	indexed, err := TreeWalkEval(n.Indexed, state)
	if err != nil {
		return nil, err
	}

	index, err := TreeWalkEval(n.Index, state)
	if err != nil {
		return nil, err
	}

	list, ok := indexed.(List)
	if !ok {
		return nil, NewException(ValueIsWrongType, "a value of type %s cannot be indexed", TypeName(indexed))
	}

	i, ok := index.(Int)
	if !ok {
		return nil, NewException(ValueIsWrongType, "index should be an int, not a value of type %s", TypeName(index))
	}

	if i < 0 || i >= Int(len(list)) {
		return nil, NewException(IndexOutOfRange, "index %d is out of range for a list of length %d", i, len(list))
	}

	return list[i], nil
}

func evalTest(test parse.Node, state *TreeWalkState) (bool, error) {
	value, err := TreeWalkEval(test, state)
	if err != nil {
		return false, err
	}

	b, ok := value.(Bool)
	if !ok {
		exception := NewException(ValueIsWrongType, "condition should be a bool, not a value of type %s", TypeName(value))
		exception.Region = test.Base().Region
		return false, exception
	}
	return bool(b), nil
}

func evalIfExpression(n *parse.IfExpression, state *TreeWalkState) (Value, error) {
	for _, clause := range n.Clauses {
		ok, err := evalTest(clause.Test, state)
		if err != nil {
			return nil, err
		}

		if ok {
			return evalBlock(clause.Body, state, true)
		}
	}

	if n.Else != nil {
		return evalBlock(n.Else, state, true)
	}

	return Null{}, nil
}

// evalLoopExpression evaluates while, for and loop expressions. The loop has a single scope
// containing the variables declared by the initialization and by the body.
func evalLoopExpression(n *parse.LoopExpression, state *TreeWalkState) (Value, error) {
	state.Env.Push()
	defer state.Env.Pop()

	if n.Init != nil {
		if _, err := TreeWalkEval(n.Init, state); err != nil {
			return nil, err
		}
	}

	var result Value = Null{}

	for {
		if n.Test != nil {
			ok, err := evalTest(n.Test, state)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}

		value, err := evalBlock(n.Body, state, false)

		switch {
		case err == nil:
			result = value
		case errors.Is(err, ErrContinue):
		case errors.Is(err, ErrBreak):
			return result, nil
		default:
			return nil, err
		}

		if n.Update != nil {
			if _, err := TreeWalkEval(n.Update, state); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}
