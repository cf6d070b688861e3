package parse

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

type TraversalAction int

const (
	ContinueTraversal TraversalAction = iota
	Prune
	StopTraversal
)

type NodeHandler = func(node Node, parent Node, ancestorChain []Node, after bool) (TraversalAction, error)

// Walk performs a pre-order traversal on an AST (depth first).
// postHandle is called on a node after all its descendants have been visited.
func Walk(node Node, handle, postHandle NodeHandler) (err error) {
	defer func() {
		v := recover()

		switch val := v.(type) {
		case error:
			err = fmt.Errorf("%s:%w", debug.Stack(), val)
		case nil:
		case TraversalAction:
		default:
			panic(v)
		}
	}()

	ancestorChain := make([]Node, 0)
	walk(node, nil, &ancestorChain, handle, postHandle)
	return
}

// WalkProgram walks every top-level expression of program, StopTraversal stops the whole walk.
func WalkProgram(program *Program, handle, postHandle NodeHandler) error {
	stopped := false

	wrappedHandle := func(node, parent Node, ancestorChain []Node, after bool) (TraversalAction, error) {
		if handle == nil {
			return ContinueTraversal, nil
		}
		action, err := handle(node, parent, ancestorChain, after)
		if action == StopTraversal {
			stopped = true
		}
		return action, err
	}

	for _, expr := range program.Expressions {
		if err := Walk(expr, wrappedHandle, postHandle); err != nil {
			return err
		}
		if stopped {
			break
		}
	}
	return nil
}

func walk(node, parent Node, ancestorChain *[]Node, fn, afterFn NodeHandler) {

	if node == nil || reflect.ValueOf(node).IsNil() {
		return
	}

	if parent != nil {
		*ancestorChain = append((*ancestorChain), parent)
		defer func() {
			*ancestorChain = (*ancestorChain)[:len(*ancestorChain)-1]
		}()
	}

	if fn != nil {
		action, err := fn(node, parent, *ancestorChain, false)

		if err != nil {
			panic(err)
		}

		switch action {
		case StopTraversal:
			panic(StopTraversal)
		case Prune:
			return
		}
	}

	switch n := node.(type) {
	case *Block:
		for _, expr := range n.Expressions {
			walk(expr, node, ancestorChain, fn, afterFn)
		}
	case *BinaryExpression:
		walk(n.Left, node, ancestorChain, fn, afterFn)
		walk(n.Right, node, ancestorChain, fn, afterFn)
	case *VariableDeclaration:
		walk(n.Init, node, ancestorChain, fn, afterFn)
	case *Assignment:
		walk(n.Value, node, ancestorChain, fn, afterFn)
	case *FunctionLiteral:
		walk(n.Body, node, ancestorChain, fn, afterFn)
	case *CallExpression:
		for _, arg := range n.Arguments {
			walk(arg, node, ancestorChain, fn, afterFn)
		}
	case *ListLiteral:
		for _, elem := range n.Elements {
			walk(elem, node, ancestorChain, fn, afterFn)
		}
	case *IndexExpression:
		walk(n.Indexed, node, ancestorChain, fn, afterFn)
		walk(n.Index, node, ancestorChain, fn, afterFn)
	case *IfExpression:
		for _, clause := range n.Clauses {
			walk(clause.Test, node, ancestorChain, fn, afterFn)
			walk(clause.Body, node, ancestorChain, fn, afterFn)
		}
		walk(n.Else, node, ancestorChain, fn, afterFn)
	case *LoopExpression:
		walk(n.Init, node, ancestorChain, fn, afterFn)
		walk(n.Test, node, ancestorChain, fn, afterFn)
		walk(n.Update, node, ancestorChain, fn, afterFn)
		walk(n.Body, node, ancestorChain, fn, afterFn)
	}

	if afterFn != nil {
		action, err := afterFn(node, parent, *ancestorChain, true)

		if err != nil {
			panic(err)
		}

		if action == StopTraversal {
			panic(StopTraversal)
		}
	}
}
