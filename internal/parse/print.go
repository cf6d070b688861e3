package parse

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const PRINT_INDENT_UNIT = "  "

// Print writes an indented tree representation of node to w, one node per line.
func Print(w io.Writer, node Node) error {
	printer := &treePrinter{w: w}
	if err := Walk(node, printer.printNode, nil); err != nil {
		return err
	}
	return printer.writeErr
}

// PrintProgram prints every top-level expression of program, the first write error stops the printing.
func PrintProgram(w io.Writer, program *Program) error {
	printer := &treePrinter{w: w}
	if err := WalkProgram(program, printer.printNode, nil); err != nil {
		return err
	}
	return printer.writeErr
}

type treePrinter struct {
	w        io.Writer
	writeErr error
}

func (p *treePrinter) printNode(n, _ Node, ancestorChain []Node, _ bool) (TraversalAction, error) {
	indent := strings.Repeat(PRINT_INDENT_UNIT, len(ancestorChain))

	_, p.writeErr = fmt.Fprintf(p.w, "%s%s %s\n", indent, describeNode(n), n.Base().Region)
	if p.writeErr != nil {
		return StopTraversal, nil
	}
	return ContinueTraversal, nil
}

func SPrint(node Node) string {
	buf := &strings.Builder{}
	Print(buf, node)
	return buf.String()
}

func describeNode(node Node) string {
	kind := node.Kind().String()

	switch n := node.(type) {
	case *IntLiteral:
		return kind + " " + strconv.FormatInt(n.Value, 10)
	case *StringLiteral:
		return kind + " " + strconv.Quote(n.Value)
	case *BooleanLiteral:
		return kind + " " + strconv.FormatBool(n.Value)
	case *IdentifierLiteral:
		return kind + " " + n.Name
	case *BinaryExpression:
		return kind + " " + n.Operator.String()
	case *UpdateExpression:
		return kind + " " + n.Name + n.Operator.String()
	case *VariableDeclaration:
		return kind + " " + n.Name
	case *Assignment:
		return kind + " " + n.Name + " " + n.Operator.String()
	case *FunctionLiteral:
		return kind + " (" + strings.Join(n.Parameters, " ") + ")"
	case *CallExpression:
		return kind + " " + n.Callee
	case *IfExpression:
		return fmt.Sprintf("%s clauses=%d else=%t", kind, len(n.Clauses), n.Else != nil)
	default:
		return kind
	}
}
