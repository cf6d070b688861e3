package parse

import (
	"strconv"

	"github.com/Helset123/olang/internal/sourcecode"
)

// A Node represents an immutable AST node, all node types embed NodeBase that implements the Node interface.
type Node interface {
	Base() NodeBase
	BasePtr() *NodeBase
	Kind() NodeKind
}

// NodeBase implements the Node interface.
type NodeBase struct {
	Region sourcecode.Region `json:"region"`
}

func (base NodeBase) Base() NodeBase {
	return base
}

func (base *NodeBase) BasePtr() *NodeBase {
	return base
}

// NodeKind names the kind of an expression, it is used in diagnostics.
type NodeKind uint8

const (
	GenericNodeKind NodeKind = iota
	IntNodeKind
	StringNodeKind
	BoolNodeKind
	NullNodeKind
	IdentifierNodeKind
	BlockNodeKind
	BinaryNodeKind
	UpdateNodeKind
	VariableDeclarationNodeKind
	AssignNodeKind
	FunctionNodeKind
	CallNodeKind
	ListNodeKind
	IndexNodeKind
	IfNodeKind
	LoopNodeKind
	ContinueNodeKind
	BreakNodeKind
	ParenthesizedNodeKind
)

var nodeKindNames = [...]string{
	GenericNodeKind:             "generic",
	IntNodeKind:                 "Int",
	StringNodeKind:              "String",
	BoolNodeKind:                "Bool",
	NullNodeKind:                "Null",
	IdentifierNodeKind:          "Identifier",
	BlockNodeKind:               "Block",
	BinaryNodeKind:              "Binary",
	UpdateNodeKind:              "Update",
	VariableDeclarationNodeKind: "VariableDeclaration",
	AssignNodeKind:              "Assign",
	FunctionNodeKind:            "Function",
	CallNodeKind:                "Call",
	ListNodeKind:                "List",
	IndexNodeKind:               "Index",
	IfNodeKind:                  "If",
	LoopNodeKind:                "Loop",
	ContinueNodeKind:            "Continue",
	BreakNodeKind:               "Break",
	ParenthesizedNodeKind:       "Parenthesized",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "InvalidNodeKind(" + strconv.Itoa(int(k)) + ")"
}

type Program struct {
	Expressions []Node `json:"expressions"`
}

type IntLiteral struct {
	NodeBase
	Value int64 `json:"value"`
}

type StringLiteral struct {
	NodeBase
	Value string `json:"value"`
}

type BooleanLiteral struct {
	NodeBase
	Value bool `json:"value"`
}

type NullLiteral struct {
	NodeBase
}

type IdentifierLiteral struct {
	NodeBase
	Name string `json:"name"`
}

// A Block is a sequence of expressions, evaluating a block pushes a new scope
// unless the block is the body of a function or a loop.
type Block struct {
	NodeBase
	Expressions []Node `json:"expressions"`
}

type BinaryExpression struct {
	NodeBase
	Operator BinaryOperator `json:"operator"`
	Left     Node           `json:"left"`
	Right    Node           `json:"right"`
}

type UpdateExpression struct {
	NodeBase
	Name     string         `json:"name"`
	Operator UpdateOperator `json:"operator"`
}

type VariableDeclaration struct {
	NodeBase
	Name string `json:"name"`
	Init Node   `json:"init"`
}

type Assignment struct {
	NodeBase
	Name     string             `json:"name"`
	Operator AssignmentOperator `json:"operator"`
	Value    Node               `json:"value"`
}

type FunctionLiteral struct {
	NodeBase
	Parameters []string `json:"parameters"`
	Body       *Block   `json:"body"`
}

type CallExpression struct {
	NodeBase
	Callee    string `json:"callee"`
	Arguments []Node `json:"arguments"`
}

type ListLiteral struct {
	NodeBase
	Elements []Node `json:"elements"`
}

type IndexExpression struct {
	NodeBase
	Indexed Node `json:"indexed"`
	Index   Node `json:"index"`
}

type IfClause struct {
	Test Node   `json:"test"`
	Body *Block `json:"body"`
}

type IfExpression struct {
	NodeBase
	Clauses []IfClause `json:"clauses"`
	Else    *Block     `json:"else,omitempty"` //can be nil
}

// A LoopExpression represents while, for and loop expressions; nil slots are absent.
type LoopExpression struct {
	NodeBase
	Init   Node   `json:"init,omitempty"`
	Test   Node   `json:"test,omitempty"`
	Update Node   `json:"update,omitempty"`
	Body   *Block `json:"body"`
}

type ContinueExpression struct {
	NodeBase
}

type BreakExpression struct {
	NodeBase
}

func (*IntLiteral) Kind() NodeKind          { return IntNodeKind }
func (*StringLiteral) Kind() NodeKind       { return StringNodeKind }
func (*BooleanLiteral) Kind() NodeKind      { return BoolNodeKind }
func (*NullLiteral) Kind() NodeKind         { return NullNodeKind }
func (*IdentifierLiteral) Kind() NodeKind   { return IdentifierNodeKind }
func (*Block) Kind() NodeKind               { return BlockNodeKind }
func (*BinaryExpression) Kind() NodeKind    { return BinaryNodeKind }
func (*UpdateExpression) Kind() NodeKind    { return UpdateNodeKind }
func (*VariableDeclaration) Kind() NodeKind { return VariableDeclarationNodeKind }
func (*Assignment) Kind() NodeKind          { return AssignNodeKind }
func (*FunctionLiteral) Kind() NodeKind     { return FunctionNodeKind }
func (*CallExpression) Kind() NodeKind      { return CallNodeKind }
func (*ListLiteral) Kind() NodeKind         { return ListNodeKind }
func (*IndexExpression) Kind() NodeKind     { return IndexNodeKind }
func (*IfExpression) Kind() NodeKind        { return IfNodeKind }
func (*LoopExpression) Kind() NodeKind      { return LoopNodeKind }
func (*ContinueExpression) Kind() NodeKind  { return ContinueNodeKind }
func (*BreakExpression) Kind() NodeKind     { return BreakNodeKind }

type BinaryOperator uint8

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Mod
	Exponentiation
	Equal
	NotEqual
	LessThan
	LessOrEqual
	GreaterThan
	GreaterOrEqual
	And
	Or
)

var binaryOperatorStrings = [...]string{
	Add:            "+",
	Sub:            "-",
	Mul:            "*",
	Div:            "/",
	Mod:            "%",
	Exponentiation: "**",
	Equal:          "==",
	NotEqual:       "!=",
	LessThan:       "<",
	LessOrEqual:    "<=",
	GreaterThan:    ">",
	GreaterOrEqual: ">=",
	And:            "&&",
	Or:             "||",
}

func (operator BinaryOperator) String() string {
	if int(operator) < len(binaryOperatorStrings) {
		return binaryOperatorStrings[operator]
	}
	return "InvalidBinaryOperator(" + strconv.Itoa(int(operator)) + ")"
}

func (operator BinaryOperator) MarshalText() ([]byte, error) {
	return []byte(operator.String()), nil
}

type AssignmentOperator uint8

const (
	Set AssignmentOperator = iota
	PlusAssign
	MinusAssign
	MulAssign
	DivAssign
	ModAssign
)

var assignmentOperatorStrings = [...]string{
	Set:         "=",
	PlusAssign:  "+=",
	MinusAssign: "-=",
	MulAssign:   "*=",
	DivAssign:   "/=",
	ModAssign:   "%=",
}

func (operator AssignmentOperator) String() string {
	if int(operator) < len(assignmentOperatorStrings) {
		return assignmentOperatorStrings[operator]
	}
	return "InvalidAssignmentOperator(" + strconv.Itoa(int(operator)) + ")"
}

func (operator AssignmentOperator) MarshalText() ([]byte, error) {
	return []byte(operator.String()), nil
}

// BinaryOperator returns the operator applied by a compound assignment, ok is false for Set.
func (operator AssignmentOperator) BinaryOperator() (_ BinaryOperator, ok bool) {
	switch operator {
	case PlusAssign:
		return Add, true
	case MinusAssign:
		return Sub, true
	case MulAssign:
		return Mul, true
	case DivAssign:
		return Div, true
	case ModAssign:
		return Mod, true
	}
	return 0, false
}

type UpdateOperator uint8

const (
	Increment UpdateOperator = iota
	Decrement
)

func (operator UpdateOperator) String() string {
	if operator == Increment {
		return "++"
	}
	return "--"
}

func (operator UpdateOperator) MarshalText() ([]byte, error) {
	return []byte(operator.String()), nil
}
