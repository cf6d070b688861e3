package parse

import (
	"github.com/Helset123/olang/internal/sourcecode"
)

var (
	logicalOperators = map[TokenType]BinaryOperator{
		DOUBLE_AMPERSAND: And,
		DOUBLE_PIPE:      Or,
	}
	comparisonOperators = map[TokenType]BinaryOperator{
		EQUAL_EQUAL:            Equal,
		EXCLAMATION_MARK_EQUAL: NotEqual,
		LESS_THAN:              LessThan,
		LESS_OR_EQUAL:          LessOrEqual,
		GREATER_THAN:           GreaterThan,
		GREATER_OR_EQUAL:       GreaterOrEqual,
	}
	additiveOperators = map[TokenType]BinaryOperator{
		PLUS:  Add,
		MINUS: Sub,
	}
	multiplicativeOperators = map[TokenType]BinaryOperator{
		ASTERISK: Mul,
		SLASH:    Div,
		PERCENT:  Mod,
	}
	exponentiationOperators = map[TokenType]BinaryOperator{
		DOUBLE_ASTERISK: Exponentiation,
	}

	assignmentOperators = map[TokenType]AssignmentOperator{
		EQUAL:       Set,
		PLUS_EQUAL:  PlusAssign,
		MINUS_EQUAL: MinusAssign,
		MUL_EQUAL:   MulAssign,
		DIV_EQUAL:   DivAssign,
		MOD_EQUAL:   ModAssign,
	}
)

// ParseSource tokenizes and parses source, the returned error is either a *LexerError or a *ParserError.
func ParseSource(source string) (*Program, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func MustParseSource(source string) *Program {
	program, err := ParseSource(source)
	if err != nil {
		panic(err)
	}
	return program
}

// Parse parses a token sequence ending with an EOF token, the first error aborts parsing.
func Parse(tokens []Token) (*Program, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		var end sourcecode.Region
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1].Region
			end = sourcecode.Region{Start: last.End, End: last.End}
		}
		tokens = append(tokens, Token{Type: EOF, Region: end})
	}

	p := &parser{tokens: tokens}
	program := &Program{}

	for p.current().Type != EOF {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		program.Expressions = append(program.Expressions, expr)
	}

	return program, nil
}

// A parser builds an AST from a token sequence using recursive descent, there is no error recovery.
type parser struct {
	tokens []Token
	t      int //index of the current token
}

func (p *parser) current() Token {
	return p.tokens[p.t]
}

func (p *parser) next() Token {
	if p.t+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.t+1]
}

func (p *parser) previous() Token {
	return p.tokens[p.t-1]
}

func (p *parser) advance() {
	if p.current().Type != EOF {
		p.t++
	}
}

func (p *parser) expectedTokenError(whileParsing NodeKind, expected TokenType) *ParserError {
	return &ParserError{
		Kind:         ExpectedToken,
		WhileParsing: whileParsing,
		Expected:     expected,
		Found:        p.current(),
	}
}

func (p *parser) unexpectedTokenError(whileParsing NodeKind) *ParserError {
	return &ParserError{
		Kind:         UnexpectedToken,
		WhileParsing: whileParsing,
		Found:        p.current(),
	}
}

// eat consumes the current token if it has the expected type.
func (p *parser) eat(whileParsing NodeKind, expected TokenType) (Token, error) {
	token := p.current()
	if token.Type != expected {
		return Token{}, p.expectedTokenError(whileParsing, expected)
	}
	p.advance()
	return token, nil
}

// regionFrom returns the region going from start to the end of the last consumed token.
func (p *parser) regionFrom(start sourcecode.Position) sourcecode.Region {
	return sourcecode.Region{Start: start, End: p.previous().Region.End}
}

func (p *parser) parseExpression() (Node, error) {
	return p.parseLogical()
}

func (p *parser) parseLogical() (Node, error) {
	return p.parseBinaryLevel(logicalOperators, p.parseComparison)
}

func (p *parser) parseComparison() (Node, error) {
	return p.parseBinaryLevel(comparisonOperators, p.parseAdditive)
}

func (p *parser) parseAdditive() (Node, error) {
	return p.parseBinaryLevel(additiveOperators, p.parseMultiplicative)
}

func (p *parser) parseMultiplicative() (Node, error) {
	return p.parseBinaryLevel(multiplicativeOperators, p.parseExponentiation)
}

// parseExponentiation is left-associative like the other levels: a ** b ** c is (a ** b) ** c.
func (p *parser) parseExponentiation() (Node, error) {
	return p.parseBinaryLevel(exponentiationOperators, p.parsePostfix)
}

// parseBinaryLevel parses one operand with parseOperand and then folds same-level operators
// and right operands into a left-deep tree.
func (p *parser) parseBinaryLevel(operators map[TokenType]BinaryOperator, parseOperand func() (Node, error)) (Node, error) {
	left, err := parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		operator, ok := operators[p.current().Type]
		if !ok {
			return left, nil
		}
		p.advance()

		right, err := parseOperand()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpression{
			NodeBase: NodeBase{Region: left.Base().Region.Span(right.Base().Region)},
			Operator: operator,
			Left:     left,
			Right:    right,
		}
	}
}

// parsePostfix parses a primary expression followed by any number of index suffixes.
// An opening bracket preceded by whitespace starts a new expression instead.
func (p *parser) parsePostfix() (Node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.current().Type == OPENING_BRACKET && !p.current().SpaceBefore {
		p.advance()

		index, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.eat(IndexNodeKind, CLOSING_BRACKET); err != nil {
			return nil, err
		}

		expr = &IndexExpression{
			NodeBase: NodeBase{Region: p.regionFrom(expr.Base().Region.Start)},
			Indexed:  expr,
			Index:    index,
		}
	}

	return expr, nil
}

func (p *parser) parsePrimary() (Node, error) {
	token := p.current()
	start := token.Region.Start

	switch token.Type {
	case INT_LITERAL:
		p.advance()
		return &IntLiteral{NodeBase: NodeBase{Region: token.Region}, Value: token.Int}, nil
	case STRING_LITERAL:
		p.advance()
		return &StringLiteral{NodeBase: NodeBase{Region: token.Region}, Value: token.Raw}, nil
	case TRUE_KEYWORD, FALSE_KEYWORD:
		p.advance()
		return &BooleanLiteral{NodeBase: NodeBase{Region: token.Region}, Value: token.Type == TRUE_KEYWORD}, nil
	case NULL_KEYWORD:
		p.advance()
		return &NullLiteral{NodeBase: NodeBase{Region: token.Region}}, nil
	case CONTINUE_KEYWORD:
		p.advance()
		return &ContinueExpression{NodeBase: NodeBase{Region: token.Region}}, nil
	case BREAK_KEYWORD:
		p.advance()
		return &BreakExpression{NodeBase: NodeBase{Region: token.Region}}, nil
	case IDENTIFIER:
		return p.parseIdentifierStart()
	case OPENING_PARENTHESIS:
		p.advance()

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.eat(ParenthesizedNodeKind, CLOSING_PARENTHESIS); err != nil {
			return nil, err
		}

		//the parentheses are part of the expression
		expr.BasePtr().Region = p.regionFrom(start)
		return expr, nil
	case OPENING_CURLY_BRACKET:
		return p.parseBlock()
	case OPENING_BRACKET:
		return p.parseList()
	case VAR_KEYWORD:
		return p.parseVariableDeclaration()
	case FUN_KEYWORD:
		return p.parseFunction()
	case IF_KEYWORD:
		return p.parseIf()
	case WHILE_KEYWORD:
		return p.parseWhile()
	case FOR_KEYWORD:
		return p.parseFor()
	case LOOP_KEYWORD:
		return p.parseLoop()
	default:
		return nil, p.unexpectedTokenError(GenericNodeKind)
	}
}

// parseIdentifierStart parses an expression starting with an identifier, the following token
// decides between a call, an assignment, an update and a simple reference.
func (p *parser) parseIdentifierStart() (Node, error) {
	ident := p.current()
	nextType := p.next().Type

	switch {
	case nextType == OPENING_PARENTHESIS:
		return p.parseCall()
	case nextType == PLUS_PLUS || nextType == MINUS_MINUS:
		p.advance()
		p.advance()

		operator := Increment
		if nextType == MINUS_MINUS {
			operator = Decrement
		}

		return &UpdateExpression{
			NodeBase: NodeBase{Region: p.regionFrom(ident.Region.Start)},
			Name:     ident.Raw,
			Operator: operator,
		}, nil
	}

	if operator, ok := assignmentOperators[nextType]; ok {
		p.advance()
		p.advance()

		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		return &Assignment{
			NodeBase: NodeBase{Region: ident.Region.Span(value.Base().Region)},
			Name:     ident.Raw,
			Operator: operator,
			Value:    value,
		}, nil
	}

	p.advance()
	return &IdentifierLiteral{NodeBase: NodeBase{Region: ident.Region}, Name: ident.Raw}, nil
}

func (p *parser) parseCall() (Node, error) {
	callee, err := p.eat(CallNodeKind, IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(CallNodeKind, OPENING_PARENTHESIS); err != nil {
		return nil, err
	}

	var args []Node

	for p.current().Type != CLOSING_PARENTHESIS {
		if p.current().Type == EOF {
			return nil, p.expectedTokenError(CallNodeKind, CLOSING_PARENTHESIS)
		}

		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.advance()

	return &CallExpression{
		NodeBase:  NodeBase{Region: p.regionFrom(callee.Region.Start)},
		Callee:    callee.Raw,
		Arguments: args,
	}, nil
}

func (p *parser) parseBlock() (*Block, error) {
	opening, err := p.eat(BlockNodeKind, OPENING_CURLY_BRACKET)
	if err != nil {
		return nil, err
	}

	block := &Block{}

	for p.current().Type != CLOSING_CURLY_BRACKET {
		if p.current().Type == EOF {
			return nil, p.expectedTokenError(BlockNodeKind, CLOSING_CURLY_BRACKET)
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		block.Expressions = append(block.Expressions, expr)
	}
	p.advance()

	block.Region = p.regionFrom(opening.Region.Start)
	return block, nil
}

func (p *parser) parseList() (Node, error) {
	opening, err := p.eat(ListNodeKind, OPENING_BRACKET)
	if err != nil {
		return nil, err
	}

	list := &ListLiteral{}

	for p.current().Type != CLOSING_BRACKET {
		if p.current().Type == EOF {
			return nil, p.expectedTokenError(ListNodeKind, CLOSING_BRACKET)
		}

		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, elem)
	}
	p.advance()

	list.Region = p.regionFrom(opening.Region.Start)
	return list, nil
}

func (p *parser) parseVariableDeclaration() (Node, error) {
	keyword, err := p.eat(VariableDeclarationNodeKind, VAR_KEYWORD)
	if err != nil {
		return nil, err
	}

	name, err := p.eat(VariableDeclarationNodeKind, IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(VariableDeclarationNodeKind, EQUAL); err != nil {
		return nil, err
	}

	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &VariableDeclaration{
		NodeBase: NodeBase{Region: keyword.Region.Span(init.Base().Region)},
		Name:     name.Raw,
		Init:     init,
	}, nil
}

func (p *parser) parseFunction() (Node, error) {
	keyword, err := p.eat(FunctionNodeKind, FUN_KEYWORD)
	if err != nil {
		return nil, err
	}

	if _, err := p.eat(FunctionNodeKind, OPENING_PARENTHESIS); err != nil {
		return nil, err
	}

	parameters := []string{}

parameters:
	for {
		token := p.current()

		switch token.Type {
		case CLOSING_PARENTHESIS:
			p.advance()
			break parameters
		case IDENTIFIER:
			parameters = append(parameters, token.Raw)
			p.advance()
		default:
			return nil, p.unexpectedTokenError(FunctionNodeKind)
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FunctionLiteral{
		NodeBase:   NodeBase{Region: keyword.Region.Span(body.Region)},
		Parameters: parameters,
		Body:       body,
	}, nil
}

func (p *parser) parseIf() (Node, error) {
	keyword, err := p.eat(IfNodeKind, IF_KEYWORD)
	if err != nil {
		return nil, err
	}

	ifExpr := &IfExpression{}

	clause, err := p.parseIfClause()
	if err != nil {
		return nil, err
	}
	ifExpr.Clauses = append(ifExpr.Clauses, clause)

	for p.current().Type == ELIF_KEYWORD {
		p.advance()

		clause, err := p.parseIfClause()
		if err != nil {
			return nil, err
		}
		ifExpr.Clauses = append(ifExpr.Clauses, clause)
	}

	if p.current().Type == ELSE_KEYWORD {
		p.advance()

		ifExpr.Else, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	ifExpr.Region = p.regionFrom(keyword.Region.Start)
	return ifExpr, nil
}

func (p *parser) parseIfClause() (IfClause, error) {
	test, err := p.parseExpression()
	if err != nil {
		return IfClause{}, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return IfClause{}, err
	}

	return IfClause{Test: test, Body: body}, nil
}

func (p *parser) parseWhile() (Node, error) {
	keyword, err := p.eat(LoopNodeKind, WHILE_KEYWORD)
	if err != nil {
		return nil, err
	}

	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &LoopExpression{
		NodeBase: NodeBase{Region: keyword.Region.Span(body.Region)},
		Test:     test,
		Body:     body,
	}, nil
}

// parseFor parses for <init> <test> <update> <block>, the three expressions are not separated.
func (p *parser) parseFor() (Node, error) {
	keyword, err := p.eat(LoopNodeKind, FOR_KEYWORD)
	if err != nil {
		return nil, err
	}

	var slots [3]Node
	for i := range slots {
		slots[i], err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &LoopExpression{
		NodeBase: NodeBase{Region: keyword.Region.Span(body.Region)},
		Init:     slots[0],
		Test:     slots[1],
		Update:   slots[2],
		Body:     body,
	}, nil
}

func (p *parser) parseLoop() (Node, error) {
	keyword, err := p.eat(LoopNodeKind, LOOP_KEYWORD)
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &LoopExpression{
		NodeBase: NodeBase{Region: keyword.Region.Span(body.Region)},
		Body:     body,
	}, nil
}
