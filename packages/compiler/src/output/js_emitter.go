package output

import (
	"fmt"
	"strings"
)

var indentWith = "  "

var binaryOperators = map[BinaryOperator]string{
	BinaryOperatorAssign:       "=",
	BinaryOperatorEquals:       "==",
	BinaryOperatorNotEquals:    "!=",
	BinaryOperatorIdentical:    "===",
	BinaryOperatorNotIdentical: "!==",
	BinaryOperatorAnd:          "&&",
	BinaryOperatorOr:           "||",
	BinaryOperatorPlus:         "+",
	BinaryOperatorMinus:        "-",
	BinaryOperatorLower:        "<",
	BinaryOperatorBigger:       ">",
}

var stringEscapes = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// EmitterVisitorContext accumulates emitted parts into indented lines
type EmitterVisitorContext struct {
	lines  []string
	parts  []string
	indent int
}

// NewEmitterVisitorContext creates a new EmitterVisitorContext
func NewEmitterVisitorContext(indent int) *EmitterVisitorContext {
	return &EmitterVisitorContext{indent: indent}
}

// Print appends a part to the current line
func (ctx *EmitterVisitorContext) Print(part string) {
	if len(part) > 0 {
		ctx.parts = append(ctx.parts, part)
	}
}

// Println appends a part and finishes the current line
func (ctx *EmitterVisitorContext) Println(lastPart string) {
	ctx.Print(lastPart)
	ctx.lines = append(ctx.lines, strings.Repeat(indentWith, ctx.indent)+strings.Join(ctx.parts, ""))
	ctx.parts = nil
}

// IncIndent increases the indent
func (ctx *EmitterVisitorContext) IncIndent() {
	ctx.indent++
}

// DecIndent decreases the indent
func (ctx *EmitterVisitorContext) DecIndent() {
	ctx.indent--
}

// ToSource joins everything emitted so far into source text
func (ctx *EmitterVisitorContext) ToSource() string {
	lines := ctx.lines
	if len(ctx.parts) > 0 {
		lines = append(lines, strings.Repeat(indentWith, ctx.indent)+strings.Join(ctx.parts, ""))
	}
	return strings.Join(lines, "\n")
}

// JSEmitter renders output IR nodes to target-runtime source text. The
// emitted syntax is the stable contract between binding synthesis and the
// generated program; synthesis itself never concatenates source strings.
type JSEmitter struct{}

// NewJSEmitter creates a new JSEmitter
func NewJSEmitter() *JSEmitter {
	return &JSEmitter{}
}

// EmitExpression renders a single expression
func (e *JSEmitter) EmitExpression(expr OutputExpression) string {
	ctx := NewEmitterVisitorContext(0)
	expr.VisitExpression(e, ctx)
	return ctx.ToSource()
}

// EmitStatement renders a single statement
func (e *JSEmitter) EmitStatement(stmt OutputStatement) string {
	return e.EmitStatements([]OutputStatement{stmt})
}

// EmitStatements renders a statement list
func (e *JSEmitter) EmitStatements(stmts []OutputStatement) string {
	ctx := NewEmitterVisitorContext(0)
	e.visitAllStatements(stmts, ctx)
	return ctx.ToSource()
}

func (e *JSEmitter) getContext(context interface{}) *EmitterVisitorContext {
	if ctx, ok := context.(*EmitterVisitorContext); ok {
		return ctx
	}
	panic("context must be *EmitterVisitorContext")
}

func (e *JSEmitter) visitAllExpressions(exprs []OutputExpression, ctx *EmitterVisitorContext, separator string) {
	for i, expr := range exprs {
		if i > 0 {
			ctx.Print(separator)
		}
		expr.VisitExpression(e, ctx)
	}
}

func (e *JSEmitter) visitAllStatements(stmts []OutputStatement, ctx *EmitterVisitorContext) {
	for _, stmt := range stmts {
		stmt.VisitStatement(e, ctx)
	}
}

// VisitReadVarExpr visits a variable read expression
func (e *JSEmitter) VisitReadVarExpr(ast *ReadVarExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	ctx.Print(ast.Name)
	return nil
}

// VisitReadPropExpr visits a property read expression
func (e *JSEmitter) VisitReadPropExpr(ast *ReadPropExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	ast.Receiver.VisitExpression(e, ctx)
	ctx.Print(".")
	ctx.Print(ast.Name)
	return nil
}

// VisitReadKeyExpr visits a keyed read expression
func (e *JSEmitter) VisitReadKeyExpr(ast *ReadKeyExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	ast.Receiver.VisitExpression(e, ctx)
	ctx.Print("[")
	ast.Index.VisitExpression(e, ctx)
	ctx.Print("]")
	return nil
}

// VisitLiteralExpr visits a literal expression
func (e *JSEmitter) VisitLiteralExpr(ast *LiteralExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	switch value := ast.Value.(type) {
	case nil:
		ctx.Print("null")
	case string:
		ctx.Print("'" + stringEscapes.Replace(value) + "'")
	case bool:
		ctx.Print(fmt.Sprintf("%t", value))
	default:
		ctx.Print(fmt.Sprintf("%v", value))
	}
	return nil
}

// VisitLiteralArrayExpr visits a literal array expression
func (e *JSEmitter) VisitLiteralArrayExpr(ast *LiteralArrayExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	ctx.Print("[")
	e.visitAllExpressions(ast.Entries, ctx, ", ")
	ctx.Print("]")
	return nil
}

// VisitLiteralMapExpr visits a literal map expression
func (e *JSEmitter) VisitLiteralMapExpr(ast *LiteralMapExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	ctx.Print("{ ")
	for i, entry := range ast.Entries {
		if i > 0 {
			ctx.Print(", ")
		}
		if entry.Quoted {
			ctx.Print("'" + stringEscapes.Replace(entry.Key) + "': ")
		} else {
			ctx.Print(entry.Key + ": ")
		}
		entry.Value.VisitExpression(e, ctx)
	}
	ctx.Print(" }")
	return nil
}

// VisitInvokeFunctionExpr visits a function invocation expression
func (e *JSEmitter) VisitInvokeFunctionExpr(ast *InvokeFunctionExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	ast.Fn.VisitExpression(e, ctx)
	ctx.Print("(")
	e.visitAllExpressions(ast.Args, ctx, ", ")
	ctx.Print(")")
	return nil
}

// VisitBinaryOperatorExpr visits a binary operator expression
func (e *JSEmitter) VisitBinaryOperatorExpr(ast *BinaryOperatorExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	operator, ok := binaryOperators[ast.Operator]
	if !ok {
		panic(fmt.Sprintf("unknown operator %d", ast.Operator))
	}
	e.visitOperand(ast.Operator, ast.Lhs, ctx)
	ctx.Print(" " + operator + " ")
	e.visitOperand(ast.Operator, ast.Rhs, ctx)
	return nil
}

// visitOperand parenthesizes nested binary operands so precedence follows
// the tree, not the target language's operator table. Assignment binds
// loosest, so its operands never need wrapping.
func (e *JSEmitter) visitOperand(parent BinaryOperator, operand OutputExpression, ctx *EmitterVisitorContext) {
	if nested, ok := operand.(*BinaryOperatorExpr); ok && parent != BinaryOperatorAssign {
		ctx.Print("(")
		nested.VisitExpression(e, ctx)
		ctx.Print(")")
		return
	}
	operand.VisitExpression(e, ctx)
}

// VisitNotExpr visits a logical negation expression
func (e *JSEmitter) VisitNotExpr(ast *NotExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	ctx.Print("!")
	if nested, ok := ast.Condition.(*BinaryOperatorExpr); ok {
		ctx.Print("(")
		nested.VisitExpression(e, ctx)
		ctx.Print(")")
		return nil
	}
	ast.Condition.VisitExpression(e, ctx)
	return nil
}

// VisitConditionalExpr visits a conditional expression
func (e *JSEmitter) VisitConditionalExpr(ast *ConditionalExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	ctx.Print("(")
	ast.Condition.VisitExpression(e, ctx)
	ctx.Print(" ? ")
	ast.TrueCase.VisitExpression(e, ctx)
	ctx.Print(" : ")
	ast.FalseCase.VisitExpression(e, ctx)
	ctx.Print(")")
	return nil
}

// VisitRawExpr visits a raw source fragment
func (e *JSEmitter) VisitRawExpr(ast *RawExpr, context interface{}) interface{} {
	ctx := e.getContext(context)
	ctx.Print(ast.Source)
	return nil
}

// VisitExpressionStmt visits an expression statement
func (e *JSEmitter) VisitExpressionStmt(stmt *ExpressionStatement, context interface{}) interface{} {
	ctx := e.getContext(context)
	stmt.Expr.VisitExpression(e, ctx)
	ctx.Println(";")
	return nil
}

// VisitDeclareVarStmt visits a variable declaration statement
func (e *JSEmitter) VisitDeclareVarStmt(stmt *DeclareVarStmt, context interface{}) interface{} {
	ctx := e.getContext(context)
	ctx.Print("var " + stmt.Name)
	if stmt.Value != nil {
		ctx.Print(" = ")
		stmt.Value.VisitExpression(e, ctx)
	}
	ctx.Println(";")
	return nil
}

// VisitIfStmt visits an if statement
func (e *JSEmitter) VisitIfStmt(stmt *IfStmt, context interface{}) interface{} {
	ctx := e.getContext(context)
	ctx.Print("if (")
	stmt.Condition.VisitExpression(e, ctx)
	ctx.Println(") {")
	ctx.IncIndent()
	e.visitAllStatements(stmt.TrueCase, ctx)
	ctx.DecIndent()
	if len(stmt.FalseCase) > 0 {
		ctx.Println("} else {")
		ctx.IncIndent()
		e.visitAllStatements(stmt.FalseCase, ctx)
		ctx.DecIndent()
	}
	ctx.Println("}")
	return nil
}
