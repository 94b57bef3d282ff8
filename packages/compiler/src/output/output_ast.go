package output

import (
	"github.com/VLVLKY/svelte/packages/compiler/src/util"
)

// BinaryOperator represents binary operators
type BinaryOperator int

const (
	BinaryOperatorAssign BinaryOperator = iota
	BinaryOperatorEquals
	BinaryOperatorNotEquals
	BinaryOperatorIdentical
	BinaryOperatorNotIdentical
	BinaryOperatorAnd
	BinaryOperatorOr
	BinaryOperatorPlus
	BinaryOperatorMinus
	BinaryOperatorLower
	BinaryOperatorBigger
)

// OutputExpression represents an expression in the output IR
type OutputExpression interface {
	GetSourceSpan() *util.ParseSourceSpan
	VisitExpression(visitor ExpressionVisitor, context interface{}) interface{}
	IsEquivalent(e OutputExpression) bool
}

// ExpressionVisitor is the interface for visiting expressions
type ExpressionVisitor interface {
	VisitReadVarExpr(ast *ReadVarExpr, context interface{}) interface{}
	VisitReadPropExpr(ast *ReadPropExpr, context interface{}) interface{}
	VisitReadKeyExpr(ast *ReadKeyExpr, context interface{}) interface{}
	VisitLiteralExpr(ast *LiteralExpr, context interface{}) interface{}
	VisitLiteralArrayExpr(ast *LiteralArrayExpr, context interface{}) interface{}
	VisitLiteralMapExpr(ast *LiteralMapExpr, context interface{}) interface{}
	VisitInvokeFunctionExpr(ast *InvokeFunctionExpr, context interface{}) interface{}
	VisitBinaryOperatorExpr(ast *BinaryOperatorExpr, context interface{}) interface{}
	VisitNotExpr(ast *NotExpr, context interface{}) interface{}
	VisitConditionalExpr(ast *ConditionalExpr, context interface{}) interface{}
	VisitRawExpr(ast *RawExpr, context interface{}) interface{}
}

// ExpressionBase is the base struct for all expressions
type ExpressionBase struct {
	SourceSpan *util.ParseSourceSpan
}

// GetSourceSpan returns the source span
func (e *ExpressionBase) GetSourceSpan() *util.ParseSourceSpan {
	return e.SourceSpan
}

// ReadVarExpr represents a variable read expression
type ReadVarExpr struct {
	ExpressionBase
	Name string
}

// NewReadVarExpr creates a new ReadVarExpr
func NewReadVarExpr(name string, sourceSpan *util.ParseSourceSpan) *ReadVarExpr {
	return &ReadVarExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Name:           name,
	}
}

// VisitExpression implements OutputExpression interface
func (r *ReadVarExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitReadVarExpr(r, context)
}

// IsEquivalent checks if two expressions are equivalent
func (r *ReadVarExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ReadVarExpr); ok {
		return r.Name == other.Name
	}
	return false
}

// Set creates an assignment expression
func (r *ReadVarExpr) Set(value OutputExpression) *BinaryOperatorExpr {
	return NewBinaryOperatorExpr(BinaryOperatorAssign, r, value, r.SourceSpan)
}

// Prop creates a property read on this variable
func (r *ReadVarExpr) Prop(name string) *ReadPropExpr {
	return NewReadPropExpr(r, name, r.SourceSpan)
}

// Key creates a keyed read on this variable
func (r *ReadVarExpr) Key(index OutputExpression) *ReadKeyExpr {
	return NewReadKeyExpr(r, index, r.SourceSpan)
}

// ReadPropExpr represents a property read expression
type ReadPropExpr struct {
	ExpressionBase
	Receiver OutputExpression
	Name     string
}

// NewReadPropExpr creates a new ReadPropExpr
func NewReadPropExpr(receiver OutputExpression, name string, sourceSpan *util.ParseSourceSpan) *ReadPropExpr {
	return &ReadPropExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Receiver:       receiver,
		Name:           name,
	}
}

// VisitExpression implements OutputExpression interface
func (r *ReadPropExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitReadPropExpr(r, context)
}

// IsEquivalent checks if two expressions are equivalent
func (r *ReadPropExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ReadPropExpr); ok {
		return r.Name == other.Name && r.Receiver.IsEquivalent(other.Receiver)
	}
	return false
}

// Set creates an assignment to this property
func (r *ReadPropExpr) Set(value OutputExpression) *BinaryOperatorExpr {
	return NewBinaryOperatorExpr(BinaryOperatorAssign, r, value, r.SourceSpan)
}

// Prop creates a property read on this property
func (r *ReadPropExpr) Prop(name string) *ReadPropExpr {
	return NewReadPropExpr(r, name, r.SourceSpan)
}

// ReadKeyExpr represents a keyed read expression
type ReadKeyExpr struct {
	ExpressionBase
	Receiver OutputExpression
	Index    OutputExpression
}

// NewReadKeyExpr creates a new ReadKeyExpr
func NewReadKeyExpr(receiver, index OutputExpression, sourceSpan *util.ParseSourceSpan) *ReadKeyExpr {
	return &ReadKeyExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Receiver:       receiver,
		Index:          index,
	}
}

// VisitExpression implements OutputExpression interface
func (r *ReadKeyExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitReadKeyExpr(r, context)
}

// IsEquivalent checks if two expressions are equivalent
func (r *ReadKeyExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ReadKeyExpr); ok {
		return r.Receiver.IsEquivalent(other.Receiver) && r.Index.IsEquivalent(other.Index)
	}
	return false
}

// Prop creates a property read on this keyed read
func (r *ReadKeyExpr) Prop(name string) *ReadPropExpr {
	return NewReadPropExpr(r, name, r.SourceSpan)
}

// LiteralExpr represents a literal expression
type LiteralExpr struct {
	ExpressionBase
	Value interface{} // number | string | bool | nil
}

// NewLiteralExpr creates a new LiteralExpr
func NewLiteralExpr(value interface{}, sourceSpan *util.ParseSourceSpan) *LiteralExpr {
	return &LiteralExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Value:          value,
	}
}

// VisitExpression implements OutputExpression interface
func (l *LiteralExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteralExpr(l, context)
}

// IsEquivalent checks if two expressions are equivalent
func (l *LiteralExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*LiteralExpr); ok {
		return l.Value == other.Value
	}
	return false
}

// LiteralArrayExpr represents a literal array expression
type LiteralArrayExpr struct {
	ExpressionBase
	Entries []OutputExpression
}

// NewLiteralArrayExpr creates a new LiteralArrayExpr
func NewLiteralArrayExpr(entries []OutputExpression, sourceSpan *util.ParseSourceSpan) *LiteralArrayExpr {
	return &LiteralArrayExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Entries:        entries,
	}
}

// VisitExpression implements OutputExpression interface
func (l *LiteralArrayExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteralArrayExpr(l, context)
}

// IsEquivalent checks if two expressions are equivalent
func (l *LiteralArrayExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*LiteralArrayExpr); ok {
		return areAllEquivalent(l.Entries, other.Entries)
	}
	return false
}

// LiteralMapEntry represents one key/value pair of a literal map
type LiteralMapEntry struct {
	Key    string
	Value  OutputExpression
	Quoted bool
}

// NewLiteralMapEntry creates a new LiteralMapEntry
func NewLiteralMapEntry(key string, value OutputExpression, quoted bool) *LiteralMapEntry {
	return &LiteralMapEntry{Key: key, Value: value, Quoted: quoted}
}

// LiteralMapExpr represents a literal map expression
type LiteralMapExpr struct {
	ExpressionBase
	Entries []*LiteralMapEntry
}

// NewLiteralMapExpr creates a new LiteralMapExpr
func NewLiteralMapExpr(entries []*LiteralMapEntry, sourceSpan *util.ParseSourceSpan) *LiteralMapExpr {
	return &LiteralMapExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Entries:        entries,
	}
}

// VisitExpression implements OutputExpression interface
func (l *LiteralMapExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitLiteralMapExpr(l, context)
}

// IsEquivalent checks if two expressions are equivalent
func (l *LiteralMapExpr) IsEquivalent(e OutputExpression) bool {
	other, ok := e.(*LiteralMapExpr)
	if !ok || len(l.Entries) != len(other.Entries) {
		return false
	}
	for i, entry := range l.Entries {
		if entry.Key != other.Entries[i].Key || !entry.Value.IsEquivalent(other.Entries[i].Value) {
			return false
		}
	}
	return true
}

// InvokeFunctionExpr represents a function invocation expression
type InvokeFunctionExpr struct {
	ExpressionBase
	Fn   OutputExpression
	Args []OutputExpression
}

// NewInvokeFunctionExpr creates a new InvokeFunctionExpr
func NewInvokeFunctionExpr(fn OutputExpression, args []OutputExpression, sourceSpan *util.ParseSourceSpan) *InvokeFunctionExpr {
	return &InvokeFunctionExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Fn:             fn,
		Args:           args,
	}
}

// VisitExpression implements OutputExpression interface
func (i *InvokeFunctionExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitInvokeFunctionExpr(i, context)
}

// IsEquivalent checks if two expressions are equivalent
func (i *InvokeFunctionExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*InvokeFunctionExpr); ok {
		return i.Fn.IsEquivalent(other.Fn) && areAllEquivalent(i.Args, other.Args)
	}
	return false
}

// BinaryOperatorExpr represents a binary operator expression
type BinaryOperatorExpr struct {
	ExpressionBase
	Operator BinaryOperator
	Lhs      OutputExpression
	Rhs      OutputExpression
}

// NewBinaryOperatorExpr creates a new BinaryOperatorExpr
func NewBinaryOperatorExpr(operator BinaryOperator, lhs, rhs OutputExpression, sourceSpan *util.ParseSourceSpan) *BinaryOperatorExpr {
	return &BinaryOperatorExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Operator:       operator,
		Lhs:            lhs,
		Rhs:            rhs,
	}
}

// VisitExpression implements OutputExpression interface
func (b *BinaryOperatorExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitBinaryOperatorExpr(b, context)
}

// IsEquivalent checks if two expressions are equivalent
func (b *BinaryOperatorExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*BinaryOperatorExpr); ok {
		return b.Operator == other.Operator && b.Lhs.IsEquivalent(other.Lhs) && b.Rhs.IsEquivalent(other.Rhs)
	}
	return false
}

// NotExpr represents a logical negation expression
type NotExpr struct {
	ExpressionBase
	Condition OutputExpression
}

// NewNotExpr creates a new NotExpr
func NewNotExpr(condition OutputExpression, sourceSpan *util.ParseSourceSpan) *NotExpr {
	return &NotExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Condition:      condition,
	}
}

// VisitExpression implements OutputExpression interface
func (n *NotExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitNotExpr(n, context)
}

// IsEquivalent checks if two expressions are equivalent
func (n *NotExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*NotExpr); ok {
		return n.Condition.IsEquivalent(other.Condition)
	}
	return false
}

// ConditionalExpr represents a conditional (ternary) expression
type ConditionalExpr struct {
	ExpressionBase
	Condition OutputExpression
	TrueCase  OutputExpression
	FalseCase OutputExpression
}

// NewConditionalExpr creates a new ConditionalExpr
func NewConditionalExpr(condition, trueCase, falseCase OutputExpression, sourceSpan *util.ParseSourceSpan) *ConditionalExpr {
	return &ConditionalExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Condition:      condition,
		TrueCase:       trueCase,
		FalseCase:      falseCase,
	}
}

// VisitExpression implements OutputExpression interface
func (c *ConditionalExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitConditionalExpr(c, context)
}

// IsEquivalent checks if two expressions are equivalent
func (c *ConditionalExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*ConditionalExpr); ok {
		return c.Condition.IsEquivalent(other.Condition) &&
			c.TrueCase.IsEquivalent(other.TrueCase) &&
			c.FalseCase.IsEquivalent(other.FalseCase)
	}
	return false
}

// RawExpr wraps a pre-resolved source fragment sliced from the component
// source by the expression resolver. The emitter prints it verbatim.
type RawExpr struct {
	ExpressionBase
	Source string
}

// NewRawExpr creates a new RawExpr
func NewRawExpr(source string, sourceSpan *util.ParseSourceSpan) *RawExpr {
	return &RawExpr{
		ExpressionBase: ExpressionBase{SourceSpan: sourceSpan},
		Source:         source,
	}
}

// VisitExpression implements OutputExpression interface
func (r *RawExpr) VisitExpression(visitor ExpressionVisitor, context interface{}) interface{} {
	return visitor.VisitRawExpr(r, context)
}

// IsEquivalent checks if two expressions are equivalent
func (r *RawExpr) IsEquivalent(e OutputExpression) bool {
	if other, ok := e.(*RawExpr); ok {
		return r.Source == other.Source
	}
	return false
}

// Set creates an assignment through this fragment
func (r *RawExpr) Set(value OutputExpression) *BinaryOperatorExpr {
	return NewBinaryOperatorExpr(BinaryOperatorAssign, r, value, r.SourceSpan)
}

// areAllEquivalent checks pairwise equivalence of two expression slices
func areAllEquivalent(a, b []OutputExpression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEquivalent(b[i]) {
			return false
		}
	}
	return true
}

// StatementVisitor is the interface for visiting statements
type StatementVisitor interface {
	VisitExpressionStmt(stmt *ExpressionStatement, context interface{}) interface{}
	VisitDeclareVarStmt(stmt *DeclareVarStmt, context interface{}) interface{}
	VisitIfStmt(stmt *IfStmt, context interface{}) interface{}
}

// OutputStatement represents a statement in the output IR
type OutputStatement interface {
	GetSourceSpan() *util.ParseSourceSpan
	VisitStatement(visitor StatementVisitor, context interface{}) interface{}
	IsEquivalent(stmt OutputStatement) bool
}

// StatementBase is the base struct for all statements
type StatementBase struct {
	SourceSpan *util.ParseSourceSpan
}

// GetSourceSpan returns the source span
func (s *StatementBase) GetSourceSpan() *util.ParseSourceSpan {
	return s.SourceSpan
}

// ExpressionStatement represents an expression used as a statement
type ExpressionStatement struct {
	StatementBase
	Expr OutputExpression
}

// NewExpressionStatement creates a new ExpressionStatement
func NewExpressionStatement(expr OutputExpression, sourceSpan *util.ParseSourceSpan) *ExpressionStatement {
	return &ExpressionStatement{
		StatementBase: StatementBase{SourceSpan: sourceSpan},
		Expr:          expr,
	}
}

// VisitStatement implements OutputStatement interface
func (e *ExpressionStatement) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitExpressionStmt(e, context)
}

// IsEquivalent checks if two statements are equivalent
func (e *ExpressionStatement) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*ExpressionStatement); ok {
		return e.Expr.IsEquivalent(other.Expr)
	}
	return false
}

// DeclareVarStmt represents a variable declaration statement
type DeclareVarStmt struct {
	StatementBase
	Name  string
	Value OutputExpression
}

// NewDeclareVarStmt creates a new DeclareVarStmt
func NewDeclareVarStmt(name string, value OutputExpression, sourceSpan *util.ParseSourceSpan) *DeclareVarStmt {
	return &DeclareVarStmt{
		StatementBase: StatementBase{SourceSpan: sourceSpan},
		Name:          name,
		Value:         value,
	}
}

// VisitStatement implements OutputStatement interface
func (d *DeclareVarStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitDeclareVarStmt(d, context)
}

// IsEquivalent checks if two statements are equivalent
func (d *DeclareVarStmt) IsEquivalent(stmt OutputStatement) bool {
	if other, ok := stmt.(*DeclareVarStmt); ok {
		if d.Name != other.Name {
			return false
		}
		if d.Value == nil || other.Value == nil {
			return d.Value == other.Value
		}
		return d.Value.IsEquivalent(other.Value)
	}
	return false
}

// IfStmt represents an if statement
type IfStmt struct {
	StatementBase
	Condition OutputExpression
	TrueCase  []OutputStatement
	FalseCase []OutputStatement
}

// NewIfStmt creates a new IfStmt
func NewIfStmt(condition OutputExpression, trueCase, falseCase []OutputStatement, sourceSpan *util.ParseSourceSpan) *IfStmt {
	return &IfStmt{
		StatementBase: StatementBase{SourceSpan: sourceSpan},
		Condition:     condition,
		TrueCase:      trueCase,
		FalseCase:     falseCase,
	}
}

// VisitStatement implements OutputStatement interface
func (i *IfStmt) VisitStatement(visitor StatementVisitor, context interface{}) interface{} {
	return visitor.VisitIfStmt(i, context)
}

// IsEquivalent checks if two statements are equivalent
func (i *IfStmt) IsEquivalent(stmt OutputStatement) bool {
	other, ok := stmt.(*IfStmt)
	if !ok || !i.Condition.IsEquivalent(other.Condition) {
		return false
	}
	if len(i.TrueCase) != len(other.TrueCase) || len(i.FalseCase) != len(other.FalseCase) {
		return false
	}
	for idx := range i.TrueCase {
		if !i.TrueCase[idx].IsEquivalent(other.TrueCase[idx]) {
			return false
		}
	}
	for idx := range i.FalseCase {
		if !i.FalseCase[idx].IsEquivalent(other.FalseCase[idx]) {
			return false
		}
	}
	return true
}

// Variable creates a ReadVarExpr without a source span
func Variable(name string) *ReadVarExpr {
	return NewReadVarExpr(name, nil)
}

// Literal creates a LiteralExpr without a source span
func Literal(value interface{}) *LiteralExpr {
	return NewLiteralExpr(value, nil)
}

// Raw creates a RawExpr
func Raw(source string, sourceSpan *util.ParseSourceSpan) *RawExpr {
	return NewRawExpr(source, sourceSpan)
}

// Not creates a NotExpr without a source span
func Not(condition OutputExpression) *NotExpr {
	return NewNotExpr(condition, nil)
}

// InvokeFn creates an InvokeFunctionExpr without a source span
func InvokeFn(fn OutputExpression, args ...OutputExpression) *InvokeFunctionExpr {
	return NewInvokeFunctionExpr(fn, args, nil)
}
