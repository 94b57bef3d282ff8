package expression_parser

import (
	"strings"
)

// ParseSpan records the start and end of an expression node relative to the
// expression source it was parsed from.
type ParseSpan struct {
	Start int
	End   int
}

// NewParseSpan creates a new ParseSpan
func NewParseSpan(start, end int) *ParseSpan {
	return &ParseSpan{Start: start, End: end}
}

// ToAbsolute converts the span to an absolute span within the source file
func (ps *ParseSpan) ToAbsolute(absoluteOffset int) *AbsoluteSourceSpan {
	return NewAbsoluteSourceSpan(absoluteOffset+ps.Start, absoluteOffset+ps.End)
}

// AbsoluteSourceSpan is a span addressed in source-file offsets
type AbsoluteSourceSpan struct {
	Start int
	End   int
}

// NewAbsoluteSourceSpan creates a new AbsoluteSourceSpan
func NewAbsoluteSourceSpan(start, end int) *AbsoluteSourceSpan {
	return &AbsoluteSourceSpan{Start: start, End: end}
}

// AST is a resolved expression node. Nodes arrive here already parsed and
// scope-resolved; this package only models the shapes binding synthesis
// consumes.
type AST interface {
	Span() *ParseSpan
	SourceSpan() *AbsoluteSourceSpan
	Visit(visitor AstVisitor, context interface{}) interface{}
	String() string
}

// AstVisitor is the interface for visiting resolved expression nodes
type AstVisitor interface {
	VisitIdentifier(ast *Identifier, context interface{}) interface{}
	VisitPropertyRead(ast *PropertyRead, context interface{}) interface{}
	VisitKeyedRead(ast *KeyedRead, context interface{}) interface{}
}

type astBase struct {
	span       *ParseSpan
	sourceSpan *AbsoluteSourceSpan
}

func (a *astBase) Span() *ParseSpan {
	return a.span
}

func (a *astBase) SourceSpan() *AbsoluteSourceSpan {
	return a.sourceSpan
}

// Identifier is a bare reference to a state or scope name
type Identifier struct {
	astBase
	Name string
}

// NewIdentifier creates a new Identifier
func NewIdentifier(span *ParseSpan, sourceSpan *AbsoluteSourceSpan, name string) *Identifier {
	return &Identifier{
		astBase: astBase{span: span, sourceSpan: sourceSpan},
		Name:    name,
	}
}

// Visit implements AST interface
func (i *Identifier) Visit(visitor AstVisitor, context interface{}) interface{} {
	return visitor.VisitIdentifier(i, context)
}

// String returns a string representation
func (i *Identifier) String() string {
	return i.Name
}

// PropertyRead is a non-computed member access (receiver.name)
type PropertyRead struct {
	astBase
	Receiver AST
	Name     string
	NameSpan *AbsoluteSourceSpan
}

// NewPropertyRead creates a new PropertyRead
func NewPropertyRead(span *ParseSpan, sourceSpan, nameSpan *AbsoluteSourceSpan, receiver AST, name string) *PropertyRead {
	return &PropertyRead{
		astBase:  astBase{span: span, sourceSpan: sourceSpan},
		Receiver: receiver,
		Name:     name,
		NameSpan: nameSpan,
	}
}

// Visit implements AST interface
func (p *PropertyRead) Visit(visitor AstVisitor, context interface{}) interface{} {
	return visitor.VisitPropertyRead(p, context)
}

// String returns a string representation
func (p *PropertyRead) String() string {
	return p.Receiver.String() + "." + p.Name
}

// KeyedRead is a computed member access (receiver[key])
type KeyedRead struct {
	astBase
	Receiver AST
	Key      AST
}

// NewKeyedRead creates a new KeyedRead
func NewKeyedRead(span *ParseSpan, sourceSpan *AbsoluteSourceSpan, receiver, key AST) *KeyedRead {
	return &KeyedRead{
		astBase:  astBase{span: span, sourceSpan: sourceSpan},
		Receiver: receiver,
		Key:      key,
	}
}

// Visit implements AST interface
func (k *KeyedRead) Visit(visitor AstVisitor, context interface{}) interface{} {
	return visitor.VisitKeyedRead(k, context)
}

// String returns a string representation
func (k *KeyedRead) String() string {
	return k.Receiver.String() + "[" + k.Key.String() + "]"
}

// StoreSigil prefixes dependency names that resolve to store-subscribed
// values rather than local component state.
const StoreSigil = "$"

// IsStoreDependency reports whether a dependency name refers to a
// store-subscribed value.
func IsStoreDependency(name string) bool {
	return strings.HasPrefix(name, StoreSigil)
}

// ASTWithSource pairs a resolved expression with its source text and the
// set of reactive state names it depends on. Dependencies are ordered and
// deduplicated by the resolver.
type ASTWithSource struct {
	AST          AST
	Source       string
	Dependencies []string
}

// NewASTWithSource creates a new ASTWithSource
func NewASTWithSource(ast AST, source string, dependencies []string) *ASTWithSource {
	return &ASTWithSource{
		AST:          ast,
		Source:       source,
		Dependencies: dependencies,
	}
}

// Slice returns the source text covered by the given node's span
func (a *ASTWithSource) Slice(node AST) string {
	span := node.Span()
	if span == nil || span.Start < 0 || span.End > len(a.Source) {
		return ""
	}
	return a.Source[span.Start:span.End]
}

// OutermostIdentifier walks receivers down to the root identifier of a
// member-access chain, or nil if the root is not an identifier.
func OutermostIdentifier(ast AST) *Identifier {
	for {
		switch node := ast.(type) {
		case *Identifier:
			return node
		case *PropertyRead:
			ast = node.Receiver
		case *KeyedRead:
			ast = node.Receiver
		default:
			return nil
		}
	}
}

// Scope exposes the names declared by enclosing repeated (contextual)
// blocks. Names in scope do not resolve to a fixed state cell.
type Scope struct {
	names map[string]bool
}

// NewScope creates a new Scope with the given contextual names
func NewScope(names ...string) *Scope {
	s := &Scope{names: make(map[string]bool)}
	for _, name := range names {
		s.names[name] = true
	}
	return s
}

// Add declares a contextual name
func (s *Scope) Add(name string) {
	s.names[name] = true
}

// Has reports whether a name is declared by the contextual scope
func (s *Scope) Has(name string) bool {
	return s.names[name]
}
