package binding

import (
	"fmt"

	"github.com/VLVLKY/svelte/packages/compiler/src/expression_parser"
	"github.com/VLVLKY/svelte/packages/compiler/src/util"
)

// ContextRoot is the implicit component-context root that bare identifier
// targets resolve against in generated code.
const ContextRoot = "ctx"

// Directive represents one declared two-way binding: its target name, the
// resolved target expression, and the decomposed head/tail of the
// assignable reference. Directives are immutable after construction.
type Directive struct {
	Name         string
	Target       *expression_parser.ASTWithSource
	IsContextual bool
	ObjectPart   string
	PropertyPart string
	SourceSpan   *util.ParseSourceSpan
}

// NewDirective creates a Directive from the raw binding name and the target
// expression resolved by the enclosing scope. An unresolvable target is a
// compile error propagated to the caller, never coerced.
func NewDirective(name string, target *expression_parser.ASTWithSource, scope *expression_parser.Scope, sourceSpan *util.ParseSourceSpan) (*Directive, *util.ParseError) {
	if target == nil || target.AST == nil {
		return nil, util.NewParseError(sourceSpan, fmt.Sprintf("%s binding target does not resolve to an assignable reference", name))
	}

	d := &Directive{
		Name:       name,
		Target:     target,
		SourceSpan: sourceSpan,
	}

	switch node := target.AST.(type) {
	case *expression_parser.PropertyRead:
		d.ObjectPart = target.Slice(node.Receiver)
		d.PropertyPart = "'" + node.Name + "'"
	case *expression_parser.KeyedRead:
		d.ObjectPart = target.Slice(node.Receiver)
		d.PropertyPart = target.Slice(node.Key)
	case *expression_parser.Identifier:
		d.ObjectPart = ContextRoot
		d.PropertyPart = "'" + node.Name + "'"
	default:
		return nil, util.NewParseError(sourceSpan, fmt.Sprintf("%s binding target does not resolve to an assignable reference", name))
	}

	if root := expression_parser.OutermostIdentifier(target.AST); root != nil && scope != nil && scope.Has(root.Name) {
		d.IsContextual = true
	}

	return d, nil
}

// BareIdentifier returns the target node when the target is a bare
// identifier rather than a member access.
func (d *Directive) BareIdentifier() (*expression_parser.Identifier, bool) {
	ident, ok := d.Target.AST.(*expression_parser.Identifier)
	return ident, ok
}

// IsMemberExpression reports whether the target is a member access
func (d *Directive) IsMemberExpression() bool {
	switch d.Target.AST.(type) {
	case *expression_parser.PropertyRead, *expression_parser.KeyedRead:
		return true
	}
	return false
}

// TargetTail returns the target source text after its outermost identifier.
// For a contextual target the enclosing repetition block supplies the head,
// and the mutation rewrites only this tail.
func (d *Directive) TargetTail() string {
	root := expression_parser.OutermostIdentifier(d.Target.AST)
	if root == nil || root.Span() == nil {
		return ""
	}
	end := root.Span().End
	if end < 0 || end > len(d.Target.Source) {
		return ""
	}
	return d.Target.Source[end:]
}

// Keypath returns the dot-joined path of the target reference. Two distinct
// source expressions normalizing to the same keypath belong to the same
// binding group; that is how a radio or checkbox set is linked.
func (d *Directive) Keypath() string {
	return keypathOf(d.Target, d.Target.AST)
}

func keypathOf(src *expression_parser.ASTWithSource, ast expression_parser.AST) string {
	switch node := ast.(type) {
	case *expression_parser.Identifier:
		return node.Name
	case *expression_parser.PropertyRead:
		return keypathOf(src, node.Receiver) + "." + node.Name
	case *expression_parser.KeyedRead:
		return keypathOf(src, node.Receiver) + "[" + src.Slice(node.Key) + "]"
	}
	return src.Slice(ast)
}
