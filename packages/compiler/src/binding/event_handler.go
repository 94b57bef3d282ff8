package binding

import (
	"strings"

	"github.com/VLVLKY/svelte/packages/compiler/src/expression_parser"
	"github.com/VLVLKY/svelte/packages/compiler/src/output"
)

// Handler describes the view-to-model push performed when the control's
// native event fires: the mutation statement (when one is needed) and the
// reactive properties that must be scheduled for re-evaluation, split into
// local state updates and store updates.
type Handler struct {
	UsesContext bool
	UsesState   bool
	UsesStore   bool
	// Mutation is nil for bare-identifier targets: there the assignment is
	// expressed purely through the property-update map.
	Mutation   output.OutputStatement
	Props      []string
	StoreProps []string
}

// BuildEventHandler produces the mutation and the reactive-update property
// sets for a directive. valueVar names the generated local holding the
// freshly read view value; head is the per-iteration binding head supplied
// by the enclosing repetition block, used only for contextual targets.
// computed holds the names of derived state, which must never be offered
// back to the reactive update call.
func BuildEventHandler(d *Directive, dependencies []string, valueVar string, computed map[string]bool, head string) *Handler {
	h := &Handler{}

	var localDeps []string
	var storeDeps []string
	for _, dep := range dependencies {
		if expression_parser.IsStoreDependency(dep) {
			storeDeps = append(storeDeps, strings.TrimPrefix(dep, expression_parser.StoreSigil))
		} else {
			localDeps = append(localDeps, dep)
		}
	}

	value := output.Variable(valueVar)

	switch {
	case d.IsContextual:
		target := output.Raw(head+d.TargetTail(), d.SourceSpan)
		h.Mutation = output.NewExpressionStatement(target.Set(value), d.SourceSpan)
		h.UsesContext = true
		h.UsesState = true
		h.Props = localDeps
		h.StoreProps = storeDeps

	case d.IsMemberExpression():
		target := output.Raw(d.Target.Source, d.SourceSpan)
		h.Mutation = output.NewExpressionStatement(target.Set(value), d.SourceSpan)
		for _, dep := range localDeps {
			if !computed[dep] {
				h.Props = append(h.Props, dep)
			}
		}
		h.StoreProps = storeDeps
		h.UsesState = len(h.Props) > 0

	default:
		// Bare identifier: no mutation statement, the assignment is the
		// property-update map itself.
		ident, _ := d.BareIdentifier()
		if expression_parser.IsStoreDependency(ident.Name) {
			h.StoreProps = []string{strings.TrimPrefix(ident.Name, expression_parser.StoreSigil)}
		} else {
			h.Props = []string{ident.Name}
			h.UsesState = true
		}
	}

	h.UsesStore = len(h.StoreProps) > 0
	return h
}
