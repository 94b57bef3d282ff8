package binding

import (
	"github.com/VLVLKY/svelte/packages/compiler/src/output"
	"github.com/VLVLKY/svelte/packages/compiler/src/schema"
)

// writerRow is one row of the view-write dispatch table. A nil write
// function marks a binding that is read-only from the model's perspective:
// value flows view to model only, no write statement is produced.
type writerRow struct {
	name  string
	when  func(t *viewTarget) bool
	write func(t *viewTarget, value output.OutputExpression) output.OutputStatement
}

var writerTable = []writerRow{
	{"read-only media", matchReadOnlyMedia, nil},
	{"dimension", matchDimension, nil},
	{"select", matchSelect, writeSelect},
	{"checkbox group", matchCheckboxGroup, writeCheckboxGroup},
	{"radio group", matchRadioGroup, writeRadioGroup},
	{"property", matchAlways, writeProperty},
}

// WriteToView maps (element kind, binding name) to the statement that
// pushes a model value into the rendered element, or nil when the binding
// is read-only from the model's perspective.
func WriteToView(d *Directive, el *schema.ElementContext, elementVar string, value output.OutputExpression) output.OutputStatement {
	t := &viewTarget{directive: d, element: el, elementVar: elementVar}
	for _, row := range writerTable {
		if row.when(t) {
			if row.write == nil {
				return nil
			}
			return row.write(t, value)
		}
	}
	return nil
}

func matchReadOnlyMedia(t *viewTarget) bool {
	return schema.IsReadOnlyMediaAttribute(t.directive.Name)
}

func matchDimension(t *viewTarget) bool {
	return schema.IsDimensionBinding(t.directive.Name)
}

func writeSelect(t *viewTarget, value output.OutputExpression) output.OutputStatement {
	fn := fnApplySelectValue
	if t.element.IsMultipleSelect() {
		fn = fnApplySelectMultipleValue
	}
	call := output.InvokeFn(output.Variable(fn), t.elementRef(), value)
	return output.NewExpressionStatement(call, t.directive.SourceSpan)
}

// writeCheckboxGroup sets the checked state by testing membership of the
// control's associated value within the bound sequence.
func writeCheckboxGroup(t *viewTarget, value output.OutputExpression) output.OutputStatement {
	indexOf := output.InvokeFn(output.NewReadPropExpr(value, "indexOf", nil), t.elementRef().Prop("__value"))
	member := output.NewBinaryOperatorExpr(output.BinaryOperatorNotIdentical, indexOf, output.Literal(-1), nil)
	return output.NewExpressionStatement(t.elementRef().Prop("checked").Set(member), t.directive.SourceSpan)
}

// writeRadioGroup sets the checked state by equality against the bound
// scalar.
func writeRadioGroup(t *viewTarget, value output.OutputExpression) output.OutputStatement {
	equal := output.NewBinaryOperatorExpr(output.BinaryOperatorIdentical, t.elementRef().Prop("__value"), value, nil)
	return output.NewExpressionStatement(t.elementRef().Prop("checked").Set(equal), t.directive.SourceSpan)
}

func writeProperty(t *viewTarget, value output.OutputExpression) output.OutputStatement {
	return output.NewExpressionStatement(t.elementRef().Prop(t.directive.Name).Set(value), t.directive.SourceSpan)
}
