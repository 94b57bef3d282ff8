package binding

import (
	"github.com/VLVLKY/svelte/packages/compiler/src/output"
	"github.com/VLVLKY/svelte/packages/compiler/src/schema"
)

// Run-time support library contract. The generated code calls these by
// name; names and arities are stable.
const (
	fnSelectValue              = "selectValue"
	fnSelectMultipleValue      = "selectMultipleValue"
	fnApplySelectValue         = "applySelectValue"
	fnApplySelectMultipleValue = "applySelectMultipleValue"
	fnToNumber                 = "toNumber"
	fnTimeRangesToArray        = "timeRangesToArray"
	fnGetBindingGroupValue     = "getBindingGroupValue"

	// bindingGroupsVar is the generated per-component array of live node
	// collections, one slot per group index.
	bindingGroupsVar = "bindingGroups"
)

// viewTarget bundles the dispatch inputs for one directive on one element
type viewTarget struct {
	directive  *Directive
	element    *schema.ElementContext
	elementVar string
	groupIndex int
}

func (t *viewTarget) elementRef() *output.ReadVarExpr {
	return output.Variable(t.elementVar)
}

// readerRow is one row of the view-read dispatch table
type readerRow struct {
	name string
	when func(t *viewTarget) bool
	read func(t *viewTarget) output.OutputExpression
}

// readerTable is evaluated top to bottom, first match wins. The order is
// the dispatch precedence; rows must not rely on later rows rejecting them.
var readerTable = []readerRow{
	{"select", matchSelect, readSelect},
	{"checkbox group", matchCheckboxGroup, readCheckboxGroup},
	{"radio group", matchRadioGroup, readRadioGroup},
	{"numeric input", matchNumericInput, readNumericInput},
	{"time ranges", matchTimeRanges, readTimeRanges},
	{"property", matchAlways, readProperty},
}

// ReadFromView maps (element kind, binding name) to the expression that
// reads the control's current value out of the rendered element.
func ReadFromView(d *Directive, el *schema.ElementContext, elementVar string, groupIndex int) output.OutputExpression {
	t := &viewTarget{directive: d, element: el, elementVar: elementVar, groupIndex: groupIndex}
	for _, row := range readerTable {
		if row.when(t) {
			return row.read(t)
		}
	}
	return nil
}

func matchAlways(t *viewTarget) bool {
	return true
}

func matchSelect(t *viewTarget) bool {
	return t.element.IsSelectElement()
}

func matchCheckboxGroup(t *viewTarget) bool {
	return t.directive.Name == "group" && t.element.InputType() == "checkbox"
}

func matchRadioGroup(t *viewTarget) bool {
	return t.directive.Name == "group" && t.element.InputType() != "checkbox"
}

func matchNumericInput(t *viewTarget) bool {
	return schema.IsNumericInputType(t.element.InputType())
}

func matchTimeRanges(t *viewTarget) bool {
	return t.element.IsMediaElement() && schema.IsTimeRangeAttribute(t.directive.Name)
}

func readSelect(t *viewTarget) output.OutputExpression {
	fn := fnSelectValue
	if t.element.IsMultipleSelect() {
		fn = fnSelectMultipleValue
	}
	return output.InvokeFn(output.Variable(fn), t.elementRef())
}

func readCheckboxGroup(t *viewTarget) output.OutputExpression {
	group := output.Variable(bindingGroupsVar).Key(output.Literal(t.groupIndex))
	return output.InvokeFn(output.Variable(fnGetBindingGroupValue), group)
}

func readRadioGroup(t *viewTarget) output.OutputExpression {
	return t.elementRef().Prop("__value")
}

func readNumericInput(t *viewTarget) output.OutputExpression {
	return output.InvokeFn(output.Variable(fnToNumber), t.elementRef().Prop(t.directive.Name))
}

func readTimeRanges(t *viewTarget) output.OutputExpression {
	return output.InvokeFn(output.Variable(fnTimeRangesToArray), t.elementRef().Prop(t.directive.Name))
}

func readProperty(t *viewTarget) output.OutputExpression {
	return t.elementRef().Prop(t.directive.Name)
}
