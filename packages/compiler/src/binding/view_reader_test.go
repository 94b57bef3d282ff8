package binding_test

import (
	"testing"

	"github.com/VLVLKY/svelte/packages/compiler/src/binding"
	"github.com/VLVLKY/svelte/packages/compiler/src/output"
	"github.com/VLVLKY/svelte/packages/compiler/src/schema"
)

func TestReadFromView(t *testing.T) {
	emitter := output.NewJSEmitter()

	cases := []struct {
		label   string
		binding string
		path    string
		tag     string
		attrs   map[string]string
		group   int
		want    string
	}{
		{
			label:   "single select",
			binding: "value",
			path:    "selected",
			tag:     "select",
			want:    "selectValue(select)",
		},
		{
			label:   "multiple select",
			binding: "value",
			path:    "selected",
			tag:     "select",
			attrs:   map[string]string{"multiple": ""},
			want:    "selectMultipleValue(select)",
		},
		{
			label:   "checkbox group reads membership",
			binding: "group",
			path:    "selected.items",
			tag:     "input",
			attrs:   map[string]string{"type": "checkbox"},
			group:   2,
			want:    "getBindingGroupValue(bindingGroups[2])",
		},
		{
			label:   "radio group reads the associated value",
			binding: "group",
			path:    "colour",
			tag:     "input",
			attrs:   map[string]string{"type": "radio"},
			want:    "input.__value",
		},
		{
			label:   "number input coerces to number",
			binding: "value",
			path:    "count",
			tag:     "input",
			attrs:   map[string]string{"type": "number"},
			want:    "toNumber(input.value)",
		},
		{
			label:   "range input coerces to number",
			binding: "value",
			path:    "volume",
			tag:     "input",
			attrs:   map[string]string{"type": "range"},
			want:    "toNumber(input.value)",
		},
		{
			label:   "buffered converts time ranges",
			binding: "buffered",
			path:    "ranges",
			tag:     "audio",
			want:    "timeRangesToArray(audio.buffered)",
		},
		{
			label:   "default reads the named property",
			binding: "value",
			path:    "name",
			tag:     "input",
			attrs:   map[string]string{"type": "text"},
			want:    "input.value",
		},
		{
			label:   "checked reads the named property",
			binding: "checked",
			path:    "accepted",
			tag:     "input",
			attrs:   map[string]string{"type": "checkbox"},
			want:    "input.checked",
		},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			d, err := binding.NewDirective(tc.binding, target(tc.path), nil, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			el := schema.NewElementContext(tc.tag, tc.attrs)
			expr := binding.ReadFromView(d, el, tc.tag, tc.group)
			if expr == nil {
				t.Fatal("expected a read expression")
			}
			if got := emitter.EmitExpression(expr); got != tc.want {
				t.Errorf("read = %q, want %q", got, tc.want)
			}
		})
	}
}
