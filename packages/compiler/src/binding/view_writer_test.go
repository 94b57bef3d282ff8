package binding_test

import (
	"testing"

	"github.com/VLVLKY/svelte/packages/compiler/src/binding"
	"github.com/VLVLKY/svelte/packages/compiler/src/output"
	"github.com/VLVLKY/svelte/packages/compiler/src/schema"
)

func TestWriteToView(t *testing.T) {
	emitter := output.NewJSEmitter()
	value := output.Raw("value", nil)

	cases := []struct {
		label   string
		binding string
		path    string
		tag     string
		attrs   map[string]string
		want    string // "" means no write statement
	}{
		{
			label:   "default writes the named property",
			binding: "value",
			path:    "name",
			tag:     "input",
			attrs:   map[string]string{"type": "text"},
			want:    "input.value = value;",
		},
		{
			label:   "single select applies the selection",
			binding: "value",
			path:    "selected",
			tag:     "select",
			want:    "applySelectValue(select, value);",
		},
		{
			label:   "multiple select applies every selection",
			binding: "value",
			path:    "selected",
			tag:     "select",
			attrs:   map[string]string{"multiple": ""},
			want:    "applySelectMultipleValue(select, value);",
		},
		{
			label:   "checkbox group tests membership",
			binding: "group",
			path:    "selected.items",
			tag:     "input",
			attrs:   map[string]string{"type": "checkbox"},
			want:    "input.checked = value.indexOf(input.__value) !== -1;",
		},
		{
			label:   "radio group compares for equality",
			binding: "group",
			path:    "colour",
			tag:     "input",
			attrs:   map[string]string{"type": "radio"},
			want:    "input.checked = input.__value === value;",
		},
		{
			label:   "duration is read-only",
			binding: "duration",
			path:    "length",
			tag:     "audio",
			want:    "",
		},
		{
			label:   "buffered is read-only",
			binding: "buffered",
			path:    "ranges",
			tag:     "video",
			want:    "",
		},
		{
			label:   "seekable is read-only",
			binding: "seekable",
			path:    "ranges",
			tag:     "video",
			want:    "",
		},
		{
			label:   "played is read-only",
			binding: "played",
			path:    "ranges",
			tag:     "video",
			want:    "",
		},
		{
			label:   "offsetWidth is a measured value",
			binding: "offsetWidth",
			path:    "width",
			tag:     "div",
			want:    "",
		},
		{
			label:   "clientHeight is a measured value",
			binding: "clientHeight",
			path:    "height",
			tag:     "div",
			want:    "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			d, err := binding.NewDirective(tc.binding, target(tc.path), nil, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			el := schema.NewElementContext(tc.tag, tc.attrs)
			stmt := binding.WriteToView(d, el, tc.tag, value)
			if tc.want == "" {
				if stmt != nil {
					t.Fatalf("expected no write statement, got %q", emitter.EmitStatement(stmt))
				}
				return
			}
			if stmt == nil {
				t.Fatal("expected a write statement")
			}
			if got := emitter.EmitStatement(stmt); got != tc.want {
				t.Errorf("write = %q, want %q", got, tc.want)
			}
		})
	}
}
