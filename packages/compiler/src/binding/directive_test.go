package binding_test

import (
	"testing"

	"github.com/VLVLKY/svelte/packages/compiler/src/binding"
	"github.com/VLVLKY/svelte/packages/compiler/src/expression_parser"
)

func TestDirectiveDecomposition(t *testing.T) {
	t.Run("bare identifier targets the implicit context root", func(t *testing.T) {
		d, err := binding.NewDirective("value", target("count"), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ObjectPart != binding.ContextRoot {
			t.Errorf("ObjectPart = %q, want %q", d.ObjectPart, binding.ContextRoot)
		}
		if d.PropertyPart != "'count'" {
			t.Errorf("PropertyPart = %q, want 'count'", d.PropertyPart)
		}
		if d.IsContextual {
			t.Error("bare top-level identifier must not be contextual")
		}
	})

	t.Run("member access slices object and quotes property", func(t *testing.T) {
		d, err := binding.NewDirective("value", target("user.name"), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ObjectPart != "user" {
			t.Errorf("ObjectPart = %q, want %q", d.ObjectPart, "user")
		}
		if d.PropertyPart != "'name'" {
			t.Errorf("PropertyPart = %q, want 'name'", d.PropertyPart)
		}
	})

	t.Run("computed member access keeps the key unquoted", func(t *testing.T) {
		d, err := binding.NewDirective("value", keyedTarget("todos[i]", "todos", "i"), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ObjectPart != "todos" {
			t.Errorf("ObjectPart = %q, want %q", d.ObjectPart, "todos")
		}
		if d.PropertyPart != "i" {
			t.Errorf("PropertyPart = %q, want %q", d.PropertyPart, "i")
		}
	})

	t.Run("scope declaration makes the target contextual", func(t *testing.T) {
		scope := expression_parser.NewScope("item")
		d, err := binding.NewDirective("value", target("item.done"), scope, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.IsContextual {
			t.Error("target rooted in a scope name must be contextual")
		}
		if d.TargetTail() != ".done" {
			t.Errorf("TargetTail() = %q, want %q", d.TargetTail(), ".done")
		}
	})

	t.Run("unresolved target is a compile error", func(t *testing.T) {
		if _, err := binding.NewDirective("value", nil, nil, nil); err == nil {
			t.Error("expected an error for a nil target")
		}
	})
}

func TestDirectiveKeypath(t *testing.T) {
	cases := []struct {
		target *expression_parser.ASTWithSource
		want   string
	}{
		{target("selected"), "selected"},
		{target("selected.items"), "selected.items"},
		{target("a.b.c"), "a.b.c"},
		{keyedTarget("todos[i]", "todos", "i"), "todos[i]"},
	}
	for _, tc := range cases {
		d, err := binding.NewDirective("group", tc.target, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := d.Keypath(); got != tc.want {
			t.Errorf("Keypath(%s) = %q, want %q", tc.target.Source, got, tc.want)
		}
	}
}
