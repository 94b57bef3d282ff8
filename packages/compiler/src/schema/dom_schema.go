package schema

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// ElementContext describes the view-producing element a binding directive is
// attached to: its tag and the attributes that are statically known at
// compile time. Attributes whose values are themselves bound are absent from
// the static lookup.
type ElementContext struct {
	tag         atom.Atom
	tagName     string
	staticAttrs map[string]string
}

// NewElementContext creates a new ElementContext
func NewElementContext(tagName string, staticAttrs map[string]string) *ElementContext {
	lower := strings.ToLower(tagName)
	attrs := make(map[string]string, len(staticAttrs))
	for name, value := range staticAttrs {
		attrs[strings.ToLower(name)] = value
	}
	return &ElementContext{
		tag:         atom.Lookup([]byte(lower)),
		tagName:     lower,
		staticAttrs: attrs,
	}
}

// Tag returns the interned tag atom, or zero for unknown tags
func (e *ElementContext) Tag() atom.Atom {
	return e.tag
}

// TagName returns the lowercased tag name
func (e *ElementContext) TagName() string {
	return e.tagName
}

// StaticAttr looks up a statically known attribute value. The second return
// is false when the attribute is absent or not statically known.
func (e *ElementContext) StaticAttr(name string) (string, bool) {
	value, ok := e.staticAttrs[strings.ToLower(name)]
	return value, ok
}

// InputType returns the static type attribute of an input element, or ""
// when the element is not an input or its type is not statically known.
func (e *ElementContext) InputType() string {
	if e.tag != atom.Input {
		return ""
	}
	value, ok := e.staticAttrs["type"]
	if !ok {
		return ""
	}
	return strings.ToLower(value)
}

// IsFormControl reports whether the element is a value-carrying form control
func (e *ElementContext) IsFormControl() bool {
	switch e.tag {
	case atom.Input, atom.Textarea, atom.Select:
		return true
	}
	return false
}

// IsMediaElement reports whether the element is an audio or video element
func (e *ElementContext) IsMediaElement() bool {
	return e.tag == atom.Audio || e.tag == atom.Video
}

// IsSelectElement reports whether the element is a selection list
func (e *ElementContext) IsSelectElement() bool {
	return e.tag == atom.Select
}

// IsMultipleSelect reports whether the element is a multi-selection list
func (e *ElementContext) IsMultipleSelect() bool {
	if e.tag != atom.Select {
		return false
	}
	_, ok := e.staticAttrs["multiple"]
	return ok
}

// readOnlyMediaAttributes are media attributes the model can read but never
// write. Writes to these in generated code would throw at run time.
var readOnlyMediaAttributes = map[string]bool{
	"duration": true,
	"buffered": true,
	"seekable": true,
	"played":   true,
}

// timeRangeAttributes are media attributes whose native representation is a
// TimeRanges object rather than a scalar.
var timeRangeAttributes = map[string]bool{
	"buffered": true,
	"seekable": true,
	"played":   true,
}

// lockExemptInputTypes are input types that cannot re-enter their own input
// event on a programmatic write, so bindings on them need no change lock.
var lockExemptInputTypes = map[string]bool{
	"radio":    true,
	"checkbox": true,
	"range":    true,
	"color":    true,
}

// numericInputTypes are input types whose value reads coerce to a number
var numericInputTypes = map[string]bool{
	"number": true,
	"range":  true,
}

// dimensionBindings are measured layout sizes, readable but never writable
var dimensionBindings = map[string]bool{
	"offsetWidth":  true,
	"offsetHeight": true,
	"clientWidth":  true,
	"clientHeight": true,
}

// IsReadOnlyMediaAttribute reports whether name is in the fixed read-only
// media attribute set.
func IsReadOnlyMediaAttribute(name string) bool {
	return readOnlyMediaAttributes[name]
}

// IsTimeRangeAttribute reports whether name is a time-range-valued media
// attribute.
func IsTimeRangeAttribute(name string) bool {
	return timeRangeAttributes[name]
}

// IsLockExemptInputType reports whether a static input type is exempt from
// the change lock.
func IsLockExemptInputType(inputType string) bool {
	return lockExemptInputTypes[inputType]
}

// IsNumericInputType reports whether a static input type carries a numeric
// value.
func IsNumericInputType(inputType string) bool {
	return numericInputTypes[inputType]
}

// IsDimensionBinding reports whether name is a measured-size binding
func IsDimensionBinding(name string) bool {
	return dimensionBindings[name]
}

// BindingEventName returns the DOM event the generated code listens to for
// view-side changes of the given binding.
func BindingEventName(el *ElementContext, bindingName string) string {
	switch bindingName {
	case "currentTime", "played":
		return "timeupdate"
	case "duration":
		return "durationchange"
	case "paused":
		return "pause"
	case "buffered", "seekable":
		return "progress"
	case "volume":
		return "volumechange"
	case "offsetWidth", "offsetHeight", "clientWidth", "clientHeight":
		return "resize"
	}
	if el.IsSelectElement() {
		return "change"
	}
	switch el.InputType() {
	case "radio", "checkbox", "file":
		return "change"
	case "range":
		return "input"
	}
	if bindingName == "group" {
		return "change"
	}
	return "input"
}
