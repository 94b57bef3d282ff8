package binding

import (
	"fmt"

	"github.com/VLVLKY/svelte/packages/compiler/src/config"
	"github.com/VLVLKY/svelte/packages/compiler/src/expression_parser"
	"github.com/VLVLKY/svelte/packages/compiler/src/output"
	"github.com/VLVLKY/svelte/packages/compiler/src/schema"
	"github.com/VLVLKY/svelte/packages/compiler/src/util"
)

// componentVar is the generated component instance reference
const componentVar = "component"

// SynthesisResult is the immutable output bundle for one directive, owned
// by the code generator after return.
type SynthesisResult struct {
	Name             string
	TargetObjectName string
	EventName        string
	ValueVar         string
	EventHandler     []output.OutputStatement
	Handler          *Handler
	DOMUpdate        output.OutputStatement
	InitialUpdate    output.OutputStatement
	NeedsChangeLock  bool
	UpdateGuard      output.OutputExpression
	IsReadOnly       bool
	IsReadOnlyMediaAttribute bool
	// GroupIndex is the binding group index, or -1 for ungrouped bindings
	GroupIndex int
}

// Synthesizer orchestrates binding synthesis for one compilation unit. It
// owns the group registry and the registries of computed state names and
// indirect dependency edges. Not safe for concurrent use; concurrent
// compilation units must each own their own instance.
type Synthesizer struct {
	config   *config.CompilerConfig
	groups   *GroupRegistry
	computed map[string]bool
	indirect map[string][]string
}

// NewSynthesizer creates a Synthesizer for one compilation unit
func NewSynthesizer(cfg *config.CompilerConfig, groups *GroupRegistry) *Synthesizer {
	if cfg == nil {
		cfg = config.NewCompilerConfig()
	}
	if groups == nil {
		groups = NewGroupRegistry()
	}
	return &Synthesizer{
		config:   cfg,
		groups:   groups,
		computed: make(map[string]bool),
		indirect: make(map[string][]string),
	}
}

// Groups returns the compilation unit's group registry
func (s *Synthesizer) Groups() *GroupRegistry {
	return s.groups
}

// RegisterComputed records derived state names. Assigning to derived state
// is invalid, so these are filtered out of every reactive-update property
// list instead of being offered back to the update call.
func (s *Synthesizer) RegisterComputed(names ...string) {
	for _, name := range names {
		s.computed[name] = true
	}
}

// RegisterIndirectDependencies records that a change of name must also
// re-evaluate dependents, because the bound value selects among them.
func (s *Synthesizer) RegisterIndirectDependencies(name string, dependents ...string) {
	s.indirect[name] = append(s.indirect[name], dependents...)
}

// ExpandDependencies returns the base set plus every registered indirect
// dependent, in stable first-seen order without duplicates.
func (s *Synthesizer) ExpandDependencies(dependencies []string) []string {
	seen := make(map[string]bool, len(dependencies))
	var expanded []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			expanded = append(expanded, name)
		}
	}
	for _, dep := range dependencies {
		add(dep)
		for _, indirect := range s.indirect[dep] {
			add(indirect)
		}
	}
	return expanded
}

// Synthesize computes the full binding bundle for one directive on one
// element. elementVar names the generated element variable; head is the
// per-iteration binding head for contextual targets; registry side effects
// (group registration and deregistration) are appended to the block's
// hydrate and destroy lists.
func (s *Synthesizer) Synthesize(d *Directive, el *schema.ElementContext, elementVar string, block *Block, head string) (*SynthesisResult, *util.ParseError) {
	if !s.config.Store {
		for _, dep := range d.Target.Dependencies {
			if expression_parser.IsStoreDependency(dep) {
				return nil, util.NewParseError(d.SourceSpan, fmt.Sprintf("%s binding target is store-subscribed, compile with the store option enabled", d.Name))
			}
		}
	}
	if d.IsContextual && head == "" {
		return nil, util.NewParseError(d.SourceSpan, fmt.Sprintf("%s binding resolves inside a repeated scope but no binding head was supplied", d.Name))
	}

	needsChangeLock := true
	if inputType := el.InputType(); inputType != "" && schema.IsLockExemptInputType(inputType) {
		needsChangeLock = false
	}

	groupIndex := -1
	if d.Name == "group" {
		groupIndex = s.groups.GetGroupIndex(d.Keypath())
	}

	dependencies := s.ExpandDependencies(d.Target.Dependencies)
	readExpr := ReadFromView(d, el, elementVar, groupIndex)
	valueVar := block.GetUniqueName(elementVar + "_value")
	handler := BuildEventHandler(d, dependencies, valueVar, s.computed, head)

	// The model value resolves in generated block scope; for contextual
	// targets the repetition block keeps the reference current.
	modelValue := output.Raw(d.Target.Source, d.SourceSpan)
	update := WriteToView(d, el, elementVar, modelValue)

	result := &SynthesisResult{
		Name:             d.Name,
		TargetObjectName: d.ObjectPart,
		EventName:        schema.BindingEventName(el, d.Name),
		ValueVar:         valueVar,
		EventHandler:     s.buildHandlerStatements(valueVar, readExpr, handler),
		Handler:          handler,
		DOMUpdate:        update,
		InitialUpdate:    update,
		NeedsChangeLock:  needsChangeLock,
		IsReadOnly:       schema.IsReadOnlyMediaAttribute(d.Name) || schema.IsDimensionBinding(d.Name),
		IsReadOnlyMediaAttribute: schema.IsReadOnlyMediaAttribute(d.Name),
		GroupIndex:       groupIndex,
	}

	if override, ok := nameOverrides[d.Name]; ok {
		override(s, result, d, el, elementVar, block, modelValue)
	}
	if schema.IsDimensionBinding(d.Name) {
		// Dimensions are measured values; nothing is ever written back.
		result.DOMUpdate = nil
		result.InitialUpdate = nil
	}

	return result, nil
}

// buildHandlerStatements assembles the event handler body: read the new
// value, apply the mutation when one exists, then push the reactive
// property updates into the component and the store.
func (s *Synthesizer) buildHandlerStatements(valueVar string, readExpr output.OutputExpression, handler *Handler) []output.OutputStatement {
	stmts := []output.OutputStatement{
		output.NewDeclareVarStmt(valueVar, readExpr, nil),
	}
	if handler.Mutation != nil {
		stmts = append(stmts, handler.Mutation)
	}

	if len(handler.Props) > 0 {
		entries := make([]*output.LiteralMapEntry, len(handler.Props))
		for i, prop := range handler.Props {
			entries[i] = output.NewLiteralMapEntry(prop, s.propUpdateValue(prop, valueVar, handler), false)
		}
		set := output.InvokeFn(output.Variable(componentVar).Prop("set"), output.NewLiteralMapExpr(entries, nil))
		stmts = append(stmts, output.NewExpressionStatement(set, nil))
	}
	if len(handler.StoreProps) > 0 {
		entries := make([]*output.LiteralMapEntry, len(handler.StoreProps))
		for i, prop := range handler.StoreProps {
			entries[i] = output.NewLiteralMapEntry(prop, s.storeUpdateValue(prop, valueVar, handler), false)
		}
		store := output.Variable(componentVar).Prop("store")
		set := output.InvokeFn(output.NewReadPropExpr(store, "set", nil), output.NewLiteralMapExpr(entries, nil))
		stmts = append(stmts, output.NewExpressionStatement(set, nil))
	}
	return stmts
}

// propUpdateValue picks the value pushed for one local property. A bare
// identifier pushes the freshly read value; member and contextual shapes
// mutate in place and push the current reference to trigger re-evaluation.
func (s *Synthesizer) propUpdateValue(prop, valueVar string, handler *Handler) output.OutputExpression {
	if handler.Mutation == nil {
		return output.Variable(valueVar)
	}
	return output.Variable(ContextRoot).Prop(prop)
}

func (s *Synthesizer) storeUpdateValue(prop, valueVar string, handler *Handler) output.OutputExpression {
	if handler.Mutation == nil {
		return output.Variable(valueVar)
	}
	get := output.InvokeFn(output.Variable(componentVar).Prop("store").Prop("get"))
	return output.NewReadPropExpr(get, prop, nil)
}

// overrideFn adjusts the default synthesis for one special-cased binding
// name. Overrides are keyed by name and applied after the default
// computation so that adding a name cannot introduce order dependence.
type overrideFn func(s *Synthesizer, result *SynthesisResult, d *Directive, el *schema.ElementContext, elementVar string, block *Block, modelValue output.OutputExpression)

var nameOverrides = map[string]overrideFn{
	"group":       overrideGroup,
	"currentTime": overrideCurrentTime,
	"volume":      overrideVolume,
	"paused":      overridePaused,
}

// overrideGroup emits group-membership registration on creation and
// deregistration on destruction of the node.
func overrideGroup(s *Synthesizer, result *SynthesisResult, d *Directive, el *schema.ElementContext, elementVar string, block *Block, modelValue output.OutputExpression) {
	element := output.Variable(elementVar)
	group := output.Variable(bindingGroupsVar).Key(output.Literal(result.GroupIndex))

	register := output.InvokeFn(output.NewReadPropExpr(group, "push", nil), element)
	block.AddToHydrate(output.NewExpressionStatement(register, d.SourceSpan))

	indexOf := output.InvokeFn(output.NewReadPropExpr(group, "indexOf", nil), element)
	remove := output.InvokeFn(output.NewReadPropExpr(group, "splice", nil), indexOf, output.Literal(1))
	block.AddToDestroy(output.NewExpressionStatement(remove, d.SourceSpan))
}

// overrideCurrentTime guards against NaN writes and suppresses the
// initial-render write: seeking on first paint is disallowed.
func overrideCurrentTime(s *Synthesizer, result *SynthesisResult, d *Directive, el *schema.ElementContext, elementVar string, block *Block, modelValue output.OutputExpression) {
	result.UpdateGuard = notNaN(modelValue)
	result.InitialUpdate = nil
}

func overrideVolume(s *Synthesizer, result *SynthesisResult, d *Directive, el *schema.ElementContext, elementVar string, block *Block, modelValue output.OutputExpression) {
	result.UpdateGuard = notNaN(modelValue)
}

// overridePaused replaces the property write with a play/pause method
// invocation selected by comparing the last known state against the new
// value, preventing redundant restarts.
func overridePaused(s *Synthesizer, result *SynthesisResult, d *Directive, el *schema.ElementContext, elementVar string, block *Block, modelValue output.OutputExpression) {
	element := output.Variable(elementVar)
	lastVar := block.GetUniqueName(elementVar + "_is_paused")
	block.AddVariable(lastVar, output.Literal(true))

	changed := output.NewBinaryOperatorExpr(output.BinaryOperatorNotIdentical, output.Variable(lastVar), modelValue, nil)
	pause := output.NewExpressionStatement(output.InvokeFn(element.Prop("pause")), d.SourceSpan)
	play := output.NewExpressionStatement(output.InvokeFn(element.Prop("play")), d.SourceSpan)
	apply := output.NewIfStmt(modelValue, []output.OutputStatement{pause}, []output.OutputStatement{play}, d.SourceSpan)
	remember := output.NewExpressionStatement(output.Variable(lastVar).Set(modelValue), d.SourceSpan)

	result.DOMUpdate = output.NewIfStmt(changed, []output.OutputStatement{apply, remember}, nil, d.SourceSpan)
	result.InitialUpdate = nil
}

func notNaN(value output.OutputExpression) output.OutputExpression {
	return output.Not(output.InvokeFn(output.Variable("isNaN"), value))
}
