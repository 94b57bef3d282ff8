// sveltec synthesizes two-way binding code for a fixture of elements and
// binding directives, printing the generated handler, update, hydrate and
// destroy code per directive.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/VLVLKY/svelte/packages/compiler/src/binding"
	"github.com/VLVLKY/svelte/packages/compiler/src/config"
	"github.com/VLVLKY/svelte/packages/compiler/src/expression_parser"
	"github.com/VLVLKY/svelte/packages/compiler/src/output"
	"github.com/VLVLKY/svelte/packages/compiler/src/schema"
	"github.com/VLVLKY/svelte/packages/compiler/src/util"
)

var (
	inputFile  string
	configFile string
	outputFile string
	showHelp   bool
)

func init() {
	flag.StringVar(&inputFile, "input", "", "Binding fixture file (YAML, required)")
	flag.StringVar(&inputFile, "i", "", "Binding fixture file (shorthand)")
	flag.StringVar(&configFile, "config", "", "Compiler config file (YAML/JSON)")
	flag.StringVar(&configFile, "c", "", "Compiler config file (shorthand)")
	flag.StringVar(&outputFile, "output", "", "Output file (default: stdout)")
	flag.StringVar(&outputFile, "o", "", "Output file (shorthand)")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
}

// fixture is the YAML description of one compilation unit's elements and
// their binding directives.
type fixture struct {
	Scope    []string         `yaml:"scope"`
	Elements []fixtureElement `yaml:"elements"`
}

type fixtureElement struct {
	Tag      string            `yaml:"tag"`
	Var      string            `yaml:"var"`
	Attrs    map[string]string `yaml:"attrs"`
	Head     string            `yaml:"head"`
	Bindings []fixtureBinding  `yaml:"bindings"`
}

type fixtureBinding struct {
	Name   string   `yaml:"name"`
	Target string   `yaml:"target"`
	Deps   []string `yaml:"deps"`
}

func main() {
	flag.Parse()
	if showHelp || inputFile == "" {
		flag.Usage()
		if inputFile == "" {
			os.Exit(2)
		}
		return
	}

	cfg := config.NewCompilerConfig()
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	var fix fixture
	if err := yaml.Unmarshal(data, &fix); err != nil {
		fmt.Fprintf(os.Stderr, "Error: parsing fixture: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := run(cfg, &fix, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.CompilerConfig, fix *fixture, out *os.File) error {
	scope := expression_parser.NewScope(fix.Scope...)
	synthesizer := binding.NewSynthesizer(cfg, binding.NewGroupRegistry())
	emitter := output.NewJSEmitter()

	for _, element := range fix.Elements {
		el := schema.NewElementContext(element.Tag, element.Attrs)
		block := binding.NewBlock()

		for _, b := range element.Bindings {
			target, perr := resolveTarget(b.Target, b.Deps)
			if perr != nil {
				return perr
			}
			directive, perr := binding.NewDirective(b.Name, target, scope, nil)
			if perr != nil {
				return perr
			}
			result, perr := synthesizer.Synthesize(directive, el, element.Var, block, element.Head)
			if perr != nil {
				return perr
			}
			printResult(out, emitter, element.Var, result)
		}

		printBlock(out, emitter, element.Var, block)
	}
	return nil
}

func printResult(out *os.File, emitter *output.JSEmitter, elementVar string, result *binding.SynthesisResult) {
	fmt.Fprintf(out, "// %s bind:%s (%s event, lock=%t)\n", elementVar, result.Name, result.EventName, result.NeedsChangeLock)
	fmt.Fprintf(out, "// handler:\n%s\n", emitter.EmitStatements(result.EventHandler))
	if result.UpdateGuard != nil {
		fmt.Fprintf(out, "// guard: %s\n", emitter.EmitExpression(result.UpdateGuard))
	}
	if result.DOMUpdate != nil {
		fmt.Fprintf(out, "// update:\n%s\n", emitter.EmitStatement(result.DOMUpdate))
	}
	if result.InitialUpdate != nil && result.InitialUpdate == result.DOMUpdate {
		fmt.Fprintf(out, "// initial update: same as update\n")
	}
	fmt.Fprintln(out)
}

func printBlock(out *os.File, emitter *output.JSEmitter, elementVar string, block *binding.Block) {
	if vars := block.Variables(); len(vars) > 0 {
		fmt.Fprintf(out, "// %s variables:\n%s\n", elementVar, emitter.EmitStatements(vars))
	}
	if hydrate := block.HydrateStatements(); len(hydrate) > 0 {
		fmt.Fprintf(out, "// %s hydrate:\n%s\n", elementVar, emitter.EmitStatements(hydrate))
	}
	if destroy := block.DestroyStatements(); len(destroy) > 0 {
		fmt.Fprintf(out, "// %s destroy:\n%s\n", elementVar, emitter.EmitStatements(destroy))
	}
	fmt.Fprintln(out)
}

// resolveTarget builds a resolved reference from a dotted path. The real
// compiler hands binding synthesis fully resolved expressions; the fixture
// format only needs identifier chains.
func resolveTarget(path string, deps []string) (*expression_parser.ASTWithSource, *util.ParseError) {
	if path == "" {
		return nil, util.NewParseError(nil, "fixture binding has no target")
	}
	parts := strings.Split(path, ".")
	offset := len(parts[0])
	var node expression_parser.AST = expression_parser.NewIdentifier(
		expression_parser.NewParseSpan(0, offset),
		expression_parser.NewAbsoluteSourceSpan(0, offset),
		parts[0],
	)
	for _, part := range parts[1:] {
		nameStart := offset + 1
		offset = nameStart + len(part)
		node = expression_parser.NewPropertyRead(
			expression_parser.NewParseSpan(0, offset),
			expression_parser.NewAbsoluteSourceSpan(0, offset),
			expression_parser.NewAbsoluteSourceSpan(nameStart, offset),
			node,
			part,
		)
	}
	if len(deps) == 0 {
		root := expression_parser.OutermostIdentifier(node)
		deps = []string{root.Name}
	}
	return expression_parser.NewASTWithSource(node, path, deps), nil
}
