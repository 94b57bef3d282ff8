package binding_test

import (
	"strings"

	"github.com/VLVLKY/svelte/packages/compiler/src/expression_parser"
)

// target builds a resolved reference from a dotted path, the way the
// expression resolver would hand it to binding synthesis.
func target(path string, deps ...string) *expression_parser.ASTWithSource {
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
		deps = []string{parts[0]}
	}
	return expression_parser.NewASTWithSource(node, path, deps)
}

// keyedTarget builds a computed member access like list[i].
func keyedTarget(source, receiverName, keyName string, deps ...string) *expression_parser.ASTWithSource {
	receiver := expression_parser.NewIdentifier(
		expression_parser.NewParseSpan(0, len(receiverName)),
		expression_parser.NewAbsoluteSourceSpan(0, len(receiverName)),
		receiverName,
	)
	keyStart := len(receiverName) + 1
	key := expression_parser.NewIdentifier(
		expression_parser.NewParseSpan(keyStart, keyStart+len(keyName)),
		expression_parser.NewAbsoluteSourceSpan(keyStart, keyStart+len(keyName)),
		keyName,
	)
	node := expression_parser.NewKeyedRead(
		expression_parser.NewParseSpan(0, len(source)),
		expression_parser.NewAbsoluteSourceSpan(0, len(source)),
		receiver,
		key,
	)
	if len(deps) == 0 {
		deps = []string{receiverName}
	}
	return expression_parser.NewASTWithSource(node, source, deps)
}
