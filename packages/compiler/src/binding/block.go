package binding

import (
	"fmt"

	"github.com/VLVLKY/svelte/packages/compiler/src/output"
)

// Block accumulates the code artifacts synthesized for one generated view
// fragment: unique-name allocation, variable declarations, and the ordered
// hydrate (construction-time) and destroy (teardown-time) statement lists.
type Block struct {
	claimedNames map[string]int
	variables    []output.OutputStatement
	hydrate      []output.OutputStatement
	destroy      []output.OutputStatement
}

// NewBlock creates a new Block
func NewBlock() *Block {
	return &Block{
		claimedNames: make(map[string]int),
	}
}

// GetUniqueName claims a name unique within this block. The first claim
// returns the name itself, later claims get a numeric suffix.
func (b *Block) GetUniqueName(name string) string {
	count := b.claimedNames[name]
	b.claimedNames[name] = count + 1
	if count == 0 {
		return name
	}
	return fmt.Sprintf("%s%d", name, count)
}

// AddVariable declares a block-scoped variable
func (b *Block) AddVariable(name string, value output.OutputExpression) {
	b.variables = append(b.variables, output.NewDeclareVarStmt(name, value, nil))
}

// AddToHydrate appends a construction-time statement
func (b *Block) AddToHydrate(stmt output.OutputStatement) {
	b.hydrate = append(b.hydrate, stmt)
}

// AddToDestroy appends a teardown-time statement
func (b *Block) AddToDestroy(stmt output.OutputStatement) {
	b.destroy = append(b.destroy, stmt)
}

// Variables returns the declared variables in declaration order
func (b *Block) Variables() []output.OutputStatement {
	return b.variables
}

// HydrateStatements returns the hydrate list in append order
func (b *Block) HydrateStatements() []output.OutputStatement {
	return b.hydrate
}

// DestroyStatements returns the destroy list in append order
func (b *Block) DestroyStatements() []output.OutputStatement {
	return b.destroy
}
