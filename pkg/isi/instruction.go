// Copyright 2025 Irohad Authors
//
// Instruction is the closed algebra of Iroha Special Instructions: Add,
// Register, Mint, Transfer. Every variant except AddDomain is
// self-authorizing (it consults a permission predicate before touching
// the view; AddDomain has no permission check), and every variant is
// self-applying (it clones the view, mutates the clone, and returns it).
// The set is fixed — adding a new kind of instruction means adding a new
// file here, not opening the interface to arbitrary implementers
// elsewhere.

package isi

import (
	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/wsv"
)

// Instruction is satisfied only by the variants defined in this
// package.
type Instruction interface {
	// Execute runs the instruction as authority against view. On
	// success it returns a new view carrying the mutation; view itself
	// is left untouched. On failure it returns one of the sentinel
	// errors in errors.go, wrapped with context, and a nil view.
	Execute(authority domain.AccountID, view *wsv.WorldStateView) (*wsv.WorldStateView, error)
	isInstruction()
}
