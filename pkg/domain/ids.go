// Copyright 2025 Irohad Authors
//
// Identifiers for the core ledger entities. Identifiers are value types:
// comparable, totally ordered by String, and usable directly as Go map
// keys so that container iteration can be made deterministic by sorting
// keys before a walk.

package domain

import (
	"fmt"

	"github.com/irohad/irohad-core/pkg/crypto"
)

// DomainID identifies a Domain by its unique name.
type DomainID string

func (id DomainID) String() string { return string(id) }

// AccountID identifies an Account by name within a domain.
type AccountID struct {
	Name   string
	Domain DomainID
}

func (id AccountID) String() string {
	return fmt.Sprintf("%s@%s", id.Name, id.Domain)
}

// AssetDefinitionID identifies an AssetDefinition by name within a domain.
type AssetDefinitionID struct {
	Name   string
	Domain DomainID
}

func (id AssetDefinitionID) String() string {
	return fmt.Sprintf("%s#%s", id.Name, id.Domain)
}

// AssetID identifies an Asset by the pairing of its definition and the
// account that holds it.
type AssetID struct {
	Definition AssetDefinitionID
	Account    AccountID
}

func (id AssetID) String() string {
	return fmt.Sprintf("%s@%s", id.Definition, id.Account)
}

// PeerID identifies a Peer by its network address and public key.
type PeerID struct {
	Address   string
	PublicKey crypto.PublicKey
}

func (id PeerID) String() string {
	return fmt.Sprintf("%s/%s", id.Address, id.PublicKey)
}
