// Copyright 2025 Irohad Authors
//
// Core identifiable entities: Peer, Domain, Account, AssetDefinition,
// Asset. Containers are plain maps keyed by identifier; callers that need
// deterministic iteration order (block application, queries) range over
// SortedKeys rather than the map directly.

package domain

import (
	"sort"

	"github.com/irohad/irohad-core/pkg/crypto"
)

// Peer is the process-wide singleton owning the world-state-view's
// domains and the set of other peers this node trusts.
type Peer struct {
	ID           PeerID
	TrustedPeers map[PeerID]struct{}
	Domains      map[DomainID]*Domain
}

// NewPeer constructs an empty Peer for id.
func NewPeer(id PeerID) *Peer {
	return &Peer{
		ID:           id,
		TrustedPeers: make(map[PeerID]struct{}),
		Domains:      make(map[DomainID]*Domain),
	}
}

// Domain is a named group of accounts and asset definitions.
type Domain struct {
	Name             DomainID
	Accounts         map[AccountID]*Account
	AssetDefinitions map[AssetDefinitionID]*AssetDefinition
}

// NewDomain constructs an empty Domain named name.
func NewDomain(name DomainID) *Domain {
	return &Domain{
		Name:             name,
		Accounts:         make(map[AccountID]*Account),
		AssetDefinitions: make(map[AssetDefinitionID]*AssetDefinition),
	}
}

// Account owns a set of assets and the signatory public keys authorized
// to act on its behalf.
type Account struct {
	ID          AccountID
	Assets      map[AssetID]*Asset
	Signatories map[crypto.PublicKey]struct{}
}

// NewAccount constructs an empty Account identified by id.
func NewAccount(id AccountID) *Account {
	return &Account{
		ID:          id,
		Assets:      make(map[AssetID]*Asset),
		Signatories: make(map[crypto.PublicKey]struct{}),
	}
}

// AssetDefinition names a class of asset within a domain. It carries no
// state of its own; Asset holds the per-account quantity.
type AssetDefinition struct {
	ID AssetDefinitionID
}

// NewAssetDefinition constructs an AssetDefinition identified by id.
func NewAssetDefinition(id AssetDefinitionID) *AssetDefinition {
	return &AssetDefinition{ID: id}
}

// Asset is the quantity of an AssetDefinition held by an Account.
// Quantity is unsigned; Mint and Transfer are responsible for rejecting
// operations that would make it negative before it ever reaches this
// type.
type Asset struct {
	ID       AssetID
	Quantity uint32
}

// NewAsset constructs a zero-quantity Asset identified by id.
func NewAsset(id AssetID) *Asset {
	return &Asset{ID: id}
}

// SortedDomainIDs returns the keys of domains in ascending order, giving
// callers a deterministic iteration order over an otherwise unordered Go
// map.
func SortedDomainIDs(domains map[DomainID]*Domain) []DomainID {
	keys := make([]DomainID, 0, len(domains))
	for k := range domains {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// SortedAccountIDs returns the keys of accounts in ascending string order.
func SortedAccountIDs(accounts map[AccountID]*Account) []AccountID {
	keys := make([]AccountID, 0, len(accounts))
	for k := range accounts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// SortedAssetIDs returns the keys of assets in ascending string order.
func SortedAssetIDs(assets map[AssetID]*Asset) []AssetID {
	keys := make([]AssetID, 0, len(assets))
	for k := range assets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// SortedAssetDefinitionIDs returns the keys of asset definitions in
// ascending string order.
func SortedAssetDefinitionIDs(defs map[AssetDefinitionID]*AssetDefinition) []AssetDefinitionID {
	keys := make([]AssetDefinitionID, 0, len(defs))
	for k := range defs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}
