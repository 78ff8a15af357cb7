// Copyright 2025 Irohad Authors
//
// WorldStateView is the in-memory projection of committed ledger state:
// peer, its domains, their accounts and asset definitions, and the
// assets accounts hold. It is mutated only by instruction execution
// (package isi), which clones the view before mutating so a caller can
// roll back on failure simply by discarding the clone.

package wsv

import (
	"github.com/irohad/irohad-core/pkg/domain"
)

// WorldStateView is the root of the ledger's mutable state tree.
type WorldStateView struct {
	peer *domain.Peer
}

// New builds a WorldStateView owned by peer.
func New(peer *domain.Peer) *WorldStateView {
	return &WorldStateView{peer: peer}
}

// Peer returns the owning peer.
func (w *WorldStateView) Peer() *domain.Peer {
	return w.peer
}

// Domain returns a mutable pointer to the named domain, or nil if it
// does not exist. Used only inside instruction execution.
func (w *WorldStateView) Domain(name domain.DomainID) *domain.Domain {
	return w.peer.Domains[name]
}

// ReadDomain returns a read-only view of the named domain, or nil if it
// does not exist. Intended for queries.
func (w *WorldStateView) ReadDomain(name domain.DomainID) *domain.Domain {
	return w.peer.Domains[name]
}

// ReadAllDomains returns every domain, ordered by name so that result
// sets are reproducible across nodes.
func (w *WorldStateView) ReadAllDomains() []*domain.Domain {
	ids := domain.SortedDomainIDs(w.peer.Domains)
	out := make([]*domain.Domain, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.peer.Domains[id])
	}
	return out
}

// Clone produces a deep copy of the view down through accounts and
// assets, so that a clone mutated during instruction execution can be
// discarded without affecting the original on failure. Domain,
// Account and AssetDefinition values are copied by value; only the
// container maps and the pointers into them are duplicated, which is
// sufficient because entity identifiers are immutable once created.
func (w *WorldStateView) Clone() *WorldStateView {
	clonedPeer := &domain.Peer{
		ID:           w.peer.ID,
		TrustedPeers: cloneSet(w.peer.TrustedPeers),
		Domains:      make(map[domain.DomainID]*domain.Domain, len(w.peer.Domains)),
	}
	for id, d := range w.peer.Domains {
		clonedPeer.Domains[id] = cloneDomain(d)
	}
	return &WorldStateView{peer: clonedPeer}
}

func cloneDomain(d *domain.Domain) *domain.Domain {
	cloned := domain.NewDomain(d.Name)
	for id, acc := range d.Accounts {
		cloned.Accounts[id] = cloneAccount(acc)
	}
	for id, def := range d.AssetDefinitions {
		copyDef := *def
		cloned.AssetDefinitions[id] = &copyDef
	}
	return cloned
}

func cloneAccount(a *domain.Account) *domain.Account {
	cloned := domain.NewAccount(a.ID)
	for id, asset := range a.Assets {
		copyAsset := *asset
		cloned.Assets[id] = &copyAsset
	}
	for pk := range a.Signatories {
		cloned.Signatories[pk] = struct{}{}
	}
	return cloned
}

func cloneSet[K comparable](src map[K]struct{}) map[K]struct{} {
	out := make(map[K]struct{}, len(src))
	for k := range src {
		out[k] = struct{}{}
	}
	return out
}
