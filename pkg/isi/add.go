// Copyright 2025 Irohad Authors

package isi

import (
	"fmt"

	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/wsv"
)

// AddDomain is Add<Peer, Domain>: registering a new domain on the peer.
// It carries no permission check — adding the first domains to a fresh
// peer is a bootstrap operation performed by the genesis block, not a
// runtime-authorized one.
type AddDomain struct {
	Object domain.Domain
}

func (AddDomain) isInstruction() {}

// Execute inserts Object by name, failing if a domain with that name
// already exists.
func (i AddDomain) Execute(_ domain.AccountID, view *wsv.WorldStateView) (*wsv.WorldStateView, error) {
	clone := view.Clone()
	if clone.Domain(i.Object.Name) != nil {
		return nil, fmt.Errorf("%w: domain %s", ErrAlreadyExists, i.Object.Name)
	}
	clone.Peer().Domains[i.Object.Name] = domain.NewDomain(i.Object.Name)
	return clone, nil
}
