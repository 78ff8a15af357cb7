// Copyright 2025 Irohad Authors

package isi

import (
	"fmt"

	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/wsv"
)

// RegisterAccount is Register<Domain, Account>: creating an account
// inside an existing domain.
type RegisterAccount struct {
	DestinationDomain domain.DomainID
	Object            domain.Account
}

func (RegisterAccount) isInstruction() {}

// Execute inserts Object into the destination domain's account map,
// failing if the domain is missing, the account already exists, or
// authority lacks CanRegisterAccount.
func (i RegisterAccount) Execute(authority domain.AccountID, view *wsv.WorldStateView) (*wsv.WorldStateView, error) {
	if err := CanRegisterAccount(authority, i.DestinationDomain); err != nil {
		return nil, err
	}
	clone := view.Clone()
	d := clone.Domain(i.DestinationDomain)
	if d == nil {
		return nil, fmt.Errorf("%w: domain %s", ErrNotFound, i.DestinationDomain)
	}
	if _, exists := d.Accounts[i.Object.ID]; exists {
		return nil, fmt.Errorf("%w: account %s", ErrAlreadyExists, i.Object.ID)
	}
	registered := i.Object
	d.Accounts[i.Object.ID] = &registered
	return clone, nil
}

// RegisterAssetDefinition is Register<Domain, AssetDefinition>: creating
// an asset definition inside an existing domain.
type RegisterAssetDefinition struct {
	DestinationDomain domain.DomainID
	Object            domain.AssetDefinition
}

func (RegisterAssetDefinition) isInstruction() {}

// Execute inserts Object into the destination domain's asset definition
// map, failing if the domain is missing, the definition already exists,
// or authority lacks CanRegisterAssetDefinition.
func (i RegisterAssetDefinition) Execute(authority domain.AccountID, view *wsv.WorldStateView) (*wsv.WorldStateView, error) {
	if err := CanRegisterAssetDefinition(authority, i.DestinationDomain); err != nil {
		return nil, err
	}
	clone := view.Clone()
	d := clone.Domain(i.DestinationDomain)
	if d == nil {
		return nil, fmt.Errorf("%w: domain %s", ErrNotFound, i.DestinationDomain)
	}
	if _, exists := d.AssetDefinitions[i.Object.ID]; exists {
		return nil, fmt.Errorf("%w: asset definition %s", ErrAlreadyExists, i.Object.ID)
	}
	registered := i.Object
	d.AssetDefinitions[i.Object.ID] = &registered
	return clone, nil
}
