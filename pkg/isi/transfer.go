// Copyright 2025 Irohad Authors

package isi

import (
	"fmt"

	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/wsv"
)

// TransferAsset is Transfer<AccountId, Asset, AccountId>: moving
// Quantity units of Definition from Source to Destination, both
// accounts of the same asset definition.
type TransferAsset struct {
	Source      domain.AccountID
	Definition  domain.AssetDefinitionID
	Quantity    uint32
	Destination domain.AccountID
}

func (TransferAsset) isInstruction() {}

// Execute decrements the source's asset and increments the
// destination's. A transfer between identical source and destination is
// a no-op that still succeeds provided permission passes and the source
// asset exists. Insufficient source quantity or a destination asset
// under a different definition are precondition failures.
func (i TransferAsset) Execute(authority domain.AccountID, view *wsv.WorldStateView) (*wsv.WorldStateView, error) {
	if err := CanTransferAsset(authority, i.Source); err != nil {
		return nil, err
	}
	clone := view.Clone()

	sourceDomain := clone.Domain(i.Source.Domain)
	if sourceDomain == nil {
		return nil, fmt.Errorf("%w: domain %s", ErrNotFound, i.Source.Domain)
	}
	sourceAccount, ok := sourceDomain.Accounts[i.Source]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", ErrNotFound, i.Source)
	}
	sourceAssetID := domain.AssetID{Definition: i.Definition, Account: i.Source}
	sourceAsset, ok := sourceAccount.Assets[sourceAssetID]
	if !ok {
		return nil, fmt.Errorf("%w: asset %s", ErrNotFound, sourceAssetID)
	}
	if i.Source == i.Destination {
		return clone, nil
	}
	if sourceAsset.Quantity < i.Quantity {
		return nil, fmt.Errorf("%w: account %s holds %d of %s, cannot transfer %d",
			ErrOverflow, i.Source, sourceAsset.Quantity, i.Definition, i.Quantity)
	}

	destDomain := clone.Domain(i.Destination.Domain)
	if destDomain == nil {
		return nil, fmt.Errorf("%w: domain %s", ErrNotFound, i.Destination.Domain)
	}
	destAccount, ok := destDomain.Accounts[i.Destination]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", ErrNotFound, i.Destination)
	}
	destAssetID := domain.AssetID{Definition: i.Definition, Account: i.Destination}
	destAsset, exists := destAccount.Assets[destAssetID]
	if !exists {
		destAsset = domain.NewAsset(destAssetID)
		destAccount.Assets[destAssetID] = destAsset
	} else if destAsset.ID.Definition != i.Definition {
		return nil, fmt.Errorf("%w: destination asset %s is not of definition %s", ErrDefinitionMismatch, destAsset.ID, i.Definition)
	}

	sourceAsset.Quantity -= i.Quantity
	destAsset.Quantity += i.Quantity
	return clone, nil
}
