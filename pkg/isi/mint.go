// Copyright 2025 Irohad Authors

package isi

import (
	"fmt"
	"math"

	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/wsv"
)

// MintAsset is Mint<AssetId, u32>: creating or incrementing the asset
// quantity held by an account.
type MintAsset struct {
	AssetID  domain.AssetID
	Quantity uint32
}

func (MintAsset) isInstruction() {}

// Execute creates the Asset at AssetID if absent, then adds Quantity to
// it. Minting zero is accepted and still creates an absent Asset.
// Overflow past the u32 range is a precondition failure, not a panic.
func (i MintAsset) Execute(authority domain.AccountID, view *wsv.WorldStateView) (*wsv.WorldStateView, error) {
	if err := CanMintAsset(authority, i.AssetID.Definition); err != nil {
		return nil, err
	}
	clone := view.Clone()
	d := clone.Domain(i.AssetID.Account.Domain)
	if d == nil {
		return nil, fmt.Errorf("%w: domain %s", ErrNotFound, i.AssetID.Account.Domain)
	}
	acc, ok := d.Accounts[i.AssetID.Account]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", ErrNotFound, i.AssetID.Account)
	}
	if _, ok := d.AssetDefinitions[i.AssetID.Definition]; !ok {
		return nil, fmt.Errorf("%w: asset definition %s", ErrNotFound, i.AssetID.Definition)
	}

	asset, exists := acc.Assets[i.AssetID]
	if !exists {
		asset = domain.NewAsset(i.AssetID)
		acc.Assets[i.AssetID] = asset
	}
	if uint64(asset.Quantity)+uint64(i.Quantity) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: minting %d onto %d would overflow", ErrOverflow, i.Quantity, asset.Quantity)
	}
	asset.Quantity += i.Quantity
	return clone, nil
}
