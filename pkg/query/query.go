// Copyright 2025 Irohad Authors
//
// Query is the read-only projection surface over a WorldStateView
// snapshot. Queries never mutate their view and never check
// permissions — a surrounding policy layer is expected to gate which
// authority may issue which query before it reaches this package.

package query

import (
	"fmt"

	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/wsv"
)

// ErrNotFound is returned when the queried entity does not exist in
// the snapshot.
var ErrNotFound = fmt.Errorf("query: not found")

// GetAllDomains returns every domain in view, ordered by name.
func GetAllDomains(view *wsv.WorldStateView) []*domain.Domain {
	return view.ReadAllDomains()
}

// GetDomain returns the named domain, or ErrNotFound.
func GetDomain(view *wsv.WorldStateView, name domain.DomainID) (*domain.Domain, error) {
	d := view.ReadDomain(name)
	if d == nil {
		return nil, fmt.Errorf("%w: domain %s", ErrNotFound, name)
	}
	return d, nil
}

// GetAccount returns the account named by id, or ErrNotFound if either
// its domain or the account itself is absent.
func GetAccount(view *wsv.WorldStateView, id domain.AccountID) (*domain.Account, error) {
	d := view.ReadDomain(id.Domain)
	if d == nil {
		return nil, fmt.Errorf("%w: account %s", ErrNotFound, id)
	}
	account, ok := d.Accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", ErrNotFound, id)
	}
	return account, nil
}

// GetAccountAssets returns the assets held by accountID, ordered by
// asset id.
func GetAccountAssets(view *wsv.WorldStateView, accountID domain.AccountID) ([]*domain.Asset, error) {
	account, err := GetAccount(view, accountID)
	if err != nil {
		return nil, err
	}
	ids := domain.SortedAssetIDs(account.Assets)
	assets := make([]*domain.Asset, 0, len(ids))
	for _, id := range ids {
		assets = append(assets, account.Assets[id])
	}
	return assets, nil
}
