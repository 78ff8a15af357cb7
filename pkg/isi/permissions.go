// Copyright 2025 Irohad Authors
//
// Permission predicates consulted by instruction execution before any
// mutation is attempted. The admin convention (an account named "admin"
// within any domain acts as that domain's administrator) mirrors the
// admin@<domain> account the reference implementation always
// provisions at genesis.

package isi

import (
	"fmt"

	"github.com/irohad/irohad-core/pkg/domain"
)

const adminAccountName = "admin"

func isDomainAdmin(authority domain.AccountID, target domain.DomainID) bool {
	return authority.Name == adminAccountName && authority.Domain == target
}

// CanRegisterAccount reports whether authority may register a new
// account in target: domain-local registration, or the target domain's
// admin account.
func CanRegisterAccount(authority domain.AccountID, target domain.DomainID) error {
	if authority.Domain == target || isDomainAdmin(authority, target) {
		return nil
	}
	return fmt.Errorf("%w: %s may not register accounts in domain %s", ErrPermissionDenied, authority, target)
}

// CanRegisterAssetDefinition reports whether authority may register a
// new asset definition in target, under the same domain-local-or-admin
// rule as CanRegisterAccount.
func CanRegisterAssetDefinition(authority domain.AccountID, target domain.DomainID) error {
	if authority.Domain == target || isDomainAdmin(authority, target) {
		return nil
	}
	return fmt.Errorf("%w: %s may not register asset definitions in domain %s", ErrPermissionDenied, authority, target)
}

// CanMintAsset reports whether authority may mint units of the asset
// definition identified by def: only that definition's domain admin may
// mint.
func CanMintAsset(authority domain.AccountID, def domain.AssetDefinitionID) error {
	if isDomainAdmin(authority, def.Domain) {
		return nil
	}
	return fmt.Errorf("%w: %s may not mint asset %s", ErrPermissionDenied, authority, def)
}

// CanTransferAsset reports whether authority may move assets out of
// source: an account only ever moves its own funds, or a domain admin
// acts on behalf of any account within its own domain.
func CanTransferAsset(authority, source domain.AccountID) error {
	if authority == source || isDomainAdmin(authority, source.Domain) {
		return nil
	}
	return fmt.Errorf("%w: %s may not transfer from account %s", ErrPermissionDenied, authority, source)
}
