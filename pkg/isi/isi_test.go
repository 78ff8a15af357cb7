package isi

import (
	"errors"
	"strings"
	"testing"

	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/wsv"
)

func newView() *wsv.WorldStateView {
	peer := domain.NewPeer(domain.PeerID{Address: "127.0.0.1:8080"})
	return wsv.New(peer)
}

func mustAddDomain(t *testing.T, view *wsv.WorldStateView, name domain.DomainID) *wsv.WorldStateView {
	t.Helper()
	next, err := (AddDomain{Object: *domain.NewDomain(name)}).Execute(domain.AccountID{}, view)
	if err != nil {
		t.Fatalf("AddDomain(%s): %v", name, err)
	}
	return next
}

func TestAddDomainRejectsDuplicate(t *testing.T) {
	view := mustAddDomain(t, newView(), "wonderland")
	if _, err := (AddDomain{Object: *domain.NewDomain("wonderland")}).Execute(domain.AccountID{}, view); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegisterAccountDomainLocal(t *testing.T) {
	view := mustAddDomain(t, newView(), "wonderland")
	authority := domain.AccountID{Name: "alice", Domain: "wonderland"}
	accID := domain.AccountID{Name: "bob", Domain: "wonderland"}

	next, err := (RegisterAccount{DestinationDomain: "wonderland", Object: *domain.NewAccount(accID)}).Execute(authority, view)
	if err != nil {
		t.Fatalf("RegisterAccount: %v", err)
	}
	if _, ok := next.Domain("wonderland").Accounts[accID]; !ok {
		t.Fatalf("expected account to be registered")
	}
}

func TestRegisterAccountRejectsCrossDomainNonAdmin(t *testing.T) {
	view := mustAddDomain(t, newView(), "wonderland")
	authority := domain.AccountID{Name: "alice", Domain: "otherland"}
	accID := domain.AccountID{Name: "bob", Domain: "wonderland"}

	if _, err := (RegisterAccount{DestinationDomain: "wonderland", Object: *domain.NewAccount(accID)}).Execute(authority, view); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestRegisterAccountAdminOverride(t *testing.T) {
	view := mustAddDomain(t, newView(), "wonderland")
	authority := domain.AccountID{Name: "admin", Domain: "wonderland"}
	accID := domain.AccountID{Name: "bob", Domain: "wonderland"}

	if _, err := (RegisterAccount{DestinationDomain: "wonderland", Object: *domain.NewAccount(accID)}).Execute(authority, view); err != nil {
		t.Fatalf("expected admin override to succeed: %v", err)
	}
}

func TestRegisterAccountRejectsDuplicate(t *testing.T) {
	view := mustAddDomain(t, newView(), "wonderland")
	authority := domain.AccountID{Name: "alice", Domain: "wonderland"}
	accID := domain.AccountID{Name: "alice", Domain: "wonderland"}

	next, err := (RegisterAccount{DestinationDomain: "wonderland", Object: *domain.NewAccount(accID)}).Execute(authority, view)
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err = (RegisterAccount{DestinationDomain: "wonderland", Object: *domain.NewAccount(accID)}).Execute(authority, next)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists on re-registration, got %v", err)
	}
	if !strings.Contains(err.Error(), "already contains") {
		t.Fatalf("expected error text to contain %q, got %q", "already contains", err.Error())
	}
}

func setupMintScenario(t *testing.T) (*wsv.WorldStateView, domain.AssetID) {
	t.Helper()
	view := mustAddDomain(t, newView(), "domain")
	admin := domain.AccountID{Name: "admin", Domain: "domain"}
	a1 := domain.AccountID{Name: "a1", Domain: "domain"}
	defID := domain.AssetDefinitionID{Name: "xor", Domain: "domain"}

	view, err := (RegisterAccount{DestinationDomain: "domain", Object: *domain.NewAccount(a1)}).Execute(admin, view)
	if err != nil {
		t.Fatalf("register a1: %v", err)
	}
	view, err = (RegisterAssetDefinition{DestinationDomain: "domain", Object: *domain.NewAssetDefinition(defID)}).Execute(admin, view)
	if err != nil {
		t.Fatalf("register asset definition: %v", err)
	}
	return view, domain.AssetID{Definition: defID, Account: a1}
}

func TestMintCreatesAssetAndAccumulates(t *testing.T) {
	view, assetID := setupMintScenario(t)
	admin := domain.AccountID{Name: "admin", Domain: "domain"}

	next, err := (MintAsset{AssetID: assetID, Quantity: 200}).Execute(admin, view)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	asset := next.Domain("domain").Accounts[assetID.Account].Assets[assetID]
	if asset == nil || asset.Quantity != 200 {
		t.Fatalf("expected quantity 200, got %+v", asset)
	}

	next, err = (MintAsset{AssetID: assetID, Quantity: 50}).Execute(admin, next)
	if err != nil {
		t.Fatalf("second mint: %v", err)
	}
	asset = next.Domain("domain").Accounts[assetID.Account].Assets[assetID]
	if asset.Quantity != 250 {
		t.Fatalf("expected accumulated quantity 250, got %d", asset.Quantity)
	}
}

func TestMintRejectsNonAdmin(t *testing.T) {
	view, assetID := setupMintScenario(t)
	nonAdmin := domain.AccountID{Name: "a1", Domain: "domain"}
	if _, err := (MintAsset{AssetID: assetID, Quantity: 1}).Execute(nonAdmin, view); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestTransferMovesQuantity(t *testing.T) {
	view, assetID := setupMintScenario(t)
	admin := domain.AccountID{Name: "admin", Domain: "domain"}
	a1 := assetID.Account
	a2 := domain.AccountID{Name: "a2", Domain: "domain"}

	view, err := (RegisterAccount{DestinationDomain: "domain", Object: *domain.NewAccount(a2)}).Execute(admin, view)
	if err != nil {
		t.Fatalf("register a2: %v", err)
	}
	view, err = (MintAsset{AssetID: assetID, Quantity: 200}).Execute(admin, view)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	next, err := (TransferAsset{Source: a1, Definition: assetID.Definition, Quantity: 20, Destination: a2}).Execute(a1, view)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}

	srcAsset := next.Domain("domain").Accounts[a1].Assets[assetID]
	destAssetID := domain.AssetID{Definition: assetID.Definition, Account: a2}
	destAsset := next.Domain("domain").Accounts[a2].Assets[destAssetID]
	if srcAsset.Quantity != 180 {
		t.Fatalf("expected source quantity 180, got %d", srcAsset.Quantity)
	}
	if destAsset == nil || destAsset.Quantity != 20 {
		t.Fatalf("expected destination quantity 20, got %+v", destAsset)
	}
}

func TestTransferRejectsUnderflow(t *testing.T) {
	view, assetID := setupMintScenario(t)
	admin := domain.AccountID{Name: "admin", Domain: "domain"}
	a1 := assetID.Account
	a2 := domain.AccountID{Name: "a2", Domain: "domain"}

	view, err := (RegisterAccount{DestinationDomain: "domain", Object: *domain.NewAccount(a2)}).Execute(admin, view)
	if err != nil {
		t.Fatalf("register a2: %v", err)
	}
	view, err = (MintAsset{AssetID: assetID, Quantity: 10}).Execute(admin, view)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := (TransferAsset{Source: a1, Definition: assetID.Definition, Quantity: 20, Destination: a2}).Execute(a1, view); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow on underflow, got %v", err)
	}
}

func TestTransferSameAccountIsNoOp(t *testing.T) {
	view, assetID := setupMintScenario(t)
	admin := domain.AccountID{Name: "admin", Domain: "domain"}
	a1 := assetID.Account

	view, err := (MintAsset{AssetID: assetID, Quantity: 50}).Execute(admin, view)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	next, err := (TransferAsset{Source: a1, Definition: assetID.Definition, Quantity: 50, Destination: a1}).Execute(a1, view)
	if err != nil {
		t.Fatalf("expected self-transfer no-op to succeed: %v", err)
	}
	asset := next.Domain("domain").Accounts[a1].Assets[assetID]
	if asset.Quantity != 50 {
		t.Fatalf("expected quantity to remain 50, got %d", asset.Quantity)
	}
}

func TestTransferRejectsUnauthorizedAuthority(t *testing.T) {
	view, assetID := setupMintScenario(t)
	admin := domain.AccountID{Name: "admin", Domain: "domain"}
	a1 := assetID.Account
	a2 := domain.AccountID{Name: "a2", Domain: "domain"}
	mallory := domain.AccountID{Name: "mallory", Domain: "domain"}

	view, err := (RegisterAccount{DestinationDomain: "domain", Object: *domain.NewAccount(a2)}).Execute(admin, view)
	if err != nil {
		t.Fatalf("register a2: %v", err)
	}
	view, err = (RegisterAccount{DestinationDomain: "domain", Object: *domain.NewAccount(mallory)}).Execute(admin, view)
	if err != nil {
		t.Fatalf("register mallory: %v", err)
	}
	view, err = (MintAsset{AssetID: assetID, Quantity: 50}).Execute(admin, view)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := (TransferAsset{Source: a1, Definition: assetID.Definition, Quantity: 10, Destination: a2}).Execute(mallory, view); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}
