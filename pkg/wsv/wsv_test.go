package wsv

import (
	"testing"

	"github.com/irohad/irohad-core/pkg/domain"
)

func newTestPeer() *domain.Peer {
	return domain.NewPeer(domain.PeerID{Address: "127.0.0.1:8080"})
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	peer := newTestPeer()
	peer.Domains["wonderland"] = domain.NewDomain("wonderland")
	view := New(peer)

	clone := view.Clone()
	clone.Domain("wonderland").Accounts[domain.AccountID{Name: "alice", Domain: "wonderland"}] = domain.NewAccount(domain.AccountID{Name: "alice", Domain: "wonderland"})

	if len(view.Domain("wonderland").Accounts) != 0 {
		t.Fatalf("mutating the clone must not affect the original")
	}
	if len(clone.Domain("wonderland").Accounts) != 1 {
		t.Fatalf("expected the clone to retain its own mutation")
	}
}

func TestReadAllDomainsIsOrdered(t *testing.T) {
	peer := newTestPeer()
	peer.Domains["zeta"] = domain.NewDomain("zeta")
	peer.Domains["alpha"] = domain.NewDomain("alpha")
	view := New(peer)

	domains := view.ReadAllDomains()
	if len(domains) != 2 {
		t.Fatalf("expected two domains, got %d", len(domains))
	}
	if domains[0].Name != "alpha" || domains[1].Name != "zeta" {
		t.Fatalf("expected alphabetical order, got %v then %v", domains[0].Name, domains[1].Name)
	}
}

func TestDomainLookupMissingReturnsNil(t *testing.T) {
	view := New(newTestPeer())
	if view.Domain("nonexistent") != nil {
		t.Fatalf("expected nil for an unregistered domain")
	}
}
