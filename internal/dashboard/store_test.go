package dashboard_test

import (
	"errors"
	"testing"

	"github.com/spec-kit/verve-admin/internal/dashboard"
)

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := dashboard.NewStore[string]()
	store.Replace([]string{"a", "b"})

	snap := store.Snapshot()
	snap.Items[0] = "mutated"

	if got := store.Snapshot().Items[0]; got != "a" {
		t.Fatalf("store item = %q, want %q", got, "a")
	}
}

func TestStoreLastResponseWins(t *testing.T) {
	store := dashboard.NewStore[int]()

	// Two fetch cycles interleave; the response applied last is the state
	// that sticks, regardless of which fetch started first.
	store.SetLoading(true)
	store.Replace([]int{1, 2, 3})
	store.Replace([]int{4})

	snap := store.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0] != 4 {
		t.Fatalf("items = %v, want [4]", snap.Items)
	}
	if snap.Loading {
		t.Fatal("loading flag still set after replace")
	}
}

func TestStoreFailKeepsStaleItems(t *testing.T) {
	store := dashboard.NewStore[int]()
	store.Replace([]int{1, 2})

	failure := errors.New("boom")
	store.Fail(failure)

	snap := store.Snapshot()
	if !errors.Is(snap.Err, failure) {
		t.Fatalf("err = %v, want %v", snap.Err, failure)
	}
	if len(snap.Items) != 2 {
		t.Fatalf("items = %v, want stale data kept", snap.Items)
	}
}

func TestStoreReplaceClearsError(t *testing.T) {
	store := dashboard.NewStore[int]()
	store.Fail(errors.New("boom"))
	store.Replace([]int{1})

	if err := store.Snapshot().Err; err != nil {
		t.Fatalf("err = %v, want nil after replace", err)
	}
}

func TestStoreSubscribe(t *testing.T) {
	store := dashboard.NewStore[int]()
	ch, cancel := store.Subscribe()
	defer cancel()

	store.Replace([]int{1})

	select {
	case <-ch:
	default:
		t.Fatal("no notification after replace")
	}

	cancel()
	store.Replace([]int{2})
	select {
	case <-ch:
		t.Fatal("notification after unsubscribe")
	default:
	}
}
