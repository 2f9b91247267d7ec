package cart

import (
	"testing"

	"github.com/blvshy/doodleart-backend/pkg/enums"
)

func artworkItem(id int, price int) Item {
	return Item{
		Key:      CatalogLineKey(id),
		ItemID:   id,
		Title:    "Artwork",
		Price:    price,
		Category: enums.CategoryNature,
	}
}

func TestAddMergesByKey(t *testing.T) {
	t.Parallel()

	store := NewStore()
	for i := 0; i < 4; i++ {
		store.Add(artworkItem(1, 249))
	}

	snap := store.Snapshot()
	if len(snap.Lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(snap.Lines))
	}
	if snap.Lines[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", snap.Lines[0].Quantity)
	}
	if snap.TotalPrice != 4*249 {
		t.Fatalf("expected total %d, got %d", 4*249, snap.TotalPrice)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(artworkItem(3, 249))
	store.Add(artworkItem(1, 249))
	store.Add(artworkItem(3, 249))
	store.Add(artworkItem(7, 249))

	snap := store.Snapshot()
	ids := []int{snap.Lines[0].ItemID, snap.Lines[1].ItemID, snap.Lines[2].ItemID}
	if ids[0] != 3 || ids[1] != 1 || ids[2] != 7 {
		t.Fatalf("unexpected line order %v", ids)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(artworkItem(1, 249))
	store.Add(artworkItem(2, 249))

	if !store.UpdateQuantity(CatalogLineKey(1), 0) {
		t.Fatal("expected key to be found")
	}

	snap := store.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].ItemID != 2 {
		t.Fatalf("expected only artwork 2 to remain, got %+v", snap.Lines)
	}
	if snap.TotalPrice != 249 {
		t.Fatalf("removed line still counted in total: %d", snap.TotalPrice)
	}
}

func TestUpdateQuantityMissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(artworkItem(1, 249))

	if store.UpdateQuantity("item:99", 5) {
		t.Fatal("expected missing key to report not found")
	}
	if total := store.TotalPrice(); total != 249 {
		t.Fatalf("cart changed on no-op update: %d", total)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(artworkItem(1, 249))
	store.UpdateQuantity(CatalogLineKey(1), 7)

	if total := store.TotalPrice(); total != 7*249 {
		t.Fatalf("expected total %d, got %d", 7*249, total)
	}
}

func TestRemoveAndClear(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(artworkItem(1, 249))
	store.Add(artworkItem(2, 300))

	if !store.Remove(CatalogLineKey(1)) {
		t.Fatal("expected remove to find the line")
	}
	if store.Remove(CatalogLineKey(1)) {
		t.Fatal("second remove should be a no-op")
	}
	if total := store.TotalPrice(); total != 300 {
		t.Fatalf("expected total 300, got %d", total)
	}

	store.Clear()
	snap := store.Snapshot()
	if len(snap.Lines) != 0 || snap.TotalPrice != 0 || snap.TotalQuantity != 0 {
		t.Fatalf("expected empty cart, got %+v", snap)
	}
}

func TestEmptyCartTotalIsZero(t *testing.T) {
	t.Parallel()

	if total := NewStore().TotalPrice(); total != 0 {
		t.Fatalf("expected 0, got %d", total)
	}
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var seen []int
	unsubscribe := store.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap.TotalQuantity)
	})

	store.Add(artworkItem(1, 249))
	store.Add(artworkItem(1, 249))
	store.UpdateQuantity(CatalogLineKey(1), 5)
	store.Clear()

	want := []int{1, 2, 5, 0}
	if len(seen) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("notification %d: expected quantity %d, got %d", i, want[i], seen[i])
		}
	}

	unsubscribe()
	store.Add(artworkItem(2, 249))
	if len(seen) != len(want) {
		t.Fatal("unsubscribed observer was still notified")
	}
}

func TestSnapshotIsFrozen(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(artworkItem(1, 249))
	snap := store.Snapshot()

	store.Add(artworkItem(1, 249))
	store.Add(artworkItem(2, 249))

	if len(snap.Lines) != 1 || snap.Lines[0].Quantity != 1 || snap.TotalPrice != 249 {
		t.Fatalf("snapshot mutated by later cart writes: %+v", snap)
	}
}

func TestRegistrySharesStorePerSession(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	a := reg.Get("session-a")
	if reg.Get("session-a") != a {
		t.Fatal("same session should resolve to the same store")
	}
	if reg.Get("session-b") == a {
		t.Fatal("different sessions must not share a store")
	}
	if reg.Len() != 2 {
		t.Fatalf("expected 2 stores, got %d", reg.Len())
	}

	reg.Drop("session-a")
	if reg.Len() != 1 {
		t.Fatalf("expected 1 store after drop, got %d", reg.Len())
	}
}
