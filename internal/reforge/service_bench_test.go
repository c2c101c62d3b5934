package reforge

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/economy"
	"github.com/osse101/Reforge_Go/internal/eligibility"
	"github.com/osse101/Reforge_Go/internal/inventory"
	"github.com/osse101/Reforge_Go/internal/levelstore"
	"github.com/osse101/Reforge_Go/internal/progression"
	"github.com/osse101/Reforge_Go/internal/recipe"
)

// benchService builds a service over a full nine-slot inventory
func benchService(b *testing.B) (Service, uuid.UUID) {
	b.Helper()
	ctx := context.Background()

	store, err := levelstore.OpenFile(ctx, filepath.Join(b.TempDir(), levelstore.DefaultFileName))
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = store.Close() })
	cached := levelstore.NewCached(store, 0, 0)

	gw := inventory.NewMemory(9, false)
	source := progression.StaticSource{Table: testTable()}
	filter := eligibility.NewFilter(source, cached, gw)
	svc := NewService(source, filter, cached, gw, economy.NewMemoryProvider(startBalance), recipe.NewResolver(source))

	player := uuid.New()
	items := []string{testSword, "Armor_Iron_Chest", testBar, "Weapon_Axe_Copper", "Armor_Iron_Legs"}
	for slot := 0; slot < 9; slot++ {
		stack := domain.ItemStack{ItemID: items[slot%len(items)], Quantity: 1}
		if err := gw.SetSlot(ctx, player, slot, stack); err != nil {
			b.Fatal(err)
		}
		if err := cached.Set(ctx, player, stack.ItemID, slot%4); err != nil {
			b.Fatal(err)
		}
	}
	return svc, player
}

func BenchmarkPreview(b *testing.B) {
	svc, player := benchService(b)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Preview(ctx, player, swordSlot); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReforgeableSlots(b *testing.B) {
	svc, player := benchService(b)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := svc.ReforgeableSlots(ctx, player); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdjustIncomingDamage(b *testing.B) {
	svc, _ := benchService(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = svc.AdjustIncomingDamage(100, 1, 2, 3, 4)
	}
}
