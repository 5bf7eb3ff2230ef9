package persist

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/facture/internal/clock"
	"github.com/smallbiznis/facture/internal/events"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/smallbiznis/facture/internal/store"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func newTestStore(t *testing.T, bus *events.Bus) *store.Store {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return store.New(store.Params{
		GenID: node,
		Clock: clock.Fixed{At: time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)},
		Bus:   bus,
		Log:   zap.NewNop(),
	})
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo, err := NewRepository(newTestDB(t), "invoice-storage", zap.NewNop())
	if err != nil {
		t.Fatalf("repository: %v", err)
	}

	invoice := invdomain.Invoice{
		InvoiceNumber: "INV-2026-0042",
		Notes:         "cached session",
		Items:         []invdomain.Item{{ID: "1", Name: "Hosting", Quantity: 1, Price: 25, Amount: 25}},
	}
	doc, err := json.Marshal(invoice)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := repo.Save(context.Background(), doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected cached invoice")
	}
	if loaded.InvoiceNumber != "INV-2026-0042" || loaded.Notes != "cached session" {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestSaveUpserts(t *testing.T) {
	repo, err := NewRepository(newTestDB(t), "invoice-storage", zap.NewNop())
	if err != nil {
		t.Fatalf("repository: %v", err)
	}

	for _, number := range []string{"INV-2026-0001", "INV-2026-0002"} {
		doc, _ := json.Marshal(invdomain.Invoice{InvoiceNumber: number})
		if err := repo.Save(context.Background(), doc); err != nil {
			t.Fatalf("save %s: %v", number, err)
		}
	}

	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.InvoiceNumber != "INV-2026-0002" {
		t.Fatalf("latest save lost: %q", loaded.InvoiceNumber)
	}

	var count int64
	repo.db.Model(&StoreDocument{}).Count(&count)
	if count != 1 {
		t.Fatalf("row count = %d, want 1", count)
	}
}

func TestLoadMissing(t *testing.T) {
	repo, err := NewRepository(newTestDB(t), "invoice-storage", zap.NewNop())
	if err != nil {
		t.Fatalf("repository: %v", err)
	}
	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil for a fresh cache, got %+v", loaded)
	}
}

func TestLoadCorruptRecord(t *testing.T) {
	db := newTestDB(t)
	repo, err := NewRepository(db, "invoice-storage", zap.NewNop())
	if err != nil {
		t.Fatalf("repository: %v", err)
	}
	if err := db.Exec(
		`INSERT INTO store_documents (name, document, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		"invoice-storage", `{not json`,
	).Error; err != nil {
		t.Fatalf("insert corrupt record: %v", err)
	}

	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != nil {
		t.Fatalf("corrupt record should read as absent")
	}
}

func TestAttachRestoresAndSaves(t *testing.T) {
	repo, err := NewRepository(newTestDB(t), "invoice-storage", zap.NewNop())
	if err != nil {
		t.Fatalf("repository: %v", err)
	}

	cached := invdomain.Invoice{InvoiceNumber: "INV-2026-0042", Notes: "restored"}
	doc, _ := json.Marshal(cached)
	if err := repo.Save(context.Background(), doc); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	bus := events.NewBus(zap.NewNop())
	st := newTestStore(t, bus)
	if err := Attach(repo, st, bus, zap.NewNop()); err != nil {
		t.Fatalf("attach: %v", err)
	}

	inv, _ := st.Snapshot()
	if inv.InvoiceNumber != "INV-2026-0042" || inv.Notes != "restored" {
		t.Fatalf("cached session not restored: %+v", inv)
	}

	// Every mutation after attach lands in the cache.
	st.SetNotes("edited after restore")
	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Notes != "edited after restore" {
		t.Fatalf("cache not updated, notes = %q", loaded.Notes)
	}
}
