package store

import (
	"path/filepath"
	"testing"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "venue.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDataset() *model.Dataset {
	return &model.Dataset{
		Sales: []model.SalesDailyRecord{
			{Date: 45536, Month: "September", Day: "Monday", GameRevenue: 120000, FoodSale: 45000,
				Footfall: 350, NewCards: 40, RechargeCards: 25, NoOfParties: 2,
				PartyGameSale: 20000, PartyFoodSale: 15000, DateFormatted: "2024-09-01"},
			{Date: 45566, Month: "October", Day: "Tuesday", GameRevenue: 95000, FoodSale: 38000,
				Footfall: 280, DateFormatted: "2024-10-01"},
		},
		SalesMix: []model.SalesMixRecord{
			{Date: 45536, Month: "September", Activity: "Trampoline", Variant: "60 min",
				Revenue: 52000, Quantity: 40, DateFormatted: "2024-09-01"},
		},
		Recharge: []model.RechargeRecord{
			{Date: 45536, Month: "September", Cashier: "Asha", RechargeType: "CARD ISSUE",
				RechargeLevel: 1000, Quantity: 10, Amount: 10000, DateFormatted: "2024-09-01"},
		},
		Arcade: []model.ArcadeRecord{
			{Date: 45536, Month: "September", Day: "Monday", GameNameFinal: "Air Hockey",
				GameType: "Arcade", Quantity: 80, Credit: 3200, Bonus: 800, Total: 4000,
				DateFormatted: "2024-09-01"},
		},
	}
}

func TestReplaceAndLoadDataset(t *testing.T) {
	s := openTestStore(t)

	if err := s.ReplaceDataset(testDataset(), "batch-1"); err != nil {
		t.Fatalf("failed to replace dataset: %v", err)
	}

	loaded, err := s.LoadDataset()
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	if len(loaded.Sales) != 2 || len(loaded.SalesMix) != 1 || len(loaded.Recharge) != 1 || len(loaded.Arcade) != 1 {
		t.Fatalf("unexpected dataset counts: %+v", loaded.Counts())
	}
	if loaded.Sales[0].Month != "September" || loaded.Sales[0].GameRevenue != 120000 {
		t.Fatalf("unexpected first sales record: %+v", loaded.Sales[0])
	}
	if loaded.Arcade[0].GameNameFinal != "Air Hockey" || loaded.Arcade[0].Bonus != 800 {
		t.Fatalf("unexpected arcade record: %+v", loaded.Arcade[0])
	}

	// 二次导入整表替换，不产生叠加
	second := testDataset()
	second.Sales = second.Sales[:1]
	if err := s.ReplaceDataset(second, "batch-2"); err != nil {
		t.Fatalf("failed to replace dataset twice: %v", err)
	}
	loaded, err = s.LoadDataset()
	if err != nil {
		t.Fatalf("failed to reload dataset: %v", err)
	}
	if len(loaded.Sales) != 1 {
		t.Fatalf("expected replacement to clear prior rows, got %d sales rows", len(loaded.Sales))
	}
}

func TestListAvailableMonths(t *testing.T) {
	s := openTestStore(t)
	if err := s.ReplaceDataset(testDataset(), "batch-1"); err != nil {
		t.Fatalf("failed to replace dataset: %v", err)
	}

	months, err := s.ListAvailableMonths()
	if err != nil {
		t.Fatalf("failed to list months: %v", err)
	}
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}
	// 按日期序列升序：September 在 October 前
	if months[0].Month != "September" || months[1].Month != "October" {
		t.Fatalf("unexpected month order: %+v", months)
	}
	if months[0].SalesDays != 1 || months[0].MixCount != 1 || months[0].RechargeOps != 1 || months[0].ArcadeReads != 1 {
		t.Fatalf("unexpected september stats: %+v", months[0])
	}
	if months[0].TotalRecords != 4 {
		t.Fatalf("expected 4 total records for september, got %d", months[0].TotalRecords)
	}
}

func TestImportLogLifecycle(t *testing.T) {
	s := openTestStore(t)

	latest, err := s.LatestImportLog()
	if err != nil {
		t.Fatalf("failed to query empty import log: %v", err)
	}
	if latest != nil {
		t.Fatalf("expected no import log, got %+v", latest)
	}

	id, err := s.CreateImportLog("batch-1", "venue.xlsx", 2048)
	if err != nil {
		t.Fatalf("failed to create import log: %v", err)
	}
	if err := s.FinishImportLog(id, 30, 400, 120, 80, "completed", ""); err != nil {
		t.Fatalf("failed to finish import log: %v", err)
	}

	latest, err = s.LatestImportLog()
	if err != nil {
		t.Fatalf("failed to query import log: %v", err)
	}
	if latest == nil || latest.BatchID != "batch-1" || latest.Status != "completed" {
		t.Fatalf("unexpected import log: %+v", latest)
	}
	if latest.SalesRows != 30 || latest.ArcadeRows != 80 {
		t.Fatalf("unexpected row counts: %+v", latest)
	}
}

func TestSnapshotReplace(t *testing.T) {
	snap := NewSnapshot()
	if snap.Dataset() == nil || !snap.Dataset().Empty() {
		t.Fatal("expected empty initial snapshot")
	}

	snap.Replace(testDataset())
	if snap.Dataset().Empty() {
		t.Fatal("expected snapshot to hold replaced dataset")
	}
	if len(snap.Dataset().Sales) != 2 {
		t.Fatalf("unexpected sales count: %d", len(snap.Dataset().Sales))
	}

	snap.Replace(nil)
	if !snap.Dataset().Empty() {
		t.Fatal("expected nil replacement to reset snapshot")
	}
}
