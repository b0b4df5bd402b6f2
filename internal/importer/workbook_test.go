package importer

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook 构造内存测试工作簿
func buildWorkbook(t *testing.T) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetSales)
	if _, err := f.NewSheet(SheetSalesMix); err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}
	if _, err := f.NewSheet(SheetRecharge); err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}
	if _, err := f.NewSheet(SheetArcade); err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}

	// Sales data: 表头前有标题行，验证表头扫描
	salesRows := [][]interface{}{
		{"Venue Daily Report"},
		{},
		{"Date", "Month", "Day", "Game Revenue", "", "", "Arcade Credit", "Arcade Bonus", "", "Food Sale",
			"Footfall", "", "New Cards", "Recharge Cards", "", "", "", "", "", "",
			"", "Party Game Sale", "Party Food Sale", "No of Parties"},
		{45536, "September", "Monday", 120000, "", "", 30000, 9000, "", 45000,
			350, "", 40, 25, "", "", "", "", "", "",
			"", 20000, 15000, 2},
		{45537, "September", "Tuesday", 95000, "", "", 25000, 6000, "", 38000,
			280, "", 30, 18, "", "", "", "", "", "",
			"", 0, 0, 0},
		{"Total"},
	}
	for i, row := range salesRows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSales, cellRef, &row); err != nil {
			t.Fatalf("failed to write sales row: %v", err)
		}
	}

	// Sales mix: 表头第二行，含汇总行
	mixRows := [][]interface{}{
		{"Sales Mix"},
		{"Date", "Month", "Day", "Activity", "Variant", "REVENUE ", "QUANTITY "},
		{45536, "September", "Monday", "Trampoline ", "60 min Session", 52000, 40},
		{45536, "September", "Monday", "BOWLING", "Combo Thrill Pack", 30000, 12},
		{45536, "September", "Monday", "GRAND TOTAL", "", 82000, 52},
		{45537, "September", "Tuesday", "", "Stray", 100, 1},
	}
	for i, row := range mixRows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSalesMix, cellRef, &row); err != nil {
			t.Fatalf("failed to write mix row: %v", err)
		}
	}

	// Recharge data: 表头首行
	rechargeRows := [][]interface{}{
		{"Date", "Month", "Cashier", "Recharge_Type", "Recharge_Level", "Quantity", "Amount"},
		{45536, "September", "Asha", "CARD ISSUE ", 1000, 10, 10000},
		{45536, "September", "Ravi", "RECHARGE CARD", 3000, 5, 15000},
		{45536, "September", "", "GRAND TOTAL ", "", 15, 25000},
	}
	for i, row := range rechargeRows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetRecharge, cellRef, &row); err != nil {
			t.Fatalf("failed to write recharge row: %v", err)
		}
	}

	// ARCADE: 表头第二行，要求日期与最终机台名同时存在
	arcadeRows := [][]interface{}{
		{"Arcade Readings"},
		{"DATE ", "Month", "DAY", "GAME NAME FINAL", "GAME NAME", "Type of Game", "QTY", "CREDIT", "BONUS ", "Total"},
		{45536, "September", "Monday", "Air Hockey", "AIR HOCKEY 01", "Arcade", 80, 3200, 800, 4000},
		{45536, "September", "Monday", "", "ORPHAN ROW", "Arcade", 5, 100, 0, 100},
		{45536, "September", "Monday", "VR Racer", "VR RACER", "VR", 20, 1500, 900, 2400},
	}
	for i, row := range arcadeRows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetArcade, cellRef, &row); err != nil {
			t.Fatalf("failed to write arcade row: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseAll(t *testing.T) {
	imp := New()
	if imp.BatchID() == "" {
		t.Fatal("expected non-empty batch id")
	}
	if err := imp.Load(buildWorkbook(t)); err != nil {
		t.Fatalf("failed to load workbook: %v", err)
	}
	defer imp.Close()

	ds, err := imp.ParseAll()
	if err != nil {
		t.Fatalf("failed to parse workbook: %v", err)
	}

	// 营业日报：标题行与尾部 Total 行剔除
	if len(ds.Sales) != 2 {
		t.Fatalf("expected 2 sales records, got %d", len(ds.Sales))
	}
	first := ds.Sales[0]
	if first.Date != 45536 || first.Month != "September" || first.Day != "Monday" {
		t.Fatalf("unexpected first sales record: %+v", first)
	}
	if first.GameRevenue != 120000 || first.FoodSale != 45000 || first.Footfall != 350 {
		t.Fatalf("unexpected sales amounts: %+v", first)
	}
	if first.ArcadeCredit != 30000 || first.ArcadeBonus != 9000 {
		t.Fatalf("unexpected arcade columns: %+v", first)
	}
	if first.NewCards != 40 || first.RechargeCards != 25 {
		t.Fatalf("unexpected card columns: %+v", first)
	}
	if first.PartyGameSale != 20000 || first.PartyFoodSale != 15000 || first.NoOfParties != 2 {
		t.Fatalf("unexpected party columns: %+v", first)
	}
	if first.DateFormatted == "" {
		t.Fatal("expected formatted date for serial 45536")
	}

	// 销售构成：汇总行与空活动行剔除，列名尾随空格不影响映射
	if len(ds.SalesMix) != 2 {
		t.Fatalf("expected 2 sales mix records, got %d", len(ds.SalesMix))
	}
	if ds.SalesMix[0].Activity != "Trampoline " || ds.SalesMix[0].Revenue != 52000 {
		t.Fatalf("unexpected sales mix record: %+v", ds.SalesMix[0])
	}
	if ds.SalesMix[1].Variant != "Combo Thrill Pack" || ds.SalesMix[1].Quantity != 12 {
		t.Fatalf("unexpected sales mix record: %+v", ds.SalesMix[1])
	}

	// 充值流水：GRAND TOTAL 尾随空格变体剔除
	if len(ds.Recharge) != 2 {
		t.Fatalf("expected 2 recharge records, got %d", len(ds.Recharge))
	}
	if ds.Recharge[0].Cashier != "Asha" || ds.Recharge[0].RechargeLevel != 1000 {
		t.Fatalf("unexpected recharge record: %+v", ds.Recharge[0])
	}
	if ds.Recharge[1].Amount != 15000 {
		t.Fatalf("unexpected recharge amount: %+v", ds.Recharge[1])
	}

	// 街机读数：缺少最终机台名的行剔除
	if len(ds.Arcade) != 2 {
		t.Fatalf("expected 2 arcade records, got %d", len(ds.Arcade))
	}
	if ds.Arcade[0].GameNameFinal != "Air Hockey" || ds.Arcade[0].Credit != 3200 {
		t.Fatalf("unexpected arcade record: %+v", ds.Arcade[0])
	}
	if ds.Arcade[1].GameType != "VR" || ds.Arcade[1].Bonus != 900 {
		t.Fatalf("unexpected arcade record: %+v", ds.Arcade[1])
	}

	counts := ds.Counts()
	if counts.Sales != 2 || counts.SalesMix != 2 || counts.Recharge != 2 || counts.Arcade != 2 {
		t.Fatalf("unexpected dataset counts: %+v", counts)
	}
}

func TestParseAllWithoutLoad(t *testing.T) {
	imp := New()
	if _, err := imp.ParseAll(); err == nil {
		t.Fatal("expected error when no workbook is loaded")
	}
}
