package engine

import (
	"reflect"
	"testing"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

func TestActivityRevenueMergesCaseAndWhitespaceVariants(t *testing.T) {
	records := []model.SalesMixRecord{
		{Activity: "Bowling ", Revenue: 1000, Quantity: 2},
		{Activity: "BOWLING", Revenue: 500, Quantity: 1},
	}

	got := ActivityRevenue(records, model.DefaultAreaTable())
	if len(got) != 1 {
		t.Fatalf("expected one merged row, got %d: %+v", len(got), got)
	}
	row := got[0]
	if row.Activity != "BOWLING" {
		t.Fatalf("expected canonical name BOWLING, got %q", row.Activity)
	}
	if row.Revenue != 1500 || row.Quantity != 3 {
		t.Fatalf("expected revenue 1500 quantity 3, got %+v", row)
	}
	if !floatEq(row.RevenuePerSqft, 1500.0/5000.0) {
		t.Fatalf("wrong revenue per sqft: %v", row.RevenuePerSqft)
	}
}

func TestActivityRevenueExcludesGrandTotalAndBlank(t *testing.T) {
	records := []model.SalesMixRecord{
		{Activity: "GRAND TOTAL", Revenue: 9999},
		{Activity: "GRAND TOTAL ", Revenue: 9999},
		{Activity: "   ", Revenue: 9999},
		{Activity: "Cricket", Revenue: 100},
	}

	got := ActivityRevenue(records, model.DefaultAreaTable())
	if len(got) != 1 || got[0].Activity != "Cricket" {
		t.Fatalf("subtotal and blank rows must be excluded, got %+v", got)
	}
}

func TestActivityRevenueDropsZeroRevenueGroups(t *testing.T) {
	records := []model.SalesMixRecord{
		{Activity: "Cricket", Revenue: 0, Quantity: 5},
		{Activity: "Shooting", Revenue: 200, Quantity: 1},
	}

	got := ActivityRevenue(records, model.DefaultAreaTable())
	if len(got) != 1 || got[0].Activity != "Shooting" {
		t.Fatalf("zero-revenue groups must be dropped, got %+v", got)
	}
}

func TestActivityRevenueSortedDescendingStable(t *testing.T) {
	records := []model.SalesMixRecord{
		{Activity: "Cricket", Revenue: 100},
		{Activity: "Shooting", Revenue: 300},
		{Activity: "Hyper Grid", Revenue: 100}, // 与 Cricket 并列，先出现者在前
	}

	got := ActivityRevenue(records, model.DefaultAreaTable())
	want := []string{"Shooting", "Cricket", "Hyper Grid"}
	var names []string
	for _, row := range got {
		names = append(names, row.Activity)
	}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected order %v, got %v", want, names)
	}
}

func TestActivityRevenueUnknownActivityPassesThroughWithZeroRatio(t *testing.T) {
	records := []model.SalesMixRecord{
		{Activity: "Mystery Maze", Revenue: 500, Quantity: 2},
	}

	got := ActivityRevenue(records, model.DefaultAreaTable())
	if len(got) != 1 {
		t.Fatalf("unknown activity must still aggregate, got %+v", got)
	}
	if got[0].Activity != "Mystery Maze" || got[0].RevenuePerSqft != 0 {
		t.Fatalf("unknown area must yield zero ratio, got %+v", got[0])
	}
}

func TestActivityRevenueConservation(t *testing.T) {
	records := []model.SalesMixRecord{
		{Activity: "Cricket", Revenue: 120},
		{Activity: "cricket", Revenue: 80},
		{Activity: "Shooting", Revenue: 300},
		{Activity: "GRAND TOTAL", Revenue: 500}, // 排除
	}

	got := ActivityRevenue(records, model.DefaultAreaTable())
	var sum float64
	for _, row := range got {
		sum += row.Revenue
	}
	if !floatEq(sum, 500) {
		t.Fatalf("output revenue must equal input minus excluded rows, got %v", sum)
	}
}

func TestTopVariants(t *testing.T) {
	records := []model.SalesMixRecord{
		{Activity: "BOWLING", Variant: "1 Game", Revenue: 100, Quantity: 2},
		{Activity: "BOWLING", Variant: "1 Game", Revenue: 300, Quantity: 4},
		{Activity: "Cricket", Variant: "6 overs", Revenue: 150, Quantity: 3},
		{Activity: "Cricket", Variant: "", Revenue: 999}, // 空套餐名跳过
	}

	got := TopVariants(records, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 variant rows, got %+v", got)
	}
	if got[0].Variant != "1 Game" || got[0].Revenue != 400 || got[0].Quantity != 6 {
		t.Fatalf("unexpected top variant: %+v", got[0])
	}
	if !floatEq(got[0].AvgValue, 400.0/6) {
		t.Fatalf("wrong avg value: %v", got[0].AvgValue)
	}

	limited := TopVariants(records, 1)
	if len(limited) != 1 {
		t.Fatalf("limit must cap the result, got %d rows", len(limited))
	}
}
