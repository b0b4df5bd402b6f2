package engine

import (
	"testing"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

func TestMachinePerformanceGroupsByResolvedName(t *testing.T) {
	records := []model.ArcadeRecord{
		{GameNameFinal: "Air Hockey", GameType: "Arcade", Credit: 100, Bonus: 10, Total: 110, Quantity: 5},
		{GameName: "Air Hockey", GameType: "Arcade", Credit: 50, Bonus: 5, Total: 55, Quantity: 2}, // FINAL 名缺失，回退原始名
		{GameNameFinal: "VR Racer", GameType: "VR", Credit: 400, Total: 400, Quantity: 4},
		{GameName: ""}, // 两个名字皆空，跳过
	}

	rows := MachinePerformance(records, DefaultThresholds())
	if len(rows) != 2 {
		t.Fatalf("expected 2 machines, got %+v", rows)
	}
	// 按总营收降序
	if rows[0].GameName != "VR Racer" {
		t.Fatalf("expected VR Racer first, got %+v", rows[0])
	}
	hockey := rows[1]
	if hockey.Credit != 150 || hockey.Bonus != 15 || hockey.Total != 165 || hockey.Quantity != 7 {
		t.Fatalf("unexpected Air Hockey sums: %+v", hockey)
	}
	if !floatEq(hockey.AvgPerPlay, 165.0/7) {
		t.Fatalf("wrong avg per play: %v", hockey.AvgPerPlay)
	}
}

func TestMachinePerformanceZeroQuantityAvg(t *testing.T) {
	records := []model.ArcadeRecord{
		{GameNameFinal: "Broken Machine", Total: 500, Quantity: 0},
	}

	rows := MachinePerformance(records, DefaultThresholds())
	if rows[0].AvgPerPlay != 0 {
		t.Fatalf("zero quantity must yield avg 0, got %v", rows[0].AvgPerPlay)
	}
}

func TestMachinePerformanceFlags(t *testing.T) {
	records := []model.ArcadeRecord{
		{GameNameFinal: "Low", Credit: 800, Bonus: 100, Total: 900},        // 低于 1000
		{GameNameFinal: "Generous", Credit: 1000, Bonus: 600, Total: 1600}, // 赠币比 60%
		{GameNameFinal: "Healthy", Credit: 2000, Bonus: 100, Total: 2100},
	}

	rows := MachinePerformance(records, DefaultThresholds())
	byName := map[string]MachineRow{}
	for _, row := range rows {
		byName[row.GameName] = row
	}

	if !byName["Low"].LowPerformer {
		t.Fatalf("machine below revenue threshold must be flagged low performer")
	}
	if !byName["Generous"].HighBonus || byName["Generous"].LowPerformer {
		t.Fatalf("unexpected flags for Generous: %+v", byName["Generous"])
	}
	if byName["Healthy"].LowPerformer || byName["Healthy"].HighBonus {
		t.Fatalf("Healthy must carry no flags: %+v", byName["Healthy"])
	}
}

func TestMachinePerformanceThresholdsAreConfigurable(t *testing.T) {
	records := []model.ArcadeRecord{
		{GameNameFinal: "M", Credit: 100, Bonus: 30, Total: 130},
	}

	rows := MachinePerformance(records, PerformanceThresholds{LowRevenue: 100, HighBonusPercent: 20})
	if rows[0].LowPerformer {
		t.Fatalf("130 >= 100 must not be low performer")
	}
	if !rows[0].HighBonus {
		t.Fatalf("30%% bonus ratio must exceed a 20%% threshold")
	}
}

func TestArcadeVRSplit(t *testing.T) {
	records := []model.ArcadeRecord{
		{GameType: "Arcade", Credit: 100, Bonus: 10, Quantity: 3},
		{GameType: "ARCADE", Credit: 50, Quantity: 1},
		{GameType: "vr", Credit: 200, Bonus: 20, Quantity: 2},
		{GameType: "Simulator", Credit: 999}, // 未知类型不计入任何一侧
	}

	arcade, vr := ArcadeVRSplit(records)
	if arcade.Credit != 150 || arcade.Bonus != 10 || arcade.Quantity != 4 {
		t.Fatalf("unexpected arcade split: %+v", arcade)
	}
	if vr.Credit != 200 || vr.Bonus != 20 || vr.Quantity != 2 {
		t.Fatalf("unexpected vr split: %+v", vr)
	}
	if !floatEq(arcade.Revenue(), 160) {
		t.Fatalf("wrong revenue: %v", arcade.Revenue())
	}
}

func TestFilterByGameType(t *testing.T) {
	records := []model.ArcadeRecord{
		{GameNameFinal: "A", GameType: "Arcade"},
		{GameNameFinal: "B", GameType: "VR"},
	}

	if got := FilterByGameType(records, "All"); len(got) != 2 {
		t.Fatalf("All must not filter, got %d", len(got))
	}
	got := FilterByGameType(records, "vr")
	if len(got) != 1 || got[0].GameNameFinal != "B" {
		t.Fatalf("expected only VR machine, got %+v", got)
	}
}
