package v1

import (
	"math"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/engine"
)

// round2 四舍五入到两位小数；比值字段出参前统一收敛
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundKPIsInPlace(k *engine.SummaryKPIs) {
	k.BonusCreditPercent = round2(k.BonusCreditPercent)
	k.RevenuePerFootfall = round2(k.RevenuePerFootfall)
	k.FoodPercentage = round2(k.FoodPercentage)
	k.AvgDailyRevenue = round2(k.AvgDailyRevenue)
}

func roundWeekendWeekdayInPlace(w *engine.WeekendWeekday) {
	w.Weekend.Percentage = round2(w.Weekend.Percentage)
	w.Weekday.Percentage = round2(w.Weekday.Percentage)
}

func roundDayOfWeekInPlace(rows []engine.DayOfWeekRow) {
	for i := range rows {
		rows[i].AvgRevenue = round2(rows[i].AvgRevenue)
		rows[i].AvgFootfall = round2(rows[i].AvgFootfall)
		rows[i].AvgParties = round2(rows[i].AvgParties)
	}
}

func roundActivityRowsInPlace(rows []engine.ActivityRevenueRow) {
	for i := range rows {
		rows[i].RevenuePerSqft = round2(rows[i].RevenuePerSqft)
	}
}

func roundVariantRowsInPlace(rows []engine.VariantRow) {
	for i := range rows {
		rows[i].AvgValue = round2(rows[i].AvgValue)
	}
}

func roundSpaceRowsInPlace(rows []engine.SpaceEfficiencyRow) {
	for i := range rows {
		rows[i].RevenuePerSqft = round2(rows[i].RevenuePerSqft)
	}
}

func roundSpaceReportInPlace(r *engine.SpaceEfficiencyReport) {
	roundSpaceRowsInPlace(r.Rows)
	roundSpaceRowsInPlace(r.Top3)
	roundSpaceRowsInPlace(r.Bottom3)
	r.AvgRevenuePerSqft = round2(r.AvgRevenuePerSqft)
}

func roundComboMetricsInPlace(m *engine.ComboMetrics) {
	m.ComboPercent = round2(m.ComboPercent)
	m.AvgComboValue = round2(m.AvgComboValue)
	m.AvgSingleValue = round2(m.AvgSingleValue)
}

func roundMachineRowsInPlace(rows []engine.MachineRow) {
	for i := range rows {
		rows[i].AvgPerPlay = round2(rows[i].AvgPerPlay)
	}
}

func roundRechargeResponseInPlace(r *RechargeResponse) {
	r.CardIssuance.RechargePercentage = round2(r.CardIssuance.RechargePercentage)
	for i := range r.Cashiers {
		r.Cashiers[i].AvgTransaction = round2(r.Cashiers[i].AvgTransaction)
	}
}

func roundPartiesResponseInPlace(r *PartiesResponse) {
	r.Metrics.AvgPartyGameSale = round2(r.Metrics.AvgPartyGameSale)
	r.Metrics.AvgPartyFoodSale = round2(r.Metrics.AvgPartyFoodSale)
	r.Metrics.AvgPartyRevenue = round2(r.Metrics.AvgPartyRevenue)
	r.Metrics.PartyRevenuePercent = round2(r.Metrics.PartyRevenuePercent)
	r.Metrics.FoodPercentInParty = round2(r.Metrics.FoodPercentInParty)
	for i := range r.WeekendWeekday {
		r.WeekendWeekday[i].AvgRevenue = round2(r.WeekendWeekday[i].AvgRevenue)
	}
	for i := range r.DayOfWeek {
		r.DayOfWeek[i].AvgRevenue = round2(r.DayOfWeek[i].AvgRevenue)
	}
}
