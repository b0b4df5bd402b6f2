package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/engine"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/format"
)

// SummaryResponse 总览报表响应
type SummaryResponse struct {
	KPIs           engine.SummaryKPIs    `json:"kpis"`
	Formatted      map[string]string     `json:"formatted"` // 关键指标的印度计数法展示
	WeekendWeekday engine.WeekendWeekday `json:"weekendWeekday"`
	DayOfWeek      []engine.DayOfWeekRow `json:"dayOfWeek"`
	RevenueTrend   []engine.TrendPoint   `json:"revenueTrend"`
}

// GetSummary 总览报表
// GET /api/reports/summary
func (h *Handler) GetSummary(c *gin.Context) {
	ds := h.filteredDataset(c)

	kpis := engine.Summary(ds.Sales, ds.Recharge, ds.Arcade)
	roundKPIsInPlace(&kpis)

	resp := SummaryResponse{
		KPIs: kpis,
		Formatted: map[string]string{
			"totalRevenue":     format.IndianCurrency(kpis.TotalRevenue),
			"totalGameRevenue": format.IndianCurrency(kpis.TotalGameRevenue),
			"totalFoodSale":    format.IndianCurrency(kpis.TotalFoodSale),
			"totalRecharge":    format.IndianCurrency(kpis.TotalRecharge),
			"avgDailyRevenue":  format.IndianCurrency(kpis.AvgDailyRevenue),
			"totalFootfall":    format.IndianNumber(float64(kpis.TotalFootfall)),
		},
		WeekendWeekday: engine.WeekendWeekdaySplit(ds.Sales),
		DayOfWeek:      engine.DayOfWeekPerformance(ds.Sales),
		RevenueTrend:   engine.DailyRevenueTrend(ds.Sales),
	}
	roundWeekendWeekdayInPlace(&resp.WeekendWeekday)
	roundDayOfWeekInPlace(resp.DayOfWeek)

	c.JSON(http.StatusOK, resp)
}

// ActivitiesResponse 活动营收报表响应
type ActivitiesResponse struct {
	Activities  []engine.ActivityRevenueRow `json:"activities"`
	TopVariants []engine.VariantRow         `json:"topVariants"`
}

// GetActivities 活动营收报表
// GET /api/reports/activities?months=&start=&end=&limit=
func (h *Handler) GetActivities(c *gin.Context) {
	ds := h.filteredDataset(c)
	limit := queryLimit(c, 10)

	resp := ActivitiesResponse{
		Activities:  engine.ActivityRevenue(ds.SalesMix, h.areas),
		TopVariants: engine.TopVariants(ds.SalesMix, limit),
	}
	roundActivityRowsInPlace(resp.Activities)
	roundVariantRowsInPlace(resp.TopVariants)

	c.JSON(http.StatusOK, resp)
}

// GetSpaceEfficiency 坪效报表
// GET /api/reports/space-efficiency
func (h *Handler) GetSpaceEfficiency(c *gin.Context) {
	ds := h.filteredDataset(c)

	report := engine.SpaceEfficiency(ds.SalesMix, ds.Arcade, h.areas)
	roundSpaceReportInPlace(&report)

	c.JSON(http.StatusOK, report)
}

// CombosResponse 套餐报表响应
type CombosResponse struct {
	Metrics       engine.ComboMetrics      `json:"metrics"`
	Breakdown     []engine.VariantRow      `json:"breakdown"`
	LowPerformers []engine.VariantRow      `json:"lowPerformers"`
	Trend         []engine.ComboTrendPoint `json:"trend"`
}

// GetCombos 套餐/单项报表
// GET /api/reports/combos?months=&start=&end=&limit=
func (h *Handler) GetCombos(c *gin.Context) {
	ds := h.filteredDataset(c)
	limit := queryLimit(c, 5)

	combos, singles := engine.SplitComboSingle(ds.SalesMix, engine.DefaultComboRules())
	resp := CombosResponse{
		Metrics:       engine.ComputeComboMetrics(combos, singles),
		Breakdown:     engine.ComboBreakdown(combos),
		LowPerformers: engine.LowPerformingCombos(combos, limit),
		Trend:         engine.ComboTrend(combos, singles),
	}
	roundComboMetricsInPlace(&resp.Metrics)
	roundVariantRowsInPlace(resp.Breakdown)
	roundVariantRowsInPlace(resp.LowPerformers)

	c.JSON(http.StatusOK, resp)
}

// ArcadeResponse 街机报表响应
type ArcadeResponse struct {
	Machines []engine.MachineRow `json:"machines"`
	Arcade   engine.TypeSplit    `json:"arcade"`
	VR       engine.TypeSplit    `json:"vr"`
}

// GetArcade 街机机台报表
// GET /api/reports/arcade?months=&start=&end=&type=
func (h *Handler) GetArcade(c *gin.Context) {
	ds := h.filteredDataset(c)

	records := engine.FilterByGameType(ds.Arcade, c.Query("type"))
	arcadeSplit, vrSplit := engine.ArcadeVRSplit(ds.Arcade)

	resp := ArcadeResponse{
		Machines: engine.MachinePerformance(records, h.thresholds()),
		Arcade:   arcadeSplit,
		VR:       vrSplit,
	}
	roundMachineRowsInPlace(resp.Machines)

	c.JSON(http.StatusOK, resp)
}

// RechargeResponse 充值报表响应
type RechargeResponse struct {
	Slabs        []engine.SlabRow           `json:"slabs"`
	Segments     engine.SpenderSegments     `json:"segments"`
	CardIssuance engine.CardIssuanceMetrics `json:"cardIssuance"`
	Types        []engine.RechargeTypeRow   `json:"types"`
	Cashiers     []engine.CashierRow        `json:"cashiers"`
}

// GetRecharge 充值报表
// GET /api/reports/recharge?months=&start=&end=
func (h *Handler) GetRecharge(c *gin.Context) {
	ds := h.filteredDataset(c)

	resp := RechargeResponse{
		Slabs:        engine.RechargeBySlab(ds.Recharge, engine.DefaultSlabs()),
		Segments:     engine.SpenderSegmentation(ds.Recharge),
		CardIssuance: engine.CardIssuance(ds.Sales, ds.Recharge),
		Types:        engine.RechargeTypeBreakdown(ds.Recharge),
		Cashiers:     engine.CashierPerformance(ds.Recharge),
	}
	roundRechargeResponseInPlace(&resp)

	c.JSON(http.StatusOK, resp)
}

// PartiesResponse 派对报表响应
type PartiesResponse struct {
	Metrics        engine.PartyMetrics      `json:"metrics"`
	Trend          []engine.PartyTrendPoint `json:"trend"`
	WeekendWeekday []engine.PartyPeriod     `json:"weekendWeekday"`
	DayOfWeek      []engine.PartyDayRow     `json:"dayOfWeek"`
	Monthly        []engine.PartyMonthRow   `json:"monthly"`
}

// GetParties 派对经济报表
// GET /api/reports/parties?months=&start=&end=
func (h *Handler) GetParties(c *gin.Context) {
	ds := h.filteredDataset(c)

	resp := PartiesResponse{
		Metrics:        engine.ComputePartyMetrics(ds.Sales),
		Trend:          engine.DailyPartyTrend(ds.Sales),
		WeekendWeekday: engine.PartyWeekendWeekday(ds.Sales),
		DayOfWeek:      engine.PartyByDayOfWeek(ds.Sales),
		Monthly:        engine.PartyMonthlyBreakdown(ds.Sales),
	}
	roundPartiesResponseInPlace(&resp)

	c.JSON(http.StatusOK, resp)
}

// queryLimit 解析 limit 查询参数
func queryLimit(c *gin.Context, fallback int) int {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
