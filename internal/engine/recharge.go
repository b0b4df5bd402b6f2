package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// DefaultSlabs 固定充值面额档位，输出顺序即此序列
func DefaultSlabs() []float64 {
	return []float64{1000, 3000, 6000, 12000, 25000}
}

// SlabRow 单个面额档位的汇总
type SlabRow struct {
	Slab     string  `json:"slab"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}

// RechargeBySlab 按面额档位归集充值流水
// 面额与档位精确匹配；不匹配的一律落入 "Variable" 档
// 输出按固定档位序列排列，"Variable" 恒在最后
func RechargeBySlab(records []model.RechargeRecord, slabs []float64) []SlabRow {
	names := make([]string, 0, len(slabs)+1)
	index := make(map[float64]string, len(slabs))
	for _, s := range slabs {
		name := strconv.FormatFloat(s, 'f', -1, 64)
		names = append(names, name)
		index[s] = name
	}
	names = append(names, "Variable")

	type group struct {
		revenue  float64
		quantity int
	}
	groups := make(map[string]*group, len(names))
	for _, name := range names {
		groups[name] = &group{}
	}

	for _, r := range records {
		name, ok := index[r.RechargeLevel]
		if !ok {
			name = "Variable"
		}
		groups[name].revenue += r.Amount
		groups[name].quantity += r.Quantity
	}

	rows := make([]SlabRow, 0, len(names))
	for _, name := range names {
		g := groups[name]
		rows = append(rows, SlabRow{Slab: name, Revenue: g.revenue, Quantity: g.quantity})
	}
	return rows
}

// Segment 单个消费层级的汇总
type Segment struct {
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
	Count    int     `json:"count"` // 流水笔数
}

// SpenderSegments 按充值面额划分的三个消费层级
// 边界语义：低档上界含 3000，3000 整归低档；(3000, 12000] 为中档；>12000 为高档
// 面额低于 1000 的流水不落入任何层级
type SpenderSegments struct {
	Low  Segment `json:"low"`
	Mid  Segment `json:"mid"`
	High Segment `json:"high"`
}

// SpenderSegmentation 充值客群分层
func SpenderSegmentation(records []model.RechargeRecord) SpenderSegments {
	segments := SpenderSegments{}
	for _, r := range records {
		var seg *Segment
		switch level := r.RechargeLevel; {
		case level >= 1000 && level <= 3000:
			seg = &segments.Low
		case level > 3000 && level <= 12000:
			seg = &segments.Mid
		case level > 12000:
			seg = &segments.High
		default:
			continue
		}
		seg.Revenue += r.Amount
		seg.Quantity += r.Quantity
		seg.Count++
	}
	return segments
}

// CardIssuanceMetrics 发卡与复充指标
// 两半相互独立：留存率基于日报卡数统计，营收拆分基于充值流水的类型字段
type CardIssuanceMetrics struct {
	TotalNewCards       int     `json:"totalNewCards"`
	TotalRechargeCards  int     `json:"totalRechargeCards"`
	TotalCards          int     `json:"totalCards"`
	RechargePercentage  float64 `json:"rechargePercentage"` // 复充卡占比（留存）
	NewCardRevenue      float64 `json:"newCardRevenue"`
	RechargeCardRevenue float64 `json:"rechargeCardRevenue"`
}

// CardIssuance 汇总发卡留存指标
// 营收归属按类型字段子串匹配："CARD ISSUE" 计入新卡，"RECHARGE CARD" 计入复充
func CardIssuance(sales []model.SalesDailyRecord, recharge []model.RechargeRecord) CardIssuanceMetrics {
	m := CardIssuanceMetrics{}
	for _, r := range sales {
		m.TotalNewCards += r.NewCards
		m.TotalRechargeCards += r.RechargeCards
	}
	m.TotalCards = m.TotalNewCards + m.TotalRechargeCards
	if m.TotalCards > 0 {
		m.RechargePercentage = float64(m.TotalRechargeCards) / float64(m.TotalCards) * 100
	}

	for _, r := range recharge {
		if strings.Contains(r.RechargeType, "CARD ISSUE") {
			m.NewCardRevenue += r.Amount
		}
		if strings.Contains(r.RechargeType, "RECHARGE CARD") {
			m.RechargeCardRevenue += r.Amount
		}
	}
	return m
}

// RechargeTypeRow 单个充值类型的汇总
type RechargeTypeRow struct {
	Type     string  `json:"type"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}

// RechargeTypeBreakdown 按充值类型聚合，按营收降序
// 类型为空或 "GRAND TOTAL" 的行排除
func RechargeTypeBreakdown(records []model.RechargeRecord) []RechargeTypeRow {
	type group struct {
		revenue  float64
		quantity int
	}
	groups := make(map[string]*group)
	var order []string

	for _, r := range records {
		name := strings.TrimSpace(r.RechargeType)
		if name == "" || name == "GRAND TOTAL" {
			continue
		}
		g, ok := groups[name]
		if !ok {
			g = &group{}
			groups[name] = g
			order = append(order, name)
		}
		g.revenue += r.Amount
		g.quantity += r.Quantity
	}

	rows := make([]RechargeTypeRow, 0, len(order))
	for _, name := range order {
		g := groups[name]
		rows = append(rows, RechargeTypeRow{Type: name, Revenue: g.revenue, Quantity: g.quantity})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	return rows
}

// CashierRow 单个收银员的业绩汇总
type CashierRow struct {
	Cashier        string  `json:"cashier"`
	Revenue        float64 `json:"revenue"`
	Quantity       int     `json:"quantity"`
	Count          int     `json:"count"`
	AvgTransaction float64 `json:"avgTransaction"`
}

// CashierPerformance 按收银员聚合充值流水，按营收降序
// 收银员名为空的行跳过
func CashierPerformance(records []model.RechargeRecord) []CashierRow {
	type group struct {
		revenue  float64
		quantity int
		count    int
	}
	groups := make(map[string]*group)
	var order []string

	for _, r := range records {
		if r.Cashier == "" {
			continue
		}
		g, ok := groups[r.Cashier]
		if !ok {
			g = &group{}
			groups[r.Cashier] = g
			order = append(order, r.Cashier)
		}
		g.revenue += r.Amount
		g.quantity += r.Quantity
		g.count++
	}

	rows := make([]CashierRow, 0, len(order))
	for _, name := range order {
		g := groups[name]
		row := CashierRow{
			Cashier:  name,
			Revenue:  g.revenue,
			Quantity: g.quantity,
			Count:    g.count,
		}
		if g.count > 0 {
			row.AvgTransaction = g.revenue / float64(g.count)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	return rows
}
