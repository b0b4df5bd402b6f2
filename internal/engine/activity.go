package engine

import (
	"sort"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// ActivityRevenueRow 单个活动的营收聚合行
type ActivityRevenueRow struct {
	Activity       string  `json:"activity"`
	Revenue        float64 `json:"revenue"`
	Quantity       int     `json:"quantity"`
	RevenuePerSqft float64 `json:"revenuePerSqft"` // 面积未知时为 0
}

// ActivityRevenue 按规范化活动名聚合销售构成记录
// 空白名与 "GRAND TOTAL" 行排除；零营收分组剔除；按营收降序（稳定排序）
func ActivityRevenue(records []model.SalesMixRecord, areas model.AreaTable) []ActivityRevenueRow {
	type group struct {
		revenue  float64
		quantity int
	}
	groups := make(map[string]*group)
	var order []string // 保留首次出现顺序，保证并列时排名稳定

	for _, r := range records {
		name := model.NormalizeName(r.Activity)
		if name == "" || name == "GRAND TOTAL" {
			continue
		}
		canonical := areas.Canonical(name)

		g, ok := groups[canonical]
		if !ok {
			g = &group{}
			groups[canonical] = g
			order = append(order, canonical)
		}
		g.revenue += r.Revenue
		g.quantity += r.Quantity
	}

	rows := make([]ActivityRevenueRow, 0, len(order))
	for _, name := range order {
		g := groups[name]
		if g.revenue <= 0 {
			continue
		}
		row := ActivityRevenueRow{
			Activity: name,
			Revenue:  g.revenue,
			Quantity: g.quantity,
		}
		if area := areas[name]; area > 0 {
			row.RevenuePerSqft = g.revenue / area
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	return rows
}

// VariantRow 单个 活动×套餐 组合的聚合行
type VariantRow struct {
	Activity string  `json:"activity"`
	Variant  string  `json:"variant"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
	AvgValue float64 `json:"avgValue"` // 销量为 0 时为 0
}

// TopVariants 按 活动×套餐 聚合并按营收降序取前 limit 个
// 套餐名为空的记录跳过；limit <= 0 表示不限制
func TopVariants(records []model.SalesMixRecord, limit int) []VariantRow {
	rows := variantBreakdown(records)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// variantBreakdown 按 活动::套餐 组合键聚合，保留首次出现顺序
func variantBreakdown(records []model.SalesMixRecord) []VariantRow {
	type key struct {
		activity string
		variant  string
	}
	type group struct {
		revenue  float64
		quantity int
	}
	groups := make(map[key]*group)
	var order []key

	for _, r := range records {
		if r.Variant == "" {
			continue
		}
		k := key{activity: r.Activity, variant: r.Variant}
		g, ok := groups[k]
		if !ok {
			g = &group{}
			groups[k] = g
			order = append(order, k)
		}
		g.revenue += r.Revenue
		g.quantity += r.Quantity
	}

	rows := make([]VariantRow, 0, len(order))
	for _, k := range order {
		g := groups[k]
		row := VariantRow{
			Activity: k.activity,
			Variant:  k.variant,
			Revenue:  g.revenue,
			Quantity: g.quantity,
		}
		if g.quantity > 0 {
			row.AvgValue = g.revenue / float64(g.quantity)
		}
		rows = append(rows, row)
	}
	return rows
}
