package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// Verdict 套餐分类结论
type Verdict int

const (
	// VerdictSingle 单项消费（含被排除的非活动项目）
	VerdictSingle Verdict = iota
	// VerdictCombo 多活动组合套餐
	VerdictCombo
)

// ComboRule 套餐分类规则
// 规则按列表顺序求值，首个命中者决定归类；顺序是契约的一部分：
// 排除规则在前，保证 "Recharge Card Combo Punch" 这类串先被排除而不会命中组合规则
type ComboRule struct {
	Name    string
	Verdict Verdict
	Match   func(variant string) bool
}

// contains 小写包含匹配
func contains(substr string) func(string) bool {
	return func(v string) bool { return strings.Contains(v, substr) }
}

// pattern 正则匹配（对小写后的套餐名求值）
func pattern(expr string) func(string) bool {
	re := regexp.MustCompile(expr)
	return func(v string) bool { return re.MatchString(v) }
}

// DefaultComboRules 默认分类规则级联
// 排除规则：充值卡、家长陪同票（含已知拼写错误）、赠票、周边商品、
// 非活动设施、以及 "数量+单位" 形式的单项计时/计次票
// 组合规则：combo 关键词套餐、斜杠连接的多活动名、带 "+" 的派对套餐
func DefaultComboRules() []ComboRule {
	return []ComboRule{
		{Name: "recharge-card", Verdict: VerdictSingle, Match: contains("card")},
		{Name: "recharge-entry", Verdict: VerdictSingle, Match: contains("recharge")},
		{Name: "parent-ticket", Verdict: VerdictSingle, Match: contains("parent/guardian")},
		{Name: "parent-ticket-typo", Verdict: VerdictSingle, Match: contains("parent/gaurdian")},
		{Name: "extra-parent", Verdict: VerdictSingle, Match: contains("extra parent")},
		{Name: "complimentary", Verdict: VerdictSingle, Match: contains("complimentary")},
		{Name: "merchandise", Verdict: VerdictSingle, Match: contains("socks")},
		{Name: "amenity", Verdict: VerdictSingle, Match: contains("massage chair")},
		{Name: "timed-single", Verdict: VerdictSingle, Match: pattern(`^\d+\s*min`)},
		{Name: "overs-single", Verdict: VerdictSingle, Match: pattern(`^\d+\s*over`)},
		{Name: "shots-single", Verdict: VerdictSingle, Match: pattern(`^\d+\s*shots`)},
		{Name: "magazine-single", Verdict: VerdictSingle, Match: pattern(`^\d+\s*magazine`)},
		{Name: "combo-keyword", Verdict: VerdictCombo, Match: func(v string) bool {
			return strings.Contains(v, "combo") &&
				(strings.Contains(v, "thrill") || strings.Contains(v, "punch"))
		}},
		{Name: "activity-pair", Verdict: VerdictCombo,
			Match: pattern(`bowling.*/.*laser|laser.*/.*trampoline|trampoline.*/.*bowling|skyrider.*/.*gravity`)},
		{Name: "party-bundle", Verdict: VerdictCombo, Match: func(v string) bool {
			return strings.Contains(v, "party") && strings.Contains(v, " + ")
		}},
	}
}

// ClassifyVariant 对套餐名执行规则级联，未命中任何规则时默认单项
func ClassifyVariant(rules []ComboRule, variant string) Verdict {
	lower := strings.ToLower(variant)
	for _, rule := range rules {
		if rule.Match(lower) {
			return rule.Verdict
		}
	}
	return VerdictSingle
}

// SplitComboSingle 将销售构成记录划分为组合套餐与单项两个桶
func SplitComboSingle(records []model.SalesMixRecord, rules []ComboRule) (combos, singles []model.SalesMixRecord) {
	for _, r := range records {
		if ClassifyVariant(rules, r.Variant) == VerdictCombo {
			combos = append(combos, r)
		} else {
			singles = append(singles, r)
		}
	}
	return combos, singles
}

// ComboMetrics 组合套餐与单项的对比指标
type ComboMetrics struct {
	ComboRevenue   float64 `json:"comboRevenue"`
	ComboQuantity  int     `json:"comboQuantity"`
	SingleRevenue  float64 `json:"singleRevenue"`
	SingleQuantity int     `json:"singleQuantity"`
	TotalRevenue   float64 `json:"totalRevenue"`
	ComboPercent   float64 `json:"comboPercent"`
	AvgComboValue  float64 `json:"avgComboValue"`
	AvgSingleValue float64 `json:"avgSingleValue"`
}

// ComputeComboMetrics 计算两个桶的营收/销量汇总与均值对比
// 所有比值均带除零保护，空桶时为 0
func ComputeComboMetrics(combos, singles []model.SalesMixRecord) ComboMetrics {
	m := ComboMetrics{}
	for _, r := range combos {
		m.ComboRevenue += r.Revenue
		m.ComboQuantity += r.Quantity
	}
	for _, r := range singles {
		m.SingleRevenue += r.Revenue
		m.SingleQuantity += r.Quantity
	}
	m.TotalRevenue = m.ComboRevenue + m.SingleRevenue

	if m.TotalRevenue > 0 {
		m.ComboPercent = m.ComboRevenue / m.TotalRevenue * 100
	}
	if m.ComboQuantity > 0 {
		m.AvgComboValue = m.ComboRevenue / float64(m.ComboQuantity)
	}
	if m.SingleQuantity > 0 {
		m.AvgSingleValue = m.SingleRevenue / float64(m.SingleQuantity)
	}
	return m
}

// ComboBreakdown 按 活动×套餐 聚合组合桶
// 按营收降序，零营收套餐固定排在最后（可能是赠送或录入问题，单独展示）
func ComboBreakdown(combos []model.SalesMixRecord) []VariantRow {
	rows := variantBreakdown(combos)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Revenue == 0 && rows[j].Revenue > 0 {
			return false
		}
		if rows[j].Revenue == 0 && rows[i].Revenue > 0 {
			return true
		}
		return rows[i].Revenue > rows[j].Revenue
	})
	return rows
}

// LowPerformingCombos 按套餐名聚合并取营收最低的 limit 个
func LowPerformingCombos(combos []model.SalesMixRecord, limit int) []VariantRow {
	type group struct {
		revenue  float64
		quantity int
	}
	groups := make(map[string]*group)
	var order []string

	for _, r := range combos {
		if r.Variant == "" {
			continue
		}
		g, ok := groups[r.Variant]
		if !ok {
			g = &group{}
			groups[r.Variant] = g
			order = append(order, r.Variant)
		}
		g.revenue += r.Revenue
		g.quantity += r.Quantity
	}

	rows := make([]VariantRow, 0, len(order))
	for _, variant := range order {
		g := groups[variant]
		rows = append(rows, VariantRow{
			Variant:  variant,
			Revenue:  g.revenue,
			Quantity: g.quantity,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue < rows[j].Revenue
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// ComboTrendPoint 组合/单项日营收对比点
type ComboTrendPoint struct {
	Date   string  `json:"date"`
	Combo  float64 `json:"combo"`
	Single float64 `json:"single"`
}

// ComboTrend 按日期汇总两个桶的营收走势，按日期升序
// 缺少日期的记录跳过
func ComboTrend(combos, singles []model.SalesMixRecord) []ComboTrendPoint {
	type point struct {
		combo  float64
		single float64
	}
	byDate := make(map[string]*point)
	var order []string

	add := func(records []model.SalesMixRecord, isCombo bool) {
		for _, r := range records {
			date := r.ISODate()
			if date == "" {
				continue
			}
			p, ok := byDate[date]
			if !ok {
				p = &point{}
				byDate[date] = p
				order = append(order, date)
			}
			if isCombo {
				p.combo += r.Revenue
			} else {
				p.single += r.Revenue
			}
		}
	}
	add(combos, true)
	add(singles, false)

	sort.Strings(order)
	points := make([]ComboTrendPoint, 0, len(order))
	for _, date := range order {
		p := byDate[date]
		points = append(points, ComboTrendPoint{Date: date, Combo: p.combo, Single: p.single})
	}
	return points
}
