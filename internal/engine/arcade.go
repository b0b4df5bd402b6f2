package engine

import (
	"sort"
	"strings"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// normalizeGameType 机台类型匹配用的规范形式
func normalizeGameType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// PerformanceThresholds 机台表现判定阈值
// 阈值是配置而非业务定律，默认值与历史口径保持一致
type PerformanceThresholds struct {
	// LowRevenue 总营收低于该值判定为低效机台
	LowRevenue float64
	// HighBonusPercent 赠币/付费币比例超过该百分比判定为高赠币机台
	HighBonusPercent float64
}

// DefaultThresholds 默认阈值：营收 1000 以下低效，赠币比 50% 以上偏高
func DefaultThresholds() PerformanceThresholds {
	return PerformanceThresholds{LowRevenue: 1000, HighBonusPercent: 50}
}

// MachineRow 单台机器的表现聚合行
type MachineRow struct {
	GameName   string  `json:"gameName"`
	GameType   string  `json:"gameType"`
	Credit     float64 `json:"credit"`
	Bonus      float64 `json:"bonus"`
	Total      float64 `json:"total"`
	Quantity   int     `json:"quantity"`
	AvgPerPlay float64 `json:"avgPerPlay"` // 游玩次数为 0 时为 0
	// 两个标记独立计算，可同时成立；展示层优先显示低效标记
	LowPerformer bool `json:"lowPerformer"`
	HighBonus    bool `json:"highBonus"`
}

// MachinePerformance 按机台名聚合街机读数并按总营收降序
// 机台名取 FINAL 名回退原始名，两者皆空的行跳过
func MachinePerformance(records []model.ArcadeRecord, th PerformanceThresholds) []MachineRow {
	type group struct {
		gameType string
		credit   float64
		bonus    float64
		total    float64
		quantity int
	}
	groups := make(map[string]*group)
	var order []string

	for _, r := range records {
		name := r.ResolvedName()
		if name == "" {
			continue
		}
		g, ok := groups[name]
		if !ok {
			g = &group{gameType: r.GameType}
			if g.gameType == "" {
				g.gameType = "Arcade"
			}
			groups[name] = g
			order = append(order, name)
		}
		g.credit += r.Credit
		g.bonus += r.Bonus
		g.total += r.Total
		g.quantity += r.Quantity
	}

	rows := make([]MachineRow, 0, len(order))
	for _, name := range order {
		g := groups[name]
		row := MachineRow{
			GameName: name,
			GameType: g.gameType,
			Credit:   g.credit,
			Bonus:    g.bonus,
			Total:    g.total,
			Quantity: g.quantity,
		}
		if g.quantity > 0 {
			row.AvgPerPlay = g.total / float64(g.quantity)
		}
		row.LowPerformer = g.total < th.LowRevenue
		if g.credit > 0 {
			row.HighBonus = g.bonus/g.credit*100 > th.HighBonusPercent
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	return rows
}

// TypeSplit 单个机台类型的汇总
type TypeSplit struct {
	Credit   float64 `json:"credit"`
	Bonus    float64 `json:"bonus"`
	Quantity int     `json:"quantity"`
}

// Revenue 付费币+赠币收入
func (s TypeSplit) Revenue() float64 { return s.Credit + s.Bonus }

// ArcadeVRSplit 按机台类型（Arcade / VR，大小写不敏感）拆分汇总
func ArcadeVRSplit(records []model.ArcadeRecord) (arcade, vr TypeSplit) {
	for _, r := range records {
		switch normalizeGameType(r.GameType) {
		case "arcade":
			arcade.Credit += r.Credit
			arcade.Bonus += r.Bonus
			arcade.Quantity += r.Quantity
		case "vr":
			vr.Credit += r.Credit
			vr.Bonus += r.Bonus
			vr.Quantity += r.Quantity
		}
	}
	return arcade, vr
}

// FilterByGameType 按机台类型过滤；类型为空或 "All" 表示不过滤
func FilterByGameType(records []model.ArcadeRecord, gameType string) []model.ArcadeRecord {
	want := normalizeGameType(gameType)
	if want == "" || want == "all" {
		return records
	}
	result := make([]model.ArcadeRecord, 0, len(records))
	for _, r := range records {
		if normalizeGameType(r.GameType) == want {
			result = append(result, r)
		}
	}
	return result
}
