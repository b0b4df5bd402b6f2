package engine

import (
	"sort"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// SpaceEfficiencyRow 单个活动的坪效行
type SpaceEfficiencyRow struct {
	Activity       string  `json:"activity"`
	Revenue        float64 `json:"revenue"`
	Quantity       int     `json:"quantity"`
	Sqft           float64 `json:"sqft"`
	RevenuePerSqft float64 `json:"revenuePerSqft"`
}

// SpaceEfficiencyReport 坪效分析结果
type SpaceEfficiencyReport struct {
	Rows []SpaceEfficiencyRow `json:"rows"` // 按坪效降序
	Top3 []SpaceEfficiencyRow `json:"top3"`
	// Bottom3 坪效最差的三项，最差的排在最前
	Bottom3      []SpaceEfficiencyRow `json:"bottom3"`
	TotalRevenue float64              `json:"totalRevenue"`
	TotalSqft    float64              `json:"totalSqft"`
	// AvgRevenuePerSqft 加权平均坪效 = 总营收 / 总面积
	// 不是逐行比值的算术平均
	AvgRevenuePerSqft float64 `json:"avgRevenuePerSqft"`
}

// SpaceEfficiency 计算各活动的坪效并排名
// 活动行来自销售构成聚合，另加 Arcade / VR 两个合成行（付费币+赠币收入）
// 仅保留面积已知（>0）且营收为正的行
func SpaceEfficiency(salesMix []model.SalesMixRecord, arcade []model.ArcadeRecord, areas model.AreaTable) SpaceEfficiencyReport {
	var rows []SpaceEfficiencyRow

	for _, a := range ActivityRevenue(salesMix, areas) {
		rows = append(rows, SpaceEfficiencyRow{
			Activity: a.Activity,
			Revenue:  a.Revenue,
			Quantity: a.Quantity,
			Sqft:     areas[a.Activity],
		})
	}

	arcadeRevenue, vrRevenue := gameTypeRevenue(arcade)
	rows = append(rows,
		SpaceEfficiencyRow{Activity: "Arcade", Revenue: arcadeRevenue, Sqft: areas["Arcade"]},
		SpaceEfficiencyRow{Activity: "VR", Revenue: vrRevenue, Sqft: areas["VR Zone"]},
	)

	report := SpaceEfficiencyReport{}
	for _, row := range rows {
		if row.Sqft <= 0 || row.Revenue <= 0 {
			continue
		}
		row.RevenuePerSqft = row.Revenue / row.Sqft
		report.Rows = append(report.Rows, row)
		report.TotalRevenue += row.Revenue
		report.TotalSqft += row.Sqft
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].RevenuePerSqft > report.Rows[j].RevenuePerSqft
	})

	if report.TotalSqft > 0 {
		report.AvgRevenuePerSqft = report.TotalRevenue / report.TotalSqft
	}

	n := len(report.Rows)
	top := 3
	if top > n {
		top = n
	}
	report.Top3 = append([]SpaceEfficiencyRow(nil), report.Rows[:top]...)
	for i := n - 1; i >= n-top; i-- {
		report.Bottom3 = append(report.Bottom3, report.Rows[i])
	}
	return report
}

// gameTypeRevenue 按机台类型汇总 付费币+赠币 收入
func gameTypeRevenue(records []model.ArcadeRecord) (arcade, vr float64) {
	for _, r := range records {
		switch normalizeGameType(r.GameType) {
		case "arcade":
			arcade += r.Credit + r.Bonus
		case "vr":
			vr += r.Credit + r.Bonus
		}
	}
	return arcade, vr
}
