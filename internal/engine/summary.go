package engine

import (
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// SummaryKPIs 总览页核心指标
type SummaryKPIs struct {
	TotalRevenue       float64 `json:"totalRevenue"` // 游戏+餐饮
	TotalGameRevenue   float64 `json:"totalGameRevenue"`
	TotalFoodSale      float64 `json:"totalFoodSale"`
	TotalFootfall      int     `json:"totalFootfall"`
	TotalRecharge      float64 `json:"totalRecharge"`
	ArcadeCredit       float64 `json:"arcadeCredit"`
	ArcadeBonus        float64 `json:"arcadeBonus"`
	BonusCreditPercent float64 `json:"bonusCreditPercent"` // 赠币/付费币
	RevenuePerFootfall float64 `json:"revenuePerFootfall"`
	FoodPercentage     float64 `json:"foodPercentage"`
	AvgDailyRevenue    float64 `json:"avgDailyRevenue"`
}

// Summary 计算总览指标；所有比值带除零保护
func Summary(sales []model.SalesDailyRecord, recharge []model.RechargeRecord, arcade []model.ArcadeRecord) SummaryKPIs {
	k := SummaryKPIs{}
	for _, r := range sales {
		k.TotalGameRevenue += r.GameRevenue
		k.TotalFoodSale += r.FoodSale
		k.TotalFootfall += r.Footfall
	}
	for _, r := range recharge {
		k.TotalRecharge += r.Amount
	}
	for _, r := range arcade {
		k.ArcadeCredit += r.Credit
		k.ArcadeBonus += r.Bonus
	}

	k.TotalRevenue = k.TotalGameRevenue + k.TotalFoodSale
	if k.ArcadeCredit > 0 {
		k.BonusCreditPercent = k.ArcadeBonus / k.ArcadeCredit * 100
	}
	if k.TotalFootfall > 0 {
		k.RevenuePerFootfall = k.TotalRevenue / float64(k.TotalFootfall)
	}
	if k.TotalRevenue > 0 {
		k.FoodPercentage = k.TotalFoodSale / k.TotalRevenue * 100
	}
	if len(sales) > 0 {
		k.AvgDailyRevenue = k.TotalRevenue / float64(len(sales))
	}
	return k
}
