package engine

import (
	"math"
	"sort"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// PartyMetrics 生日派对经营指标汇总
type PartyMetrics struct {
	TotalParties        int     `json:"totalParties"`
	TotalPartyGameSale  float64 `json:"totalPartyGameSale"`
	TotalPartyFoodSale  float64 `json:"totalPartyFoodSale"`
	TotalPartyRevenue   float64 `json:"totalPartyRevenue"`
	AvgPartyGameSale    float64 `json:"avgPartyGameSale"`
	AvgPartyFoodSale    float64 `json:"avgPartyFoodSale"`
	AvgPartyRevenue     float64 `json:"avgPartyRevenue"`
	PartyRevenuePercent float64 `json:"partyRevenuePercent"` // 派对营收占全馆营收比
	FoodPercentInParty  float64 `json:"foodPercentInParty"`  // 餐饮在派对营收内的占比
	TotalRevenue        float64 `json:"totalRevenue"`        // 全馆 游戏+餐饮 营收
}

// ComputePartyMetrics 汇总派对场次、营收与均值
// 均值与占比均带除零保护
func ComputePartyMetrics(sales []model.SalesDailyRecord) PartyMetrics {
	m := PartyMetrics{}
	for _, r := range sales {
		m.TotalParties += r.NoOfParties
		m.TotalPartyGameSale += r.PartyGameSale
		m.TotalPartyFoodSale += r.PartyFoodSale
		m.TotalRevenue += r.GameRevenue + r.FoodSale
	}
	m.TotalPartyRevenue = m.TotalPartyGameSale + m.TotalPartyFoodSale

	if m.TotalParties > 0 {
		parties := float64(m.TotalParties)
		m.AvgPartyGameSale = m.TotalPartyGameSale / parties
		m.AvgPartyFoodSale = m.TotalPartyFoodSale / parties
		m.AvgPartyRevenue = m.TotalPartyRevenue / parties
	}
	if m.TotalRevenue > 0 {
		m.PartyRevenuePercent = m.TotalPartyRevenue / m.TotalRevenue * 100
	}
	if m.TotalPartyRevenue > 0 {
		m.FoodPercentInParty = m.TotalPartyFoodSale / m.TotalPartyRevenue * 100
	}
	return m
}

// PartyTrendPoint 单日派对走势点
type PartyTrendPoint struct {
	Date         string  `json:"date"`
	Parties      int     `json:"parties"`
	GameRevenue  float64 `json:"gameRevenue"`
	FoodRevenue  float64 `json:"foodRevenue"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// DailyPartyTrend 有派对的日期逐日走势，按日期升序
func DailyPartyTrend(sales []model.SalesDailyRecord) []PartyTrendPoint {
	points := make([]PartyTrendPoint, 0, len(sales))
	for _, r := range sales {
		if r.NoOfParties <= 0 {
			continue
		}
		date := r.ISODate()
		if date == "" {
			continue
		}
		points = append(points, PartyTrendPoint{
			Date:         date,
			Parties:      r.NoOfParties,
			GameRevenue:  r.PartyGameSale,
			FoodRevenue:  r.PartyFoodSale,
			TotalRevenue: r.PartyGameSale + r.PartyFoodSale,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// PartyPeriod 周末/工作日派对分区汇总
type PartyPeriod struct {
	Name       string  `json:"name"`
	Parties    int     `json:"parties"`
	Revenue    float64 `json:"revenue"`
	AvgRevenue float64 `json:"avgRevenue"` // 每场派对均值，场次为 0 时为 0
}

// PartyWeekendWeekday 周末与工作日的派对对比，周末在前
func PartyWeekendWeekday(sales []model.SalesDailyRecord) []PartyPeriod {
	weekend := PartyPeriod{Name: "Weekend"}
	weekday := PartyPeriod{Name: "Weekday"}

	for _, r := range sales {
		p := &weekday
		if isWeekend(r.Day) {
			p = &weekend
		}
		p.Parties += r.NoOfParties
		p.Revenue += r.PartyGameSale + r.PartyFoodSale
	}
	for _, p := range []*PartyPeriod{&weekend, &weekday} {
		if p.Parties > 0 {
			p.AvgRevenue = p.Revenue / float64(p.Parties)
		}
	}
	return []PartyPeriod{weekend, weekday}
}

// PartyDayRow 单个星期桶的派对表现
type PartyDayRow struct {
	Day          string  `json:"day"`
	AvgParties   int     `json:"avgParties"` // 四舍五入到整数场
	AvgRevenue   float64 `json:"avgRevenue"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalParties int     `json:"totalParties"`
}

// PartyByDayOfWeek 按星期分桶的派对日均，周一到周日排列，仅含出现过的星期
func PartyByDayOfWeek(sales []model.SalesDailyRecord) []PartyDayRow {
	type group struct {
		parties int
		revenue float64
		days    int
	}
	groups := make(map[string]*group, len(weekdayOrder))

	for _, r := range sales {
		day := r.Day
		if day == "" {
			continue
		}
		g, ok := groups[day]
		if !ok {
			g = &group{}
			groups[day] = g
		}
		g.parties += r.NoOfParties
		g.revenue += r.PartyGameSale + r.PartyFoodSale
		g.days++
	}

	rows := make([]PartyDayRow, 0, len(groups))
	for _, day := range weekdayOrder {
		g, ok := groups[day]
		if !ok {
			continue
		}
		row := PartyDayRow{
			Day:          day,
			TotalRevenue: g.revenue,
			TotalParties: g.parties,
		}
		if g.days > 0 {
			row.AvgParties = int(math.Round(float64(g.parties) / float64(g.days)))
			row.AvgRevenue = g.revenue / float64(g.days)
		}
		rows = append(rows, row)
	}
	return rows
}

// PartyMonthRow 单月派对汇总
type PartyMonthRow struct {
	Month       string  `json:"month"`
	Parties     int     `json:"parties"`
	GameRevenue float64 `json:"gameRevenue"`
	FoodRevenue float64 `json:"foodRevenue"`
}

// PartyMonthlyBreakdown 按月汇总派对数据，保留数据中的月份出现顺序
// 月份名为空的记录跳过
func PartyMonthlyBreakdown(sales []model.SalesDailyRecord) []PartyMonthRow {
	type group struct {
		parties     int
		gameRevenue float64
		foodRevenue float64
	}
	groups := make(map[string]*group)
	var order []string

	for _, r := range sales {
		if r.Month == "" {
			continue
		}
		g, ok := groups[r.Month]
		if !ok {
			g = &group{}
			groups[r.Month] = g
			order = append(order, r.Month)
		}
		g.parties += r.NoOfParties
		g.gameRevenue += r.PartyGameSale
		g.foodRevenue += r.PartyFoodSale
	}

	rows := make([]PartyMonthRow, 0, len(order))
	for _, month := range order {
		g := groups[month]
		rows = append(rows, PartyMonthRow{
			Month:       month,
			Parties:     g.parties,
			GameRevenue: g.gameRevenue,
			FoodRevenue: g.foodRevenue,
		})
	}
	return rows
}
