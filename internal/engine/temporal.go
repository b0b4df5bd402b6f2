package engine

import (
	"sort"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// weekdayOrder 星期的规范输出顺序
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// isWeekend 周六周日为周末
func isWeekend(day string) bool {
	return day == "Saturday" || day == "Sunday"
}

// PeriodStat 单个时段分区的汇总
type PeriodStat struct {
	Revenue    float64 `json:"revenue"`
	Footfall   int     `json:"footfall"`
	Percentage float64 `json:"percentage"` // 占总游戏营收的百分比
}

// WeekendWeekday 周末/工作日对比
type WeekendWeekday struct {
	Weekend PeriodStat `json:"weekend"`
	Weekday PeriodStat `json:"weekday"`
}

// WeekendWeekdaySplit 按星期名把日报划分为周末与工作日两个分区
// 总营收为 0 时占比为 0
func WeekendWeekdaySplit(sales []model.SalesDailyRecord) WeekendWeekday {
	split := WeekendWeekday{}
	for _, r := range sales {
		if isWeekend(r.Day) {
			split.Weekend.Revenue += r.GameRevenue
			split.Weekend.Footfall += r.Footfall
		} else {
			split.Weekday.Revenue += r.GameRevenue
			split.Weekday.Footfall += r.Footfall
		}
	}
	total := split.Weekend.Revenue + split.Weekday.Revenue
	if total > 0 {
		split.Weekend.Percentage = split.Weekend.Revenue / total * 100
		split.Weekday.Percentage = split.Weekday.Revenue / total * 100
	}
	return split
}

// DayOfWeekRow 单个星期桶的表现
type DayOfWeekRow struct {
	Day           string  `json:"day"`
	Days          int     `json:"days"` // 该星期在数据中出现的天数
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalFootfall int     `json:"totalFootfall"`
	TotalParties  int     `json:"totalParties"`
	AvgRevenue    float64 `json:"avgRevenue"`
	AvgFootfall   float64 `json:"avgFootfall"`
	AvgParties    float64 `json:"avgParties"`
}

// DayOfWeekPerformance 按星期名分桶并计算日均指标
// 仅输出数据中实际出现的星期，固定按周一到周日排列
// 星期名不在七个规范名内的记录不落入任何桶
func DayOfWeekPerformance(sales []model.SalesDailyRecord) []DayOfWeekRow {
	type group struct {
		days     int
		revenue  float64
		footfall int
		parties  int
	}
	groups := make(map[string]*group, len(weekdayOrder))

	for _, r := range sales {
		g, ok := groups[r.Day]
		if !ok {
			found := false
			for _, day := range weekdayOrder {
				if day == r.Day {
					found = true
					break
				}
			}
			if !found {
				continue
			}
			g = &group{}
			groups[r.Day] = g
		}
		g.days++
		g.revenue += r.GameRevenue
		g.footfall += r.Footfall
		g.parties += r.NoOfParties
	}

	rows := make([]DayOfWeekRow, 0, len(groups))
	for _, day := range weekdayOrder {
		g, ok := groups[day]
		if !ok {
			continue
		}
		row := DayOfWeekRow{
			Day:           day,
			Days:          g.days,
			TotalRevenue:  g.revenue,
			TotalFootfall: g.footfall,
			TotalParties:  g.parties,
		}
		if g.days > 0 {
			row.AvgRevenue = g.revenue / float64(g.days)
			row.AvgFootfall = float64(g.footfall) / float64(g.days)
			row.AvgParties = float64(g.parties) / float64(g.days)
		}
		rows = append(rows, row)
	}
	return rows
}

// TrendPoint 单日营收走势点
type TrendPoint struct {
	Date         string  `json:"date"`
	GameRevenue  float64 `json:"gameRevenue"`
	FoodRevenue  float64 `json:"foodRevenue"`
	TotalRevenue float64 `json:"totalRevenue"`
	Footfall     int     `json:"footfall"`
}

// DailyRevenueTrend 日报逐日走势，按日期升序
// 缺少日期的记录跳过
func DailyRevenueTrend(sales []model.SalesDailyRecord) []TrendPoint {
	points := make([]TrendPoint, 0, len(sales))
	for _, r := range sales {
		date := r.ISODate()
		if date == "" {
			continue
		}
		points = append(points, TrendPoint{
			Date:         date,
			GameRevenue:  r.GameRevenue,
			FoodRevenue:  r.FoodSale,
			TotalRevenue: r.GameRevenue + r.FoodSale,
			Footfall:     r.Footfall,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
