package store

import "fmt"

// MonthStat 可用月份统计
type MonthStat struct {
	Month string `json:"month"`

	SalesDays    int `json:"salesDays"`
	MixCount     int `json:"mixCount"`
	RechargeOps  int `json:"rechargeOps"`
	ArcadeReads  int `json:"arcadeReads"`
	TotalRecords int `json:"totalRecords"`
}

// ListAvailableMonths 列出当前库中存在数据的月份（按首个日期序列值升序）
func (s *Store) ListAvailableMonths() ([]MonthStat, error) {
	rows, err := s.db.Query(`
		WITH m AS (
			SELECT month, MIN(date) AS first_date FROM sales_daily WHERE month != '' GROUP BY month
			UNION
			SELECT month, MIN(date) FROM sales_mix WHERE month != '' GROUP BY month
		)
		SELECT
			m.month,
			(SELECT COUNT(1) FROM sales_daily WHERE month = m.month) AS sales_days,
			(SELECT COUNT(1) FROM sales_mix WHERE month = m.month) AS mix_count,
			(SELECT COUNT(1) FROM recharge WHERE month = m.month) AS recharge_ops,
			(SELECT COUNT(1) FROM arcade WHERE month = m.month) AS arcade_reads
		FROM m
		GROUP BY m.month
		ORDER BY MIN(m.first_date)
	`)
	if err != nil {
		return nil, fmt.Errorf("query available months failed: %w", err)
	}
	defer rows.Close()

	var out []MonthStat
	for rows.Next() {
		var it MonthStat
		if err := rows.Scan(&it.Month, &it.SalesDays, &it.MixCount, &it.RechargeOps, &it.ArcadeReads); err != nil {
			return nil, fmt.Errorf("scan available months failed: %w", err)
		}
		it.TotalRecords = it.SalesDays + it.MixCount + it.RechargeOps + it.ArcadeReads
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate available months failed: %w", err)
	}
	return out, nil
}
