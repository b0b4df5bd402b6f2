package store

import (
	"fmt"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// ReplaceDataset 以整表替换方式落库一个数据集
// 四张表在同一事务内清空重建，失败整体回滚
func (s *Store) ReplaceDataset(ds *model.Dataset, batchID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"sales_daily", "sales_mix", "recharge", "arcade"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sales_daily (
			date, month, day, game_revenue, arcade_credit, arcade_bonus,
			food_sale, footfall, new_cards, recharge_cards,
			party_game_sale, party_food_sale, no_of_parties,
			date_formatted, batch_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	for _, r := range ds.Sales {
		_, err := stmt.Exec(
			r.Date, r.Month, r.Day, r.GameRevenue, r.ArcadeCredit, r.ArcadeBonus,
			r.FoodSale, r.Footfall, r.NewCards, r.RechargeCards,
			r.PartyGameSale, r.PartyFoodSale, r.NoOfParties,
			r.DateFormatted, batchID,
		)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("failed to insert sales record: %w", err)
		}
	}
	stmt.Close()

	stmt, err = tx.Prepare(`
		INSERT INTO sales_mix (
			date, month, day, activity, variant, revenue, quantity,
			date_formatted, batch_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	for _, r := range ds.SalesMix {
		_, err := stmt.Exec(
			r.Date, r.Month, r.Day, r.Activity, r.Variant, r.Revenue, r.Quantity,
			r.DateFormatted, batchID,
		)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("failed to insert sales mix record: %w", err)
		}
	}
	stmt.Close()

	stmt, err = tx.Prepare(`
		INSERT INTO recharge (
			date, month, cashier, recharge_type, recharge_level, quantity, amount,
			date_formatted, batch_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	for _, r := range ds.Recharge {
		_, err := stmt.Exec(
			r.Date, r.Month, r.Cashier, r.RechargeType, r.RechargeLevel, r.Quantity, r.Amount,
			r.DateFormatted, batchID,
		)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("failed to insert recharge record: %w", err)
		}
	}
	stmt.Close()

	stmt, err = tx.Prepare(`
		INSERT INTO arcade (
			date, month, day, game_name_final, game_name, game_type,
			quantity, credit, bonus, total,
			date_formatted, batch_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	for _, r := range ds.Arcade {
		_, err := stmt.Exec(
			r.Date, r.Month, r.Day, r.GameNameFinal, r.GameName, r.GameType,
			r.Quantity, r.Credit, r.Bonus, r.Total,
			r.DateFormatted, batchID,
		)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("failed to insert arcade record: %w", err)
		}
	}
	stmt.Close()

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadDataset 读取当前库内全量数据集（按日期升序）
func (s *Store) LoadDataset() (*model.Dataset, error) {
	ds := &model.Dataset{}

	rows, err := s.db.Query(`
		SELECT date, month, day, game_revenue, arcade_credit, arcade_bonus,
		       food_sale, footfall, new_cards, recharge_cards,
		       party_game_sale, party_food_sale, no_of_parties, date_formatted
		FROM sales_daily ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales_daily: %w", err)
	}
	for rows.Next() {
		var r model.SalesDailyRecord
		if err := rows.Scan(
			&r.Date, &r.Month, &r.Day, &r.GameRevenue, &r.ArcadeCredit, &r.ArcadeBonus,
			&r.FoodSale, &r.Footfall, &r.NewCards, &r.RechargeCards,
			&r.PartyGameSale, &r.PartyFoodSale, &r.NoOfParties, &r.DateFormatted,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan sales record: %w", err)
		}
		ds.Sales = append(ds.Sales, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate sales_daily: %w", err)
	}
	rows.Close()

	rows, err = s.db.Query(`
		SELECT date, month, day, activity, variant, revenue, quantity, date_formatted
		FROM sales_mix ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales_mix: %w", err)
	}
	for rows.Next() {
		var r model.SalesMixRecord
		if err := rows.Scan(
			&r.Date, &r.Month, &r.Day, &r.Activity, &r.Variant, &r.Revenue, &r.Quantity,
			&r.DateFormatted,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan sales mix record: %w", err)
		}
		ds.SalesMix = append(ds.SalesMix, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate sales_mix: %w", err)
	}
	rows.Close()

	rows, err = s.db.Query(`
		SELECT date, month, cashier, recharge_type, recharge_level, quantity, amount, date_formatted
		FROM recharge ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recharge: %w", err)
	}
	for rows.Next() {
		var r model.RechargeRecord
		if err := rows.Scan(
			&r.Date, &r.Month, &r.Cashier, &r.RechargeType, &r.RechargeLevel, &r.Quantity, &r.Amount,
			&r.DateFormatted,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan recharge record: %w", err)
		}
		ds.Recharge = append(ds.Recharge, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate recharge: %w", err)
	}
	rows.Close()

	rows, err = s.db.Query(`
		SELECT date, month, day, game_name_final, game_name, game_type,
		       quantity, credit, bonus, total, date_formatted
		FROM arcade ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query arcade: %w", err)
	}
	for rows.Next() {
		var r model.ArcadeRecord
		if err := rows.Scan(
			&r.Date, &r.Month, &r.Day, &r.GameNameFinal, &r.GameName, &r.GameType,
			&r.Quantity, &r.Credit, &r.Bonus, &r.Total, &r.DateFormatted,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan arcade record: %w", err)
		}
		ds.Arcade = append(ds.Arcade, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate arcade: %w", err)
	}
	rows.Close()

	return ds, nil
}
