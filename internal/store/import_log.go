package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ImportLog 导入日志条目
type ImportLog struct {
	ID           int64  `json:"id"`
	BatchID      string `json:"batchId"`
	Filename     string `json:"filename"`
	FileSize     int64  `json:"fileSize"`
	SalesRows    int    `json:"salesRows"`
	SalesMixRows int    `json:"salesMixRows"`
	RechargeRows int    `json:"rechargeRows"`
	ArcadeRows   int    `json:"arcadeRows"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage"`
	CreatedAt    string `json:"createdAt"`
}

// CreateImportLog 创建导入日志，返回日志ID
func (s *Store) CreateImportLog(batchID, filename string, fileSize int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (batch_id, filename, file_size, status)
		VALUES (?, ?, ?, 'processing')
	`, batchID, filename, fileSize)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// FinishImportLog 完成导入日志更新
func (s *Store) FinishImportLog(id int64, salesRows, salesMixRows, rechargeRows, arcadeRows int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			sales_rows = ?,
			sales_mix_rows = ?,
			recharge_rows = ?,
			arcade_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, salesRows, salesMixRows, rechargeRows, arcadeRows, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// LatestImportLog 最近一次导入日志；无记录时返回 nil
func (s *Store) LatestImportLog() (*ImportLog, error) {
	var log ImportLog
	err := s.db.QueryRow(`
		SELECT id, batch_id, filename, file_size,
		       sales_rows, sales_mix_rows, recharge_rows, arcade_rows,
		       status, error_message, created_at
		FROM import_logs ORDER BY id DESC LIMIT 1
	`).Scan(
		&log.ID, &log.BatchID, &log.Filename, &log.FileSize,
		&log.SalesRows, &log.SalesMixRows, &log.RechargeRows, &log.ArcadeRows,
		&log.Status, &log.ErrorMessage, &log.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query import log: %w", err)
	}
	return &log, nil
}
