// Package importer 数据工作簿导入
// 将场馆数据工作簿的四张表解析为引擎输入记录；
// 汇总行（GRAND TOTAL 及尾随空格变体）在导入阶段即剔除
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// 工作簿内的四张固定表
const (
	SheetSales    = "Sales data"
	SheetSalesMix = "Sales mix"
	SheetRecharge = "Recharge data"
	SheetArcade   = "ARCADE"
)

// Importer 工作簿导入器
type Importer struct {
	file    *excelize.File
	batchID string
}

// New 创建导入器，每次导入分配独立批次ID
func New() *Importer {
	return &Importer{
		batchID: uuid.New().String(),
	}
}

// BatchID 本次导入的批次ID
func (i *Importer) BatchID() string {
	return i.batchID
}

// Load 加载工作簿
func (i *Importer) Load(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	i.file = file
	return nil
}

// LoadFile 按路径加载工作簿
func (i *Importer) LoadFile(path string) error {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	i.file = file
	return nil
}

// Close 释放工作簿
func (i *Importer) Close() error {
	if i.file == nil {
		return nil
	}
	return i.file.Close()
}

// ParseAll 解析四张表为数据集
func (i *Importer) ParseAll() (*model.Dataset, error) {
	if i.file == nil {
		return nil, fmt.Errorf("no workbook loaded")
	}

	sales, err := i.parseSales()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SheetSales, err)
	}
	salesMix, err := i.parseSalesMix()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SheetSalesMix, err)
	}
	recharge, err := i.parseRecharge()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SheetRecharge, err)
	}
	arcade, err := i.parseArcade()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SheetArcade, err)
	}

	return &model.Dataset{
		Sales:    sales,
		SalesMix: salesMix,
		Recharge: recharge,
		Arcade:   arcade,
	}, nil
}

// rows 读取整张表的原始单元格值（保留日期序列值，不做格式化）
func (i *Importer) rows(sheet string) ([][]string, error) {
	return i.file.GetRows(sheet, excelize.Options{RawCellValue: true})
}

// parseSales 解析营业日报表
// 表头行位置不固定，扫描首个 "Date" 表头；列按固定位置映射
func (i *Importer) parseSales() ([]model.SalesDailyRecord, error) {
	rows, err := i.rows(SheetSales)
	if err != nil {
		return nil, err
	}

	headerRow := -1
	for idx, row := range rows {
		if len(row) > 0 && strings.TrimSpace(cell(row, 0)) == "Date" {
			headerRow = idx
			break
		}
	}
	if headerRow < 0 {
		// 无表头时退回首行为表头的约定
		headerRow = 0
	}

	var records []model.SalesDailyRecord
	for _, row := range rows[headerRow+1:] {
		serial := parseInt(cell(row, 0))
		if serial <= 0 {
			continue
		}
		records = append(records, model.SalesDailyRecord{
			Date:          serial,
			Month:         strings.TrimSpace(cell(row, 1)),
			Day:           strings.TrimSpace(cell(row, 2)),
			GameRevenue:   parseFloat(cell(row, 3)),
			ArcadeCredit:  parseFloat(cell(row, 6)),
			ArcadeBonus:   parseFloat(cell(row, 7)),
			FoodSale:      parseFloat(cell(row, 9)),
			Footfall:      parseInt(cell(row, 10)),
			NewCards:      parseInt(cell(row, 12)),
			RechargeCards: parseInt(cell(row, 13)),
			PartyGameSale: parseFloat(cell(row, 21)),
			PartyFoodSale: parseFloat(cell(row, 22)),
			NoOfParties:   parseInt(cell(row, 23)),
			DateFormatted: model.SerialToISO(serial),
		})
	}
	return records, nil
}

// parseSalesMix 解析销售构成表（表头在第二行）
func (i *Importer) parseSalesMix() ([]model.SalesMixRecord, error) {
	rows, err := i.rows(SheetSalesMix)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	col := headerIndex(rows[1])
	var records []model.SalesMixRecord
	for _, row := range rows[2:] {
		serial := parseInt(cell(row, col.idx("Date")))
		activity := cell(row, col.idx("Activity"))
		if serial <= 0 || strings.TrimSpace(activity) == "" {
			continue
		}
		if isGrandTotal(activity) {
			continue
		}
		records = append(records, model.SalesMixRecord{
			Date:          serial,
			Month:         strings.TrimSpace(cell(row, col.idx("Month"))),
			Day:           strings.TrimSpace(cell(row, col.idx("Day"))),
			Activity:      activity,
			Variant:       cell(row, col.idx("Variant")),
			Revenue:       parseFloat(cell(row, col.idx("REVENUE"))),
			Quantity:      parseInt(cell(row, col.idx("QUANTITY"))),
			DateFormatted: model.SerialToISO(serial),
		})
	}
	return records, nil
}

// parseRecharge 解析充值流水表
func (i *Importer) parseRecharge() ([]model.RechargeRecord, error) {
	rows, err := i.rows(SheetRecharge)
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, nil
	}

	col := headerIndex(rows[0])
	var records []model.RechargeRecord
	for _, row := range rows[1:] {
		serial := parseInt(cell(row, col.idx("Date")))
		rtype := cell(row, col.idx("Recharge_Type"))
		if serial <= 0 || strings.TrimSpace(rtype) == "" {
			continue
		}
		if isGrandTotal(rtype) {
			continue
		}
		records = append(records, model.RechargeRecord{
			Date:          serial,
			Month:         strings.TrimSpace(cell(row, col.idx("Month"))),
			Cashier:       strings.TrimSpace(cell(row, col.idx("Cashier"))),
			RechargeType:  rtype,
			RechargeLevel: parseFloat(cell(row, col.idx("Recharge_Level"))),
			Quantity:      parseInt(cell(row, col.idx("Quantity"))),
			Amount:        parseFloat(cell(row, col.idx("Amount"))),
			DateFormatted: model.SerialToISO(serial),
		})
	}
	return records, nil
}

// parseArcade 解析街机读数表（表头在第二行）
func (i *Importer) parseArcade() ([]model.ArcadeRecord, error) {
	rows, err := i.rows(SheetArcade)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	col := headerIndex(rows[1])
	var records []model.ArcadeRecord
	for _, row := range rows[2:] {
		serial := parseInt(cell(row, col.idx("DATE")))
		finalName := strings.TrimSpace(cell(row, col.idx("GAME NAME FINAL")))
		if serial <= 0 || finalName == "" {
			continue
		}
		records = append(records, model.ArcadeRecord{
			Date:          serial,
			Month:         strings.TrimSpace(cell(row, col.idx("Month"))),
			Day:           strings.TrimSpace(cell(row, col.idx("DAY"))),
			GameNameFinal: finalName,
			GameName:      strings.TrimSpace(cell(row, col.idx("GAME NAME"))),
			GameType:      strings.TrimSpace(cell(row, col.idx("Type of Game"))),
			Quantity:      parseInt(cell(row, col.idx("QTY"))),
			Credit:        parseFloat(cell(row, col.idx("CREDIT"))),
			Bonus:         parseFloat(cell(row, col.idx("BONUS"))),
			Total:         parseFloat(cell(row, col.idx("Total"))),
			DateFormatted: model.SerialToISO(serial),
		})
	}
	return records, nil
}

// isGrandTotal 汇总行判定（含尾随空格变体）
func isGrandTotal(value string) bool {
	return strings.TrimSpace(value) == "GRAND TOTAL"
}

// columnMap 表头名到列下标的映射
type columnMap map[string]int

// headerIndex 构造列映射；表头名去首尾空白后作键
func headerIndex(headers []string) columnMap {
	index := make(columnMap, len(headers))
	for i, h := range headers {
		name := strings.TrimSpace(h)
		if name == "" {
			continue
		}
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}

// idx 查列下标；未知表头返回 -1，使 cell 取值为空串
func (c columnMap) idx(name string) int {
	if i, ok := c[name]; ok {
		return i
	}
	return -1
}

// cell 安全取列值；越界或未映射的列返回空串
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseFloat 解析数值单元格；空值/非数值按 0 处理
func parseFloat(value string) float64 {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseInt 解析整数单元格；带小数的序列值截断取整
func parseInt(value string) int {
	return int(parseFloat(value))
}
