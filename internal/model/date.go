package model

import "time"

// excelEpoch Excel 日期序列的纪元（1899-12-30）
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// SerialToDate 将 Excel 日期序列值转换为 UTC 日期
func SerialToDate(serial int) time.Time {
	return excelEpoch.AddDate(0, 0, serial)
}

// SerialToISO 将 Excel 日期序列值转换为 ISO 日期字符串
// 序列值非正时返回空串
func SerialToISO(serial int) string {
	if serial <= 0 {
		return ""
	}
	return SerialToDate(serial).Format("2006-01-02")
}
