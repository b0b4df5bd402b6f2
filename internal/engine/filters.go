// Package engine 聚合与派生指标引擎
// 所有函数均为纯函数：输入只读记录集合，输出新的派生结果，不持有状态
package engine

// Monthly 携带月份名字段的记录
type Monthly interface {
	MonthName() string
}

// Dated 携带 ISO 日期字符串的记录
type Dated interface {
	ISODate() string
}

// FilterByMonth 按月份集合过滤记录
// 月份集合为空表示不过滤，原样返回；未知月份名不命中任何记录
func FilterByMonth[T Monthly](records []T, months []string) []T {
	if len(months) == 0 {
		return records
	}

	selected := make(map[string]struct{}, len(months))
	for _, m := range months {
		selected[m] = struct{}{}
	}

	result := make([]T, 0, len(records))
	for _, r := range records {
		if _, ok := selected[r.MonthName()]; ok {
			result = append(result, r)
		}
	}
	return result
}

// FilterByDateRange 按 [start, end] 闭区间过滤记录
// ISO 日期字符串按字典序比较（与时间序一致）；任一边界存在时，缺少日期的记录被排除
func FilterByDateRange[T Dated](records []T, start, end string) []T {
	if start == "" && end == "" {
		return records
	}

	result := make([]T, 0, len(records))
	for _, r := range records {
		date := r.ISODate()
		if date == "" {
			continue
		}
		if start != "" && date < start {
			continue
		}
		if end != "" && date > end {
			continue
		}
		result = append(result, r)
	}
	return result
}
