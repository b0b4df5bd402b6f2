package model

// Dataset 一次导入产生的四个只读记录集合
// 加载后不再修改，聚合函数只读取
type Dataset struct {
	Sales    []SalesDailyRecord `json:"sales"`
	SalesMix []SalesMixRecord   `json:"salesMix"`
	Recharge []RechargeRecord   `json:"recharge"`
	Arcade   []ArcadeRecord     `json:"arcade"`
}

// DatasetCounts 各集合的记录数
type DatasetCounts struct {
	Sales    int `json:"sales"`
	SalesMix int `json:"salesMix"`
	Recharge int `json:"recharge"`
	Arcade   int `json:"arcade"`
}

// Counts 返回各集合的记录数
func (d *Dataset) Counts() DatasetCounts {
	return DatasetCounts{
		Sales:    len(d.Sales),
		SalesMix: len(d.SalesMix),
		Recharge: len(d.Recharge),
		Arcade:   len(d.Arcade),
	}
}

// Empty 数据集是否为空
func (d *Dataset) Empty() bool {
	return len(d.Sales) == 0 && len(d.SalesMix) == 0 &&
		len(d.Recharge) == 0 && len(d.Arcade) == 0
}
