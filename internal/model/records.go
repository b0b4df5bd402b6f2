package model

// SalesDailyRecord 营业日报记录（每个日历日一行）
type SalesDailyRecord struct {
	Date          int     `json:"date"` // Excel 日期序列值
	Month         string  `json:"month"`
	Day           string  `json:"day"` // 英文星期名
	GameRevenue   float64 `json:"gameRevenue"`
	FoodSale      float64 `json:"foodSale"`
	Footfall      int     `json:"footfall"`
	ArcadeCredit  float64 `json:"arcadeCredit"`
	ArcadeBonus   float64 `json:"arcadeBonus"`
	NewCards      int     `json:"newCards"`
	RechargeCards int     `json:"rechargeCards"`
	PartyGameSale float64 `json:"partyGameSale"`
	PartyFoodSale float64 `json:"partyFoodSale"`
	NoOfParties   int     `json:"noOfParties"`
	DateFormatted string  `json:"dateFormatted,omitempty"` // ISO 日期字符串 (YYYY-MM-DD)
}

// MonthName 返回记录所属月份名
func (r SalesDailyRecord) MonthName() string { return r.Month }

// ISODate 返回 ISO 日期字符串；导入时未预计算则由序列值推导
func (r SalesDailyRecord) ISODate() string {
	if r.DateFormatted != "" {
		return r.DateFormatted
	}
	return SerialToISO(r.Date)
}

// SalesMixRecord 销售构成记录（每个 日期×活动×套餐 组合一行）
type SalesMixRecord struct {
	Date          int     `json:"date"`
	Month         string  `json:"month"`
	Day           string  `json:"day"`
	Activity      string  `json:"activity"` // 自由文本，大小写/空格不规范
	Variant       string  `json:"variant"`  // 套餐/票种名称
	Revenue       float64 `json:"revenue"`
	Quantity      int     `json:"quantity"`
	DateFormatted string  `json:"dateFormatted,omitempty"`
}

// MonthName 返回记录所属月份名
func (r SalesMixRecord) MonthName() string { return r.Month }

// ISODate 返回 ISO 日期字符串
func (r SalesMixRecord) ISODate() string {
	if r.DateFormatted != "" {
		return r.DateFormatted
	}
	return SerialToISO(r.Date)
}

// RechargeRecord 充值/开卡流水记录（收银台每笔一行）
type RechargeRecord struct {
	Date          int     `json:"date"`
	Month         string  `json:"month"`
	Cashier       string  `json:"cashier"`
	RechargeType  string  `json:"rechargeType"`  // 如 "CARD ISSUE" / "RECHARGE CARD"
	RechargeLevel float64 `json:"rechargeLevel"` // 套餐面额；不在固定档位内视为可变金额
	Quantity      int     `json:"quantity"`      // 卡数
	Amount        float64 `json:"amount"`
	DateFormatted string  `json:"dateFormatted,omitempty"`
}

// MonthName 返回记录所属月份名
func (r RechargeRecord) MonthName() string { return r.Month }

// ISODate 返回 ISO 日期字符串
func (r RechargeRecord) ISODate() string {
	if r.DateFormatted != "" {
		return r.DateFormatted
	}
	return SerialToISO(r.Date)
}

// ArcadeRecord 街机/VR 读数记录（每个 日期×机台 一行）
type ArcadeRecord struct {
	Date          int     `json:"date"`
	Month         string  `json:"month"`
	Day           string  `json:"day"`
	GameNameFinal string  `json:"gameNameFinal"` // 规范机台名，优先使用
	GameName      string  `json:"gameName"`      // 原始机台名
	GameType      string  `json:"gameType"`      // "Arcade" 或 "VR"，大小写不敏感
	Quantity      int     `json:"quantity"`      // 游玩次数
	Credit        float64 `json:"credit"`        // 付费币收入
	Bonus         float64 `json:"bonus"`         // 赠币收入（非现金）
	Total         float64 `json:"total"`
	DateFormatted string  `json:"dateFormatted,omitempty"`
}

// MonthName 返回记录所属月份名
func (r ArcadeRecord) MonthName() string { return r.Month }

// ISODate 返回 ISO 日期字符串
func (r ArcadeRecord) ISODate() string {
	if r.DateFormatted != "" {
		return r.DateFormatted
	}
	return SerialToISO(r.Date)
}

// ResolvedName 机台标识：优先 FINAL 名，缺失时回退原始名
func (r ArcadeRecord) ResolvedName() string {
	if r.GameNameFinal != "" {
		return r.GameNameFinal
	}
	return r.GameName
}
