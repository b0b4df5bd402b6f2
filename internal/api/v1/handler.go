// Package v1 报表 API 处理器
package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/config"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/engine"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store *store.Store
	snap  *store.Snapshot
	cfg   *config.AppConfig
	areas model.AreaTable
}

// NewHandler 创建 V1 API 处理器
func NewHandler(st *store.Store, snap *store.Snapshot, cfg *config.AppConfig) *Handler {
	return &Handler{
		store: st,
		snap:  snap,
		cfg:   cfg,
		areas: model.DefaultAreaTable(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 可用月份
	router.GET("/months", h.ListMonths)

	// 数据导入
	router.POST("/import", h.Import)

	// 报表
	router.GET("/reports/summary", h.GetSummary)
	router.GET("/reports/activities", h.GetActivities)
	router.GET("/reports/space-efficiency", h.GetSpaceEfficiency)
	router.GET("/reports/combos", h.GetCombos)
	router.GET("/reports/arcade", h.GetArcade)
	router.GET("/reports/recharge", h.GetRecharge)
	router.GET("/reports/parties", h.GetParties)
}

// thresholds 机台表现阈值（配置缺省时退回默认）
func (h *Handler) thresholds() engine.PerformanceThresholds {
	low, bonus := h.cfg.Thresholds()
	return engine.PerformanceThresholds{
		LowRevenue:       low,
		HighBonusPercent: bonus,
	}
}

// queryMonths 解析 months 查询参数（逗号分隔，空值表示全量）
func queryMonths(c *gin.Context) []string {
	raw := strings.TrimSpace(c.Query("months"))
	if raw == "" {
		return nil
	}
	var months []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			months = append(months, m)
		}
	}
	return months
}

// filteredDataset 按查询参数过滤后的数据集视图
func (h *Handler) filteredDataset(c *gin.Context) *model.Dataset {
	ds := h.snap.Dataset()
	months := queryMonths(c)
	start := strings.TrimSpace(c.Query("start"))
	end := strings.TrimSpace(c.Query("end"))

	out := &model.Dataset{
		Sales:    engine.FilterByMonth(ds.Sales, months),
		SalesMix: engine.FilterByMonth(ds.SalesMix, months),
		Recharge: engine.FilterByMonth(ds.Recharge, months),
		Arcade:   engine.FilterByMonth(ds.Arcade, months),
	}
	if start != "" || end != "" {
		out.Sales = engine.FilterByDateRange(out.Sales, start, end)
		out.SalesMix = engine.FilterByDateRange(out.SalesMix, start, end)
		out.Recharge = engine.FilterByDateRange(out.Recharge, start, end)
		out.Arcade = engine.FilterByDateRange(out.Arcade, start, end)
	}
	return out
}
