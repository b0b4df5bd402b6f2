package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/store"
)

// ListMonths 列出可用月份
// GET /api/months
func (h *Handler) ListMonths(c *gin.Context) {
	months, err := h.store.ListAvailableMonths()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询可用月份失败"})
		return
	}
	if months == nil {
		months = []store.MonthStat{}
	}
	c.JSON(http.StatusOK, gin.H{"months": months})
}
