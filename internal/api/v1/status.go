package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool                `json:"initialized"`    // 是否已导入数据
	Counts         model.DatasetCounts `json:"counts"`         // 各表记录数
	LastImportTime string              `json:"lastImportTime"` // 最后导入时间
	LastImportFile string              `json:"lastImportFile"` // 最后导入文件名
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	ds := h.snap.Dataset()

	resp := StatusResponse{
		Initialized: !ds.Empty(),
		Counts:      ds.Counts(),
	}

	if log, err := h.store.LatestImportLog(); err == nil && log != nil {
		resp.LastImportTime = log.CreatedAt
		resp.LastImportFile = log.Filename
	}

	c.JSON(http.StatusOK, resp)
}
