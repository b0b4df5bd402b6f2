package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/importer"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/model"
)

// ImportResponse 导入结果响应
type ImportResponse struct {
	BatchID  string              `json:"batchId"`
	Filename string              `json:"filename"`
	Counts   model.DatasetCounts `json:"counts"`
}

// Import 导入数据工作簿
// POST /api/import (multipart, 字段名 file)
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer src.Close()

	imp := importer.New()
	if err := imp.Load(src); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法打开工作簿，请确认文件格式"})
		return
	}
	defer imp.Close()

	logID, err := h.store.CreateImportLog(imp.BatchID(), fileHeader.Filename, fileHeader.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建导入日志失败"})
		return
	}

	ds, err := imp.ParseAll()
	if err != nil {
		h.store.FinishImportLog(logID, 0, 0, 0, 0, "failed", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "解析工作簿失败: " + err.Error()})
		return
	}

	if err := h.store.ReplaceDataset(ds, imp.BatchID()); err != nil {
		h.store.FinishImportLog(logID, 0, 0, 0, 0, "failed", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入数据库失败"})
		return
	}

	counts := ds.Counts()
	if err := h.store.FinishImportLog(logID,
		counts.Sales, counts.SalesMix, counts.Recharge, counts.Arcade,
		"completed", ""); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新导入日志失败"})
		return
	}

	// 报表从内存快照读取，落库成功后整体替换
	h.snap.Replace(ds)

	c.JSON(http.StatusOK, ImportResponse{
		BatchID:  imp.BatchID(),
		Filename: fileHeader.Filename,
		Counts:   counts,
	})
}
