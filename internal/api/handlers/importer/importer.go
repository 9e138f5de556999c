package importer

import (
	"errors"
	"net/http"

	"recipe-importer/internal/core/pipeline"
	"recipe-importer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// URLImportRequest 從 URL 匯入食譜
type URLImportRequest struct {
	URL string `json:"url" binding:"required"` // 影片或部落格連結
}

// TextImportRequest 從手動貼上的文字匯入食譜
type TextImportRequest struct {
	Text string `json:"text" binding:"required"` // 食譜原文
}

// Handler 匯入處理程序
type Handler struct {
	pipeline *pipeline.Service
}

// NewHandler 創建新的匯入處理程序
func NewHandler(p *pipeline.Service) *Handler {
	return &Handler{
		pipeline: p,
	}
}

// HandleImportURL 處理 URL 匯入請求
func (h *Handler) HandleImportURL(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req URLImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "Invalid request format",
		})
		return
	}

	common.LogInfo("開始處理 URL 匯入請求",
		zap.String("request_id", requestID),
		zap.String("url", req.URL),
		zap.String("client_ip", c.ClientIP()),
	)

	recipe, err := h.pipeline.ParseRecipeFromURL(c.Request.Context(), req.URL)
	if err != nil {
		respondError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// HandleImportText 處理文字匯入請求
func (h *Handler) HandleImportText(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req TextImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "Invalid request format",
		})
		return
	}

	common.LogInfo("開始處理文字匯入請求",
		zap.String("request_id", requestID),
		zap.Int("text_length", len(req.Text)),
		zap.String("client_ip", c.ClientIP()),
	)

	recipe, err := h.pipeline.ParseRecipeFromText(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// ensureRequestID 沒帶 X-Request-ID 時補一個
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// respondError 把管線的類型化錯誤對應到 HTTP 回應
// 原始錯誤只進日誌，給使用者的是簡短訊息加補救建議
func respondError(c *gin.Context, requestID string, err error) {
	var ce *common.CustomError
	if !errors.As(err, &ce) {
		ce = common.ErrInternalError
	}

	common.LogError("匯入請求失敗",
		zap.Error(err),
		zap.String("code", ce.Code),
		zap.String("request_id", requestID),
	)

	c.Set("error_code", ce.Code)
	c.JSON(ce.Status, common.ErrorResponse{
		Code:    ce.Code,
		Message: ce.Message,
		Hint:    ce.Hint,
	})
}
