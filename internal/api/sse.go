package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/auth"
)

// SSEHandler SSE 处理器
// 支持 token 认证和记录状态实时推送
func SSEHandler(validator *auth.KeycloakTokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从 query 参数获取 token
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		// 2. 验证 token
		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// 3. 获取记录 ID
		recordID := c.Param("id")
		if recordID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "record id required"})
			c.Abort()
			return
		}

		// 4. 设置 SSE 响应头
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no") // 禁用 Nginx 缓冲

		// 5. 获取 Flusher(用于刷新响应缓冲区)
		flusher, ok := c.Writer.(http.Flusher)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
			c.Abort()
			return
		}

		// 6. 创建 SSE 客户端通道
		// 通道由心跳 goroutine 关闭,处理器只读;双方都往通道收发时
		// 断开连接的瞬间会出现向已关闭通道发送的竞争
		messageChan := make(chan []byte, 256)

		// 7. 启动 goroutine 发送心跳
		go heartbeatPump(c.Request.Context(), recordID, 30*time.Second, messageChan)

		// 8. 发送初始连接消息
		initialMsg := map[string]interface{}{
			"type":      "connected",
			"record_id": recordID,
			"user_id":   claims.Sub,
			"time":      time.Now().Unix(),
		}
		initialData, _ := json.Marshal(initialMsg)
		if err := sendSSEMessage(c.Writer, initialData); err != nil {
			return
		}
		flusher.Flush()

		// 9. 持续发送消息
		for {
			select {
			case <-c.Request.Context().Done():
				return
			case message, ok := <-messageChan:
				if !ok {
					return
				}
				if err := sendSSEMessage(c.Writer, message); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// heartbeatPump 周期性向通道写入心跳消息
// 通道的所有权在这里:context 取消或缓冲写不进去时关闭通道并退出
func heartbeatPump(ctx context.Context, recordID string, interval time.Duration, messageChan chan []byte) {
	defer close(messageChan)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			heartbeat := map[string]interface{}{
				"type":      "heartbeat",
				"record_id": recordID,
				"time":      time.Now().Unix(),
			}
			data, _ := json.Marshal(heartbeat)
			select {
			case messageChan <- data:
			default:
				return
			}
		}
	}
}

// sendSSEMessage 发送 SSE 消息
func sendSSEMessage(w io.Writer, data []byte) error {
	// SSE 格式: data: <json>\n\n
	_, err := fmt.Fprintf(w, "data: %s\n\n", string(data))
	return err
}
