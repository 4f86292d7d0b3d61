package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jaythan-dev/projeto-concessionaria/types"
	"github.com/jaythan-dev/projeto-concessionaria/utils"
)

// WebSocketHandler WebSocket处理器
type WebSocketHandler struct {
	wsManager *utils.WebSocketManager
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

// NewWebSocketHandler 创建新的WebSocket处理器，allowedOrigins 为空时不校验来源
func NewWebSocketHandler(wsManager *utils.WebSocketManager, allowedOrigins []string, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// HandleWebSocket 处理WebSocket连接
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// 升级HTTP连接为WebSocket
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	clientID := uuid.NewString()
	h.wsManager.AddConnection(clientID, conn)
	defer h.wsManager.RemoveConnection(clientID)

	if err := h.wsManager.SendMessage(clientID, types.ConnectedMessage{
		Type:     types.MessageConnected,
		ClientID: clientID,
	}); err != nil {
		h.logger.Warn("websocket greeting failed", zap.String("client_id", clientID), zap.Error(err))
		return
	}

	// 读取消息只用于检测连接断开
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("websocket read error", zap.String("client_id", clientID), zap.Error(err))
			}
			return
		}
	}
}
