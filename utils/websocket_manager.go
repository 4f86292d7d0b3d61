package utils

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jaythan-dev/projeto-concessionaria/types"
)

const writeTimeout = 10 * time.Second

// wsClient 单个连接，写操作需要串行
type wsClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// WebSocketManager WebSocket连接管理器
type WebSocketManager struct {
	connections map[string]*wsClient
	mutex       sync.RWMutex
	logger      *zap.Logger
}

// NewWebSocketManager 创建新的WebSocket管理器
func NewWebSocketManager(logger *zap.Logger) *WebSocketManager {
	return &WebSocketManager{
		connections: make(map[string]*wsClient),
		logger:      logger,
	}
}

// AddConnection 添加连接
func (wm *WebSocketManager) AddConnection(clientID string, conn *websocket.Conn) {
	wm.mutex.Lock()
	defer wm.mutex.Unlock()

	wm.connections[clientID] = &wsClient{conn: conn}
	wm.logger.Debug("websocket client connected", zap.String("client_id", clientID))
}

// RemoveConnection 移除连接
func (wm *WebSocketManager) RemoveConnection(clientID string) {
	wm.mutex.Lock()
	defer wm.mutex.Unlock()

	if client, exists := wm.connections[clientID]; exists {
		client.conn.Close()
		delete(wm.connections, clientID)
		wm.logger.Debug("websocket client removed", zap.String("client_id", clientID))
	}
}

// SendMessage 同步发送消息到指定连接
func (wm *WebSocketManager) SendMessage(clientID string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	wm.mutex.RLock()
	client, exists := wm.connections[clientID]
	wm.mutex.RUnlock()
	if !exists {
		return nil
	}

	return wm.write(clientID, client, data)
}

// BroadcastMessage 广播消息到所有连接，不阻塞调用方
func (wm *WebSocketManager) BroadcastMessage(message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		wm.logger.Error("marshal websocket message", zap.Error(err))
		return
	}

	wm.mutex.RLock()
	clients := make(map[string]*wsClient, len(wm.connections))
	for id, client := range wm.connections {
		clients[id] = client
	}
	wm.mutex.RUnlock()

	for id, client := range clients {
		go func(clientID string, c *wsClient) {
			if err := wm.write(clientID, c, data); err != nil {
				wm.logger.Warn("websocket broadcast failed", zap.String("client_id", clientID), zap.Error(err))
			}
		}(id, client)
	}
}

// Publish 推送实体变更事件
func (wm *WebSocketManager) Publish(event types.ChangeEvent) {
	wm.BroadcastMessage(event)
}

// write 写入失败的连接直接移除
func (wm *WebSocketManager) write(clientID string, client *wsClient, data []byte) error {
	client.writeMu.Lock()
	defer client.writeMu.Unlock()

	client.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := client.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		wm.RemoveConnection(clientID)
		return err
	}
	return nil
}

// GetConnectionCount 获取连接数量
func (wm *WebSocketManager) GetConnectionCount() int {
	wm.mutex.RLock()
	defer wm.mutex.RUnlock()
	return len(wm.connections)
}

// CloseAll 关闭所有连接
func (wm *WebSocketManager) CloseAll() {
	wm.mutex.Lock()
	defer wm.mutex.Unlock()

	for id, client := range wm.connections {
		client.conn.Close()
		delete(wm.connections, id)
	}
}
