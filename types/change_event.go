package types

import "time"

// 推送消息类型
const (
	MessageConnected     = "connected"
	MessageEntityChanged = "entity_changed"
)

// 变更动作
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// 实体名称，与路由前缀一致
const (
	EntityBrands = "brands"
	EntityOwners = "owners"
	EntityCars   = "cars"
)

// ChangeEvent 实体变更事件
type ChangeEvent struct {
	Type      string    `json:"type"`
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeEvent 创建变更事件
func NewChangeEvent(entity, action string, id int) ChangeEvent {
	return ChangeEvent{
		Type:      MessageEntityChanged,
		Entity:    entity,
		Action:    action,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
}

// ConnectedMessage 连接建立后发送给客户端
type ConnectedMessage struct {
	Type     string `json:"type"`
	ClientID string `json:"clientId"`
}
