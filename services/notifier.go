package services

import "github.com/jaythan-dev/projeto-concessionaria/types"

// ChangeNotifier 实体变更通知
type ChangeNotifier interface {
	Publish(event types.ChangeEvent)
}

// NopNotifier 不推送任何消息
type NopNotifier struct{}

// Publish 实现 ChangeNotifier
func (NopNotifier) Publish(types.ChangeEvent) {}

func notifierOrNop(n ChangeNotifier) ChangeNotifier {
	if n == nil {
		return NopNotifier{}
	}
	return n
}
