package notify

import (
	"staywise/utils"

	"go.uber.org/zap"
)

// Notifier is the sink for user-visible notifications. Calls are
// fire-and-forget; no result is consumed.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ZapNotifier writes notifications to the application log. It is always
// wired; push delivery is layered on top when configured.
type ZapNotifier struct{}

func (ZapNotifier) Success(message string) {
	utils.GetLogger().Info("notification", zap.String("level", "success"), zap.String("message", message))
}

func (ZapNotifier) Error(message string) {
	utils.GetLogger().Warn("notification", zap.String("level", "error"), zap.String("message", message))
}

// MultiNotifier fans a notification out to several sinks.
type MultiNotifier []Notifier

func (m MultiNotifier) Success(message string) {
	for _, n := range m {
		n.Success(message)
	}
}

func (m MultiNotifier) Error(message string) {
	for _, n := range m {
		n.Error(message)
	}
}
