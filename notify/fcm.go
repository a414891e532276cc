package notify

import (
	"context"
	"fmt"
	"sync"

	"staywise/utils"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FCMNotifier pushes notifications to registered desk staff devices.
type FCMNotifier struct {
	client *messaging.Client

	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewFCMNotifier initializes the Firebase app and Messaging client.
func NewFCMNotifier(credentialsFile string) (*FCMNotifier, error) {
	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("fcm: error initializing app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("fcm: error getting Messaging client: %w", err)
	}
	return &FCMNotifier{client: client, tokens: make(map[string]struct{})}, nil
}

// RegisterDevice adds a device token to the delivery set.
func (n *FCMNotifier) RegisterDevice(token string) {
	n.mu.Lock()
	n.tokens[token] = struct{}{}
	n.mu.Unlock()
}

// UnregisterDevice removes a device token from the delivery set.
func (n *FCMNotifier) UnregisterDevice(token string) {
	n.mu.Lock()
	delete(n.tokens, token)
	n.mu.Unlock()
}

func (n *FCMNotifier) Success(message string) { n.push("success", message) }

func (n *FCMNotifier) Error(message string) { n.push("error", message) }

func (n *FCMNotifier) push(level, message string) {
	n.mu.RLock()
	tokens := make([]string, 0, len(n.tokens))
	for t := range n.tokens {
		tokens = append(tokens, t)
	}
	n.mu.RUnlock()

	go func() {
		ctx := context.Background()
		for _, token := range tokens {
			_, err := n.client.Send(ctx, &messaging.Message{
				Token: token,
				Notification: &messaging.Notification{
					Title: "StayWise",
					Body:  message,
				},
				Data: map[string]string{"level": level},
			})
			if err != nil {
				utils.GetLogger().Warn("fcm: failed to send push", zap.Error(err))
			}
		}
	}()
}
