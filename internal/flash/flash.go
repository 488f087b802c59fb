package flash

import (
	"context"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message 一次性提示訊息，在下一次頁面渲染時取出
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Store keeps pending messages per session. Pop returns the messages in
// the order they were added and removes them.
type Store interface {
	Add(ctx context.Context, session string, msg Message) error
	Pop(ctx context.Context, session string) ([]Message, error)
}

// DefaultTTL 訊息未被取出時的保存時間
const DefaultTTL = 10 * time.Minute
