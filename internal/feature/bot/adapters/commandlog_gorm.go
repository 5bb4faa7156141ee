package adapters

import (
	"context"
	"time"
	"unicode/utf8"

	"cryptobot_backend/internal/feature/bot/usecase"

	"gorm.io/gorm"
)

// 保存するコマンドの最大文字数
const maxCommandLen = 255

type commandLogGorm struct {
	db *gorm.DB
}

var _ usecase.CommandRecorder = (*commandLogGorm)(nil)

func NewCommandLogRepository(db *gorm.DB) *commandLogGorm {
	return &commandLogGorm{db: db}
}

// CommandLogModel は処理したコマンド1件の監査ログです。
type CommandLogModel struct {
	ID        uint      `gorm:"primaryKey"`
	ChatID    int64     `gorm:"not null;index:command_logs_chat_created,priority:1"`
	Command   string    `gorm:"size:255;not null"`
	Known     bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index:command_logs_chat_created,priority:2"`
}

func (CommandLogModel) TableName() string {
	return "command_logs"
}

func (r *commandLogGorm) Record(ctx context.Context, chatID int64, command string, known bool) error {
	m := CommandLogModel{
		ChatID:  chatID,
		Command: truncate(command, maxCommandLen),
		Known:   known,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
