package chat

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Migrate creates the messages table if it does not exist. Safe to run on
// every startup.
func (r *Repo) Migrate() error {
	return r.db.AutoMigrate(&Message{})
}

func (r *Repo) InsertMessage(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// History returns every message of a session, oldest first. Ties on
// created_at fall back to insertion order. An unknown session yields an
// empty slice, not an error.
func (r *Repo) History(ctx context.Context, sessionID string) ([]Message, error) {
	var msgs []Message
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// Clear deletes all messages of a session. Clearing a session with no
// messages is a no-op.
func (r *Repo) Clear(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&Message{}).Error
}
