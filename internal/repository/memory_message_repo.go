package repository

import (
	"context"
	"sync"

	"github.com/hitoshi/portal/internal/model"
)

// MemoryMessageRepo はメモリ上でチャットメッセージを保持するリポジトリ。
type MemoryMessageRepo struct {
	mu       sync.RWMutex
	messages []*model.Message
}

// NewMemoryMessageRepo はMemoryMessageRepoを生成する。
func NewMemoryMessageRepo() *MemoryMessageRepo {
	return &MemoryMessageRepo{
		messages: make([]*model.Message, 0),
	}
}

// Create はメッセージを末尾に追加する。
func (r *MemoryMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, cloneMessage(msg))
	return nil
}

// List は全件を投稿順に返す。
func (r *MemoryMessageRepo) List(ctx context.Context) ([]*model.Message, error) {
	return r.filter(func(*model.Message) bool { return true }), nil
}

// ListByJobID は指定ジョブのメッセージを投稿順に返す。
func (r *MemoryMessageRepo) ListByJobID(ctx context.Context, jobID int64) ([]*model.Message, error) {
	return r.filter(func(m *model.Message) bool { return m.JobID == jobID }), nil
}

func (r *MemoryMessageRepo) filter(keep func(*model.Message) bool) []*model.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Message, 0, len(r.messages))
	for _, msg := range r.messages {
		if keep(msg) {
			out = append(out, cloneMessage(msg))
		}
	}
	return out
}

// compile-time interface check
var _ MessageRepository = (*MemoryMessageRepo)(nil)
