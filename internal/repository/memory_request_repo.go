package repository

import (
	"context"
	"sync"

	"github.com/hitoshi/portal/internal/model"
)

// MemoryRequestRepo はメモリ上でサービス依頼を保持するリポジトリ。
// IDの払い出しと追加は同一のロック内で行うため、登録順とID順は一致する。
type MemoryRequestRepo struct {
	mu       sync.RWMutex
	requests []*model.ServiceRequest
	lastID   int64
}

// NewMemoryRequestRepo はMemoryRequestRepoを生成する。
func NewMemoryRequestRepo() *MemoryRequestRepo {
	return &MemoryRequestRepo{
		requests: make([]*model.ServiceRequest, 0),
		lastID:   FirstRequestID - 1,
	}
}

// Create はサービス依頼を追加し、払い出したIDをreq.IDに設定する。
func (r *MemoryRequestRepo) Create(ctx context.Context, req *model.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	req.ID = r.lastID
	r.requests = append(r.requests, cloneRequest(req))
	return nil
}

// List は全件を登録順に返す。
func (r *MemoryRequestRepo) List(ctx context.Context) ([]*model.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.ServiceRequest, len(r.requests))
	for i, req := range r.requests {
		out[i] = cloneRequest(req)
	}
	return out, nil
}

// Count は登録件数を返す。
func (r *MemoryRequestRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.requests), nil
}

// compile-time interface check
var _ RequestRepository = (*MemoryRequestRepo)(nil)
