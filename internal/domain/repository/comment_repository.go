// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lifelink/internal/domain/entity"
)

// CommentRepository defines the operations on the append-only donor
// comment feed.
type CommentRepository interface {
	// Create persists a new comment with a server-assigned timestamp and
	// returns its ID.
	Create(ctx context.Context, comment *entity.DonorComment) (string, error)

	// ListRecent retrieves up to limit comments, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.DonorComment, error)
}
