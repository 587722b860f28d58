package usecase

import (
	"context"

	"lifelink/internal/domain/entity"
)

// CommentUsecase defines the interface for the public testimonial feed
type CommentUsecase interface {
	// PostComment appends a donor comment to the feed
	PostComment(ctx context.Context, donor *entity.UserProfile, text string) (*entity.DonorComment, error)

	// ListComments retrieves the most recent comments, newest first
	ListComments(ctx context.Context, limit int) ([]*entity.DonorComment, error)
}
