package impl

import (
	"context"
	"strings"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	"lifelink/internal/domain/repository"
	"lifelink/internal/usecase"
)

// defaultCommentLimit bounds the public feed when the caller gives no limit.
const defaultCommentLimit = 50

type commentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new comment service instance
func NewCommentService(commentRepo repository.CommentRepository) usecase.CommentUsecase {
	return &commentService{commentRepo: commentRepo}
}

// PostComment appends a donor comment to the feed
func (s *commentService) PostComment(ctx context.Context, donor *entity.UserProfile, text string) (*entity.DonorComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment text must not be empty")
	}

	comment := &entity.DonorComment{
		DonorID:   donor.UID,
		DonorName: donor.Name,
		Comment:   text,
	}

	id, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to create comment")
	}
	comment.ID = id

	return comment, nil
}

// ListComments retrieves the most recent comments, newest first
func (s *commentService) ListComments(ctx context.Context, limit int) ([]*entity.DonorComment, error) {
	if limit <= 0 {
		limit = defaultCommentLimit
	}

	comments, err := s.commentRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, domainerrors.NewBackendError(err, "failed to list comments")
	}

	return comments, nil
}
