package impl

import (
	"context"
	"testing"

	"lifelink/internal/domain/entity"
	domainerrors "lifelink/internal/domain/errors"
	mockRepo "lifelink/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommentService_PostComment(t *testing.T) {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	svc := NewCommentService(commentRepo)

	ctx := context.Background()

	commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DonorComment")).
		Run(func(args mock.Arguments) {
			comment := args.Get(1).(*entity.DonorComment)
			assert.Equal(t, "donor-1", comment.DonorID)
			assert.Equal(t, "Alex", comment.DonorName)
			assert.Equal(t, "Donating felt great", comment.Comment)
		}).
		Return("comment-1", nil)

	comment, err := svc.PostComment(ctx, newDonor(), "  Donating felt great  ")
	require.NoError(t, err)
	assert.Equal(t, "comment-1", comment.ID)
}

func TestCommentService_PostComment_EmptyText(t *testing.T) {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	svc := NewCommentService(commentRepo)

	_, err := svc.PostComment(context.Background(), newDonor(), "   ")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCommentService_ListComments_DefaultLimit(t *testing.T) {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	svc := NewCommentService(commentRepo)

	ctx := context.Background()

	commentRepo.EXPECT().ListRecent(ctx, defaultCommentLimit).Return([]*entity.DonorComment{
		{ID: "c1"}, {ID: "c2"},
	}, nil)

	comments, err := svc.ListComments(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestCommentService_ListComments_BackendFailure(t *testing.T) {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	svc := NewCommentService(commentRepo)

	ctx := context.Background()

	commentRepo.EXPECT().ListRecent(ctx, 10).Return(nil, assert.AnError)

	_, err := svc.ListComments(ctx, 10)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BACKEND_ERROR", appErr.ErrorCode())
}
