package firestore

import (
	"context"
	"time"

	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// commentDoc is the Firestore document shape of a donor comment.
type commentDoc struct {
	DonorID   string    `firestore:"donorId"`
	DonorName string    `firestore:"donorName"`
	Comment   string    `firestore:"comment"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

type commentRepository struct {
	client *fs.Client
}

// NewCommentRepository creates a Firestore-backed CommentRepository.
func NewCommentRepository(client *fs.Client) repository.CommentRepository {
	return &commentRepository{client: client}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.DonorComment) (string, error) {
	ref := r.client.Collection(collComments).NewDoc()
	doc := &commentDoc{
		DonorID:   comment.DonorID,
		DonorName: comment.DonorName,
		Comment:   comment.Comment,
	}

	if _, err := ref.Create(ctx, doc); err != nil {
		return "", errors.Wrap(err, "failed to create comment document")
	}

	return ref.ID, nil
}

func (r *commentRepository) ListRecent(ctx context.Context, limit int) ([]*entity.DonorComment, error) {
	iter := r.client.Collection(collComments).
		OrderBy("createdAt", fs.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var comments []*entity.DonorComment
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate comment documents")
		}

		var doc commentDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode comment document")
		}
		comments = append(comments, &entity.DonorComment{
			ID:        snap.Ref.ID,
			DonorID:   doc.DonorID,
			DonorName: doc.DonorName,
			Comment:   doc.Comment,
			CreatedAt: doc.CreatedAt,
		})
	}

	return comments, nil
}
