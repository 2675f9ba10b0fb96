package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput defines a new review.
type ReviewInput struct {
	ProductID uuid.UUID
	Grade     *int
	Comment   string
}

// ReviewPatch carries the review fields to change.
type ReviewPatch struct {
	Grade   *int
	Comment *string
}

// ReviewUsecase manages product reviews.
type ReviewUsecase interface {
	// ListReviews returns all reviews, or the reviews of one product when productID is set.
	ListReviews(ctx context.Context, principal *entity.Principal, productID *uuid.UUID) ([]*entity.Review, error)
	GetReview(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Review, error)
	CreateReview(ctx context.Context, principal *entity.Principal, input *ReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *ReviewPatch) (*entity.Review, error)
	DeleteReview(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
}
