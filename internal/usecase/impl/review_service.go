package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	authorizer  *policy.Authorizer
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	Authorizer  *policy.Authorizer
	Logger      *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		authorizer:  params.Authorizer,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reviewService) ListReviews(ctx context.Context, principal *entity.Principal, productID *uuid.UUID) ([]*entity.Review, error) {
	if err := srv.authorizer.Check(policy.ResourceReview, policy.ActionList, principal); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.List(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) GetReview(ctx context.Context, principal *entity.Principal, id uuid.UUID) (*entity.Review, error) {
	if err := srv.authorizer.Check(policy.ResourceReview, policy.ActionRetrieve, principal); err != nil {
		return nil, err
	}

	return srv.find(ctx, id)
}

func (srv *reviewService) CreateReview(ctx context.Context, principal *entity.Principal, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := srv.authorizer.Check(policy.ResourceReview, policy.ActionCreate, principal); err != nil {
		return nil, err
	}
	if !entity.ValidGrade(input.Grade) {
		return nil, domainerrors.ErrInvalidGrade
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrUnknownProduct
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	review := &entity.Review{
		ProductID:  input.ProductID,
		CustomerID: principal.UserID,
		Grade:      input.Grade,
		Comment:    input.Comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrUnknownProduct
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created", slog.String("review_id", review.ID.String()), slog.String("product_id", review.ProductID.String()))

	return review, nil
}

func (srv *reviewService) UpdateReview(ctx context.Context, principal *entity.Principal, id uuid.UUID, patch *usecase.ReviewPatch) (*entity.Review, error) {
	if err := srv.authorizer.Check(policy.ResourceReview, policy.ActionUpdate, principal); err != nil {
		return nil, err
	}

	review, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.authorizer.CheckObject(policy.ResourceReview, policy.ActionUpdate, principal, policy.Owned(review.CustomerID)); err != nil {
		return nil, err
	}

	if patch.Grade != nil {
		if !entity.ValidGrade(patch.Grade) {
			return nil, domainerrors.ErrInvalidGrade
		}
		review.Grade = patch.Grade
	}
	if patch.Comment != nil {
		review.Comment = *patch.Comment
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

func (srv *reviewService) DeleteReview(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := srv.authorizer.Check(policy.ResourceReview, policy.ActionDestroy, principal); err != nil {
		return err
	}

	review, err := srv.find(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.authorizer.CheckObject(policy.ResourceReview, policy.ActionDestroy, principal, policy.Owned(review.CustomerID)); err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, review.ID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

func (srv *reviewService) find(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}
