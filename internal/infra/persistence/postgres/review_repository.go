package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	q *query.Query
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{q: query.Use(db)}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == uuid.Nil {
		review.ID = model.NewID()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	if err := repo.q.ReviewModel.WithContext(ctx).Create(fromReviewDomain(review)); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

// FindByID retrieves a review by its ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	reviewM, err := repo.q.ReviewModel.WithContext(ctx).Where(repo.q.ReviewModel.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(reviewM), nil
}

// List returns reviews, newest first.
func (repo *reviewRepository) List(ctx context.Context, productID *uuid.UUID) ([]*entity.Review, error) {
	r := repo.q.ReviewModel
	do := r.WithContext(ctx)
	if productID != nil {
		do = do.Where(r.ProductID.Eq(*productID))
	}

	reviewModels, err := do.Order(r.CreatedAt.Desc(), r.ID.Desc()).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Update persists grade and comment. Product and author are fixed.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	r := repo.q.ReviewModel
	result, err := r.WithContext(ctx).
		Where(r.ID.Eq(review.ID)).
		Select(r.Grade, r.Comment).
		Updates(fromReviewDomain(review))

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.ReviewModel.WithContext(ctx).Where(repo.q.ReviewModel.ID.Eq(id)).Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// DeleteByProduct removes every review of a product.
func (repo *reviewRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := repo.q.ReviewModel.WithContext(ctx).
		Where(repo.q.ReviewModel.ProductID.Eq(productID)).
		Delete(); err != nil {
		return errors.Wrap(err, "failed to delete reviews of product")
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		ProductID:  data.ProductID,
		CustomerID: data.CustomerID,
		Grade:      data.Grade,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		CustomerID: data.CustomerID,
		Grade:      data.Grade,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
	}
}
