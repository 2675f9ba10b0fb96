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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It wraps the connection in the generated query builder.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Email.Eq(email)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// List returns all users ordered by join date.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	userModels, err := repo.q.UserModel.WithContext(ctx).
		Order(repo.q.UserModel.DateJoined.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = model.NewID()
	}
	if user.DateJoined.IsZero() {
		user.DateJoined = time.Now().UTC()
	}
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update persists the editable profile fields of the user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	u := repo.q.UserModel
	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(user.ID)).
		Select(u.FirstName, u.LastName, u.MiddleName, u.Phone, u.Gender, u.Birthday, u.Address, u.Avatar, u.IsActive, u.UpdatedAt).
		Updates(&model.UserModel{
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			MiddleName: user.MiddleName,
			Phone:      user.Phone,
			Gender:     string(user.Gender),
			Birthday:   user.Birthday,
			Address:    user.Address,
			Avatar:     user.Avatar,
			IsActive:   user.IsActive,
			UpdatedAt:  time.Now().UTC(),
		})

	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePhone
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		MiddleName:   data.MiddleName,
		Phone:        data.Phone,
		Gender:       entity.Gender(data.Gender),
		Birthday:     data.Birthday,
		Address:      data.Address,
		Avatar:       data.Avatar,
		IsStaff:      data.IsStaff,
		IsActive:     data.IsActive,
		DateJoined:   data.DateJoined,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		MiddleName:   data.MiddleName,
		Phone:        data.Phone,
		Gender:       string(data.Gender),
		Birthday:     data.Birthday,
		Address:      data.Address,
		Avatar:       data.Avatar,
		IsStaff:      data.IsStaff,
		IsActive:     data.IsActive,
		DateJoined:   data.DateJoined,
		UpdatedAt:    data.UpdatedAt,
	}
}
