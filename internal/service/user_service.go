package service

import (
	"context"
	"time"

	"tg-notegraph-be/internal/apperror"
	"tg-notegraph-be/internal/dto"
	"tg-notegraph-be/internal/entity"
	"tg-notegraph-be/internal/pkg/logger"
	"tg-notegraph-be/internal/repository/specification"
	"tg-notegraph-be/internal/repository/unitofwork"
)

type IUserService interface {
	// Register creates the user and fails with DuplicateIdentity when the
	// telegram_id is already taken.
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	// Ensure is the idempotent variant used on bot first contact: it
	// returns the existing record instead of erroring.
	Ensure(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	Show(ctx context.Context, telegramId int64) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) (*dto.UserResponse, error)
	RecordLogin(ctx context.Context, telegramId int64) error
	Deactivate(ctx context.Context, telegramId int64) error
	// Delete removes the user physically; the storage engine cascades to
	// every note the user owns, and from notes to links and task metadata.
	Delete(ctx context.Context, telegramId int64) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if req.TelegramId <= 0 {
		return nil, apperror.InvalidArgument("telegram_id must be a positive integer")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user := entity.User{
		TelegramId: req.TelegramId,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		IsActive:   true,
		DateJoined: time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		if isDuplicateKey(err) {
			return nil, apperror.DuplicateIdentity("telegram_id %d already registered", req.TelegramId)
		}
		return nil, err
	}

	s.log.Info("user", "user registered", map[string]interface{}{
		"telegram_id":  user.TelegramId,
		"display_name": user.DisplayName(),
	})
	return toUserResponse(&user), nil
}

func (s *userService) Ensure(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if req.TelegramId <= 0 {
		return nil, apperror.InvalidArgument("telegram_id must be a positive integer")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByTelegramID{TelegramID: req.TelegramId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toUserResponse(existing), nil
	}

	res, err := s.Register(ctx, req)
	if err != nil && isDuplicateKeyTaxonomy(err) {
		// Lost the race against a concurrent first contact; the row exists now.
		existing, ferr := uow.UserRepository().FindOne(ctx, specification.ByTelegramID{TelegramID: req.TelegramId})
		if ferr != nil {
			return nil, ferr
		}
		return toUserResponse(existing), nil
	}
	return res, err
}

func (s *userService) Show(ctx context.Context, telegramId int64) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByTelegramID{TelegramID: telegramId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user %d", telegramId)
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByTelegramID{TelegramID: req.TelegramId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user %d", req.TelegramId)
	}

	if req.Username != nil {
		user.Username = req.Username
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) RecordLogin(ctx context.Context, telegramId int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByTelegramID{TelegramID: telegramId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user %d", telegramId)
	}

	now := time.Now()
	user.LastLogin = &now
	return uow.UserRepository().Update(ctx, user)
}

// Deactivate is the soft disable; users are never soft-deleted, only
// switched off.
func (s *userService) Deactivate(ctx context.Context, telegramId int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByTelegramID{TelegramID: telegramId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user %d", telegramId)
	}

	user.IsActive = false
	return uow.UserRepository().Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, telegramId int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByTelegramID{TelegramID: telegramId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user %d", telegramId)
	}

	if err := uow.UserRepository().Delete(ctx, telegramId); err != nil {
		return err
	}
	s.log.Warn("user", "user hard-deleted with owned notes", map[string]interface{}{"telegram_id": telegramId})
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		TelegramId:  u.TelegramId,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.DateJoined,
		LastLogin:   u.LastLogin,
	}
}
