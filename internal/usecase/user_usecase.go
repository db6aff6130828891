package usecase

import (
	"context"
	"errors"

	"clinic-manager/internal/converter"
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"
	"clinic-manager/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("role must be practitioner or secretary")
)

type UserUsecase interface {
	RegisterUser(ctx context.Context, actorID *int64, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	ListPractitioners(ctx context.Context) ([]dto.PractitionerSummary, error)
}

type userUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	auditService      service.AuditService
	practitionerCache *service.PractitionerCache
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	practitionerCache *service.PractitionerCache,
) UserUsecase {
	return &userUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		auditService:      auditService,
		practitionerCache: practitionerCache,
	}
}

func (u *userUsecase) RegisterUser(ctx context.Context, actorID *int64, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(entity.UserRole(req.Role)) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         entity.UserRole(req.Role),
		Specialty:    req.Specialty,
		Phone:        req.Phone,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actorID, entity.AuditActionUserRegister,
		"user", user.ID, map[string]interface{}{"email": user.Email, "role": req.Role}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// A new practitioner must show up in the directory immediately.
	u.practitionerCache.Invalidate(ctx)

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) ListPractitioners(ctx context.Context) ([]dto.PractitionerSummary, error) {
	if summaries, err := u.practitionerCache.Get(ctx); err == nil {
		return summaries, nil
	}

	practitioners, err := u.userRepo.FindPractitioners(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list practitioners: %+v", err)
		return nil, err
	}

	summaries := converter.UsersToPractitionerSummaries(practitioners)
	u.practitionerCache.Set(ctx, summaries)
	return summaries, nil
}
