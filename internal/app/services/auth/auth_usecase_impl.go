package auth

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	userMongoRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository: userMongoRepository,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Check if email already exists
	existingUser, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return "", err
	}
	if existingUser != nil {
		return "", exceptions.ErrEmailAlreadyExist(nil)
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", exceptions.ErrHashPassword(err)
	}

	// Build the user model
	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
	}

	// Create user
	createdUser, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateJWT(createdUser.ID, uc.InternalConfig.JWT.Secret, time.Duration(uc.InternalConfig.JWT.ExpTimeInHour)*time.Hour)
	if err != nil {
		return "", err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, createdUser.ID),
	)
	return token, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Get user by email
	user, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", exceptions.ErrUserNotExist(nil)
	}

	// Check password
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return "", exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GenerateJWT(user.ID, uc.InternalConfig.JWT.Secret, time.Duration(uc.InternalConfig.JWT.ExpTimeInHour)*time.Hour)
	if err != nil {
		return "", err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return token, nil
}
