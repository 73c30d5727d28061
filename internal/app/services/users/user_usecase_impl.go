package users

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	StorageService contracts.StorageService
	Log            *zap.Logger
}

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	storageService contracts.StorageService,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository: userMongoRepository,
			StorageService: storageService,
			Log:            logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.UserRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	snapshot := user.Snapshot()
	return &snapshot, nil
}

// UpdateProfile uploads the new picture first, then writes all profile
// fields in a single repository call.
func (uc *userUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.UserRepository.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	var address models.Address
	if request.Address != "" {
		if err := json.Unmarshal([]byte(request.Address), &address); err != nil {
			return exceptions.ErrInvalidFormat(err, "address")
		}
	}

	imageURL := ""
	if len(request.ImageData) > 0 {
		imageURL, err = uc.StorageService.UploadProfilePicture(ctx, userID, request.ImageData, request.ImageExtension)
		if err != nil {
			return err
		}
	}

	profile := &models.ProfileUpdate{
		Name:     request.Name,
		Phone:    request.Phone,
		Address:  address,
		DOB:      request.DOB,
		Gender:   request.Gender,
		ImageURL: imageURL,
	}

	updated, err := uc.UserRepository.UpdateProfile(ctx, userID, profile)
	if err != nil {
		return err
	}
	if updated == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	uc.Log.Info("userUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}
