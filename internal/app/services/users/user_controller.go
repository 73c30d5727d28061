package users

import (
	"context"
	"fmt"
	"io"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

type UserController struct {
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewUserController(userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *UserController {
	return &UserController{
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (ctrl *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := ctrl.UserUsecase.GetProfile(ctx, userID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, user)
}

func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)

	maxUploadSize := ctrl.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB << 20
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UpdateProfile{
		UserID:  r.FormValue("userId"),
		Name:    utils.SanitizeString(r.FormValue("name")),
		Phone:   utils.SanitizeString(r.FormValue("phone")),
		Address: r.FormValue("address"),
		DOB:     r.FormValue("dob"),
		Gender:  r.FormValue("gender"),
	}

	// The body may carry a user id for older clients. It must agree with
	// the token identity, it never overrides it.
	if request.UserID != "" && request.UserID != userID {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrIdentityMismatch(nil))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		extension := strings.ToLower(filepath.Ext(header.Filename))
		if !ctrl.isAllowedImageFormat(extension) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(fmt.Errorf("unsupported image extension %s", extension)))
			return
		}
		if header.Size > maxUploadSize {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(fmt.Errorf("image exceeds %dMB", ctrl.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB)))
			return
		}

		imageData, readErr := io.ReadAll(file)
		if readErr != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(readErr))
			return
		}
		request.ImageData = imageData
		request.ImageExtension = extension
	} else if err != http.ErrMissingFile {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.UserUsecase.UpdateProfile(ctx, userID, request); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UpdateProfileSuccessMessage, nil)
}

func (ctrl *UserController) isAllowedImageFormat(extension string) bool {
	for _, allowed := range constvars.ImageAllowedProfilePictureFormats {
		if extension == allowed {
			return true
		}
	}
	return false
}
