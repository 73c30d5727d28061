package storage

import (
	"bytes"
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"mime"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	minioStorageInstance contracts.StorageService
	onceMinioStorage     sync.Once
)

type minioStorage struct {
	MinioClient    *minio.Client
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.StorageService {
	onceMinioStorage.Do(func() {
		instance := &minioStorage{
			MinioClient:    minioClient,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		minioStorageInstance = instance
	})
	return minioStorageInstance
}

// UploadProfilePicture stores the image under a per-user object name and
// returns the public URL. Re-uploading overwrites the previous picture.
func (m *minioStorage) UploadProfilePicture(ctx context.Context, userID string, data []byte, extension string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	bucketName := m.InternalConfig.Minio.BucketName
	objectName := fmt.Sprintf("profile-pictures/%s%s", userID, extension)

	m.Log.Info("minioStorage.UploadProfilePicture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	contentType := mime.TypeByExtension(extension)
	if contentType == "" {
		errContentType := fmt.Errorf("unknown content type for extension %s", extension)
		return "", exceptions.ErrMinioCreateObject(errContentType, bucketName)
	}

	uploadCtx, cancel := context.WithTimeout(ctx, time.Duration(m.InternalConfig.Minio.ProfilePictureUploadTimeoutInSeconds)*time.Second)
	defer cancel()

	_, err := m.MinioClient.PutObject(
		uploadCtx,
		bucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		m.Log.Error("minioStorage.UploadProfilePicture error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	publicURL := fmt.Sprintf("%s/%s/%s", m.InternalConfig.Minio.PublicBaseUrl, bucketName, objectName)
	m.Log.Info("minioStorage.UploadProfilePicture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return publicURL, nil
}
