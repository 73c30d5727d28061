package users

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users   map[string]*models.User
	updates []*models.ProfileUpdate
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) UpdateProfile(ctx context.Context, userID string, profile *models.ProfileUpdate) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	f.updates = append(f.updates, profile)
	user.Name = profile.Name
	user.Phone = profile.Phone
	user.Address = profile.Address
	user.DOB = profile.DOB
	user.Gender = profile.Gender
	if profile.ImageURL != "" {
		user.ImageURL = profile.ImageURL
	}
	return user, nil
}

type fakeStorageService struct {
	uploads int
}

func (f *fakeStorageService) UploadProfilePicture(ctx context.Context, userID string, data []byte, extension string) (string, error) {
	f.uploads++
	return "http://storage.local/profile-pictures/" + userID + extension, nil
}

func newTestUserUsecase() (*userUsecase, *fakeUserRepository, *fakeStorageService) {
	repo := &fakeUserRepository{users: map[string]*models.User{
		"user-1": {ID: "user-1", Name: "Jane Doe", Email: "jane@example.com", Password: "hash"},
	}}
	storage := &fakeStorageService{}
	uc := &userUsecase{
		UserRepository: repo,
		StorageService: storage,
		Log:            zap.NewNop(),
	}
	return uc, repo, storage
}

func TestGetProfile(t *testing.T) {
	t.Run("Returns Profile Without Password", func(t *testing.T) {
		uc, _, _ := newTestUserUsecase()

		user, err := uc.GetProfile(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", user.Name)
		assert.Empty(t, user.Password, "credential hash must never leave the usecase")
	})

	t.Run("Unknown User Rejected", func(t *testing.T) {
		uc, _, _ := newTestUserUsecase()

		_, err := uc.GetProfile(context.Background(), "user-404")
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientUserNotExist, customErr.ClientMessage)
	})
}

func TestUpdateProfile(t *testing.T) {
	baseRequest := func() *requests.UpdateProfile {
		return &requests.UpdateProfile{
			Name:    "Jane Q. Doe",
			Phone:   "555-0100",
			Address: `{"line1":"1 Main St","line2":"Floor 2"}`,
			DOB:     "1990-01-01",
			Gender:  constvars.GenderFemale,
		}
	}

	t.Run("Single Update Call With All Fields", func(t *testing.T) {
		uc, repo, _ := newTestUserUsecase()

		err := uc.UpdateProfile(context.Background(), "user-1", baseRequest())

		assert.NoError(t, err)
		assert.Len(t, repo.updates, 1, "profile must be written in one repository call")
		assert.Equal(t, "Jane Q. Doe", repo.users["user-1"].Name)
		assert.Equal(t, "1 Main St", repo.users["user-1"].Address.Line1)
		assert.Equal(t, "Floor 2", repo.users["user-1"].Address.Line2)
	})

	t.Run("Image Uploaded Before Profile Write", func(t *testing.T) {
		uc, repo, storage := newTestUserUsecase()

		request := baseRequest()
		request.ImageData = []byte{0xFF, 0xD8, 0xFF}
		request.ImageExtension = ".jpg"

		err := uc.UpdateProfile(context.Background(), "user-1", request)

		assert.NoError(t, err)
		assert.Equal(t, 1, storage.uploads)
		assert.Equal(t, "http://storage.local/profile-pictures/user-1.jpg", repo.users["user-1"].ImageURL)
	})

	t.Run("No Image Leaves Existing Picture", func(t *testing.T) {
		uc, repo, storage := newTestUserUsecase()
		repo.users["user-1"].ImageURL = "http://storage.local/profile-pictures/old.png"

		err := uc.UpdateProfile(context.Background(), "user-1", baseRequest())

		assert.NoError(t, err)
		assert.Equal(t, 0, storage.uploads)
		assert.Equal(t, "http://storage.local/profile-pictures/old.png", repo.users["user-1"].ImageURL)
	})

	t.Run("Malformed Address Rejected", func(t *testing.T) {
		uc, repo, _ := newTestUserUsecase()

		request := baseRequest()
		request.Address = "{not json"

		err := uc.UpdateProfile(context.Background(), "user-1", request)
		assert.Error(t, err)
		assert.Empty(t, repo.updates, "nothing may be written for a malformed address")
	})

	t.Run("Unknown User Rejected", func(t *testing.T) {
		uc, _, storage := newTestUserUsecase()

		err := uc.UpdateProfile(context.Background(), "user-404", baseRequest())
		assert.Error(t, err)
		assert.Equal(t, 0, storage.uploads)
	})
}
