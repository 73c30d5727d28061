package users

import (
	"context"
	"log"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionUsers)

	// The lookup in the register flow is advisory only; this index is what
	// actually guarantees one account per email.
	_, err := collection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create unique email index on users collection: %s", err.Error())
	}

	return &UserMongoRepository{
		Collection: collection,
	}
}

func (r *UserMongoRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return user, nil
}

func (r *UserMongoRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

// UpdateProfile writes every profile field in one update so concurrent
// updates cannot interleave partial documents.
func (r *UserMongoRepository) UpdateProfile(ctx context.Context, userID string, profile *models.ProfileUpdate) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	setFields := bson.M{
		"name":      profile.Name,
		"phone":     profile.Phone,
		"address":   profile.Address,
		"dob":       profile.DOB,
		"gender":    profile.Gender,
		"updatedAt": time.Now(),
	}
	if profile.ImageURL != "" {
		setFields["image"] = profile.ImageURL
	}

	var updated models.User
	err := r.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": setFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &updated, nil
}
