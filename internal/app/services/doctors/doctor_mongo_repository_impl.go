package doctors

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	if _, err := primitive.ObjectIDFromHex(doctorID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

// ReserveSlot pushes slotTime onto the doctor's slot list for slotDate in a
// single conditional update. The filter only matches when the slot is still
// free, so two racing reservations cannot both modify the document.
func (r *DoctorMongoRepository) ReserveSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	slotField := fmt.Sprintf("slots_booked.%s", slotDate)
	filter := bson.M{
		"_id":     doctorID,
		slotField: bson.M{"$ne": slotTime},
	}
	update := bson.M{
		"$push": bson.M{slotField: slotTime},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.ModifiedCount == 0 {
		return exceptions.ErrSlotUnavailable(fmt.Errorf("slot %s %s already booked for doctor %s", slotDate, slotTime, doctorID))
	}
	return nil
}

func (r *DoctorMongoRepository) ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	slotField := fmt.Sprintf("slots_booked.%s", slotDate)
	filter := bson.M{"_id": doctorID}
	update := bson.M{
		"$pull": bson.M{slotField: slotTime},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
