// internal/app/store/schools/schoolstore.go
package schoolstore

import (
	"context"
	"errors"
	"time"

	"github.com/Elikson/fucapi-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides CRUD over the schoolData collection.
type Store struct {
	c *mongo.Collection
}

var ErrSchoolNotFound = errors.New("school record not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("schoolData")}
}

// Create stamps the generated key into the record's id field along with
// createdAt, then inserts it. Both are immutable from the caller's side
// after this point.
func (s *Store) Create(ctx context.Context, school models.School) (models.School, error) {
	school.StorageID = primitive.NewObjectID()
	school.ID = school.StorageID.Hex()
	school.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, school); err != nil {
		return models.School{}, err
	}
	return school, nil
}

// List returns every school record in storage order, unfiltered.
func (s *Store) List(ctx context.Context) ([]models.School, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var schools []models.School
	if err := cur.All(ctx, &schools); err != nil {
		return nil, err
	}
	for i := range schools {
		schools[i].ID = schools[i].StorageID.Hex()
	}
	return schools, nil
}

// GetByID resolves a school by matching the embedded id field, not by key
// lookup. The public id and the storage key are written as equal at create
// time, but the field match mirrors how reads have always worked upstream:
// if two records somehow carry the same id, only the first match is visible.
func (s *Store) GetByID(ctx context.Context, id string) (models.School, error) {
	var school models.School
	err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&school)
	if err == mongo.ErrNoDocuments {
		return models.School{}, ErrSchoolNotFound
	}
	if err != nil {
		return models.School{}, err
	}
	school.ID = school.StorageID.Hex()
	return school, nil
}

// Update resolves the storage key through GetByID, then shallow-merges the
// given fields into the document. The resolve-then-write pair is not atomic;
// a concurrent delete turns this into a silent no-op.
func (s *Store) Update(ctx context.Context, id string, fields bson.M) error {
	school, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.c.UpdateByID(ctx, school.StorageID, bson.M{"$set": fields})
	return err
}

// Delete resolves the storage key through GetByID, then removes the document
// and every subject nested inside it.
func (s *Store) Delete(ctx context.Context, id string) error {
	school, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.c.DeleteOne(ctx, bson.M{"_id": school.StorageID})
	return err
}
