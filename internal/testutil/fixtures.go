package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Elikson/fucapi-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data directly in the
// backing collections, bypassing the stores.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateSchool inserts a school record with the given name and subjects,
// id stamped from the storage key the way the store does it.
func (f *Fixtures) CreateSchool(ctx context.Context, name string, subjects map[string]models.Subject) models.School {
	f.t.Helper()

	school := models.School{
		StorageID: primitive.NewObjectID(),
		Name:      name,
		Subjects:  subjects,
		CreatedAt: time.Now().UTC(),
	}
	school.ID = school.StorageID.Hex()

	if _, err := f.db.Collection("schoolData").InsertOne(ctx, school); err != nil {
		f.t.Fatalf("failed to create test school: %v", err)
	}
	return school
}

// Subject builds a subject value with the given id, name, and teacher.
func (f *Fixtures) Subject(id, name, teacherID string) models.Subject {
	f.t.Helper()
	return models.Subject{
		ID:        id,
		Name:      name,
		TeacherID: teacherID,
		Schedule:  []models.ScheduleSlot{},
		CreatedAt: time.Now().UTC(),
	}
}

// CreateUser inserts a user record with the given enrollment fields set.
func (f *Fixtures) CreateUser(ctx context.Context, email string, classIDs, materias []string) models.User {
	f.t.Helper()

	user := models.User{
		StorageID: primitive.NewObjectID(),
		Name:      "Test User",
		Email:     email,
		Type:      "student",
		ClassIDs:  classIDs,
		Materias:  materias,
		CreatedAt: time.Now().UTC(),
	}
	user.ID = user.StorageID.Hex()

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateLegacyUser inserts a user that still carries the singular classId
// field, as pre-migration records do.
func (f *Fixtures) CreateLegacyUser(ctx context.Context, email, classID string) models.User {
	f.t.Helper()

	oid := primitive.NewObjectID()
	doc := bson.M{
		"_id":       oid,
		"id":        oid.Hex(),
		"name":      "Legacy User",
		"email":     email,
		"type":      "student",
		"classId":   classID,
		"createdAt": time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create legacy test user: %v", err)
	}
	return models.User{StorageID: oid, ID: oid.Hex(), Email: email, ClassID: classID}
}
