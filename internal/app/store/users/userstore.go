// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/Elikson/fucapi-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Store provides email-addressed CRUD over the users collection. Only the
// enrollment resolver reaches users by key (GetByID); the public surface is
// entirely email-keyed.
type Store struct {
	c *mongo.Collection
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("user already registered")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user after a duplicate-email pre-check. Uniqueness is
// enforced only by this check, not by an index, so two racing creates can
// still both land; the first-match lookup then hides one of them for good.
//
// The enrollment shape is normalized here: a missing classIds list is derived
// from the legacy singular classId when present, otherwise defaults to empty,
// and the singular field is never persisted. The password is bcrypt-hashed
// before the record is stored.
func (s *Store) Create(ctx context.Context, user models.User) (models.User, error) {
	_, err := s.GetByEmail(ctx, user.Email)
	if err == nil {
		return models.User{}, ErrEmailRegistered
	}
	if err != ErrUserNotFound {
		return models.User{}, err
	}

	user.StorageID = primitive.NewObjectID()
	user.ID = user.StorageID.Hex()
	user.CreatedAt = time.Now().UTC()

	if user.ClassIDs == nil {
		if user.ClassID != "" {
			user.ClassIDs = []string{user.ClassID}
		} else {
			user.ClassIDs = []string{}
		}
	}
	user.ClassID = ""

	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.Password = string(hash)
	}

	if _, err := s.c.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// List returns every user record in storage order.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].ID = users[i].StorageID.Hex()
	}
	return users, nil
}

// GetByEmail is an exact-match field lookup that returns the first matching
// record with the storage key merged into its id field. If several records
// share an email, all but the first are unreachable through this path.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	user.ID = user.StorageID.Hex()
	return user, nil
}

// GetByID fetches a user directly by storage key. An unparseable id behaves
// like an absent record.
func (s *Store) GetByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	err = s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	user.ID = user.StorageID.Hex()
	return user, nil
}

// UpdateByEmail resolves the storage key through GetByEmail, then
// shallow-merges the given fields. A password in the update is hashed the
// same way Create hashes it. Resolve-then-write is not atomic.
func (s *Store) UpdateByEmail(ctx context.Context, email string, fields bson.M) error {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if pw, ok := fields["password"].(string); ok && pw != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fields["password"] = string(hash)
	}

	_, err = s.c.UpdateByID(ctx, user.StorageID, bson.M{"$set": fields})
	return err
}

// DeleteByEmail resolves the storage key through GetByEmail, then removes
// the record.
func (s *Store) DeleteByEmail(ctx context.Context, email string) error {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	_, err = s.c.DeleteOne(ctx, bson.M{"_id": user.StorageID})
	return err
}

// MarkPendingPasswordUpdate flags the user before the recovery email goes
// out, so a later password change can verify the flow was initiated.
func (s *Store) MarkPendingPasswordUpdate(ctx context.Context, email string) error {
	return s.UpdateByEmail(ctx, email, bson.M{"pendingUpdatePassword": true})
}
