// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents professors and students. Like School, the store key is
// duplicated into ID at creation; the public surface addresses users by
// email, and only the enrollment resolver fetches them by key.
//
// Enrollment is represented two ways, a leftover of a schema migration:
//
//   - Materias: the legacy shape, a flat list of free-text subject names
//     stored directly on the user. Opaque; never resolved against a school.
//   - ClassIDs: the current shape, subject ids that must be cross-referenced
//     against the schools' disciplinas maps at query time.
//
// When both are present the legacy list wins outright. The singular ClassID
// is an even older remnant accepted on input and read from pre-migration
// records, but creation normalizes it into ClassIDs and never persists it.
type User struct {
	StorageID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	ID                    string    `bson:"id,omitempty" json:"id,omitempty"`
	Name                  string    `bson:"name" json:"name"`
	Email                 string    `bson:"email" json:"email"`
	Birthdate             string    `bson:"birthdate" json:"birthdate"`
	Password              string    `bson:"password,omitempty" json:"password,omitempty"`
	Phone                 string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CpfCnpj               string    `bson:"cpfCnpj,omitempty" json:"cpfCnpj,omitempty"`
	PostalCode            string    `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	City                  string    `bson:"city,omitempty" json:"city,omitempty"`
	Address               string    `bson:"address,omitempty" json:"address,omitempty"`
	AddressNumber         string    `bson:"addressNumber,omitempty" json:"addressNumber,omitempty"`
	Complement            string    `bson:"complement,omitempty" json:"complement,omitempty"`
	Province              string    `bson:"province,omitempty" json:"province,omitempty"`
	State                 string    `bson:"state,omitempty" json:"state,omitempty"`
	Gender                string    `bson:"gender,omitempty" json:"gender,omitempty"`
	NotificationDisabled  bool      `bson:"notificationDisabled" json:"notificationDisabled"`
	PendingUpdatePassword bool      `bson:"pendingUpdatePassword,omitempty" json:"pendingUpdatePassword,omitempty"`
	Type                  string    `bson:"type" json:"type"` // "professor" | "student"
	SchoolData            *School   `bson:"schoolData,omitempty" json:"schoolData,omitempty"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`

	ClassIDs []string `bson:"classIds" json:"classIds"`
	ClassID  string   `bson:"classId,omitempty" json:"classId,omitempty"` // legacy singular; cleared before insert
	Materias []string `bson:"materias,omitempty" json:"materias,omitempty"`
}
