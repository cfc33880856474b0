// internal/domain/models/school.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// School is a top-level record in the schoolData collection. The store key
// (_id) is duplicated into the ID field at creation time, and lookups by the
// public id go through that field rather than the key.
//
// Subjects are owned exclusively by their school: the Subjects map is keyed
// by subject id and deleting the school removes them with it.
type School struct {
	StorageID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	ID         string             `bson:"id" json:"id"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	CourseList []Course           `bson:"courseList,omitempty" json:"courseList,omitempty"`
	Subjects   map[string]Subject `bson:"disciplinas,omitempty" json:"disciplinas,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Course is embedded in a School record. It has no lifecycle of its own;
// it is written and read as part of its school document.
type Course struct {
	ID        string         `bson:"id,omitempty" json:"id,omitempty"`
	Name      string         `bson:"name" json:"name"`
	Students  []Student      `bson:"students" json:"students"`
	ClassList []ClassSection `bson:"classList,omitempty" json:"classList,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// ClassSection is a named section within a course.
type ClassSection struct {
	ID       string         `bson:"id,omitempty" json:"id,omitempty"`
	Name     string         `bson:"name,omitempty" json:"name,omitempty"`
	Class    string         `bson:"class" json:"class"`
	Schedule []ScheduleSlot `bson:"times" json:"times"`
}

// Student is an embedded course roster entry.
type Student struct {
	Name       string `bson:"name" json:"name"`
	Birthdate  string `bson:"birthdate" json:"birthdate"`
	RegisterID string `bson:"registerId" json:"registerId"`
	Document   string `bson:"document" json:"document"`
	Status     string `bson:"status" json:"status"` // "active" | "inactive"
}
