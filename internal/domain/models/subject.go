// internal/domain/models/subject.go
package models

import "time"

// Subject is a course offering ("disciplina") scoped to one school. It lives
// in the school document's disciplinas map, keyed by its own ID, so the id
// IS the storage key within that scope and is unique only per school.
//
// The BSON/JSON field names are the legacy wire names the mobile clients
// already depend on (nome, icone, sala, classroom, aviso, professorId,
// times) and must not be renamed.
type Subject struct {
	ID        string         `bson:"id" json:"id"`
	Name      string         `bson:"nome" json:"nome"`
	Icon      string         `bson:"icone" json:"icone"`
	Room      string         `bson:"sala" json:"sala"`
	Classroom string         `bson:"classroom" json:"classroom"` // legacy room field, kept alongside sala
	Notice    string         `bson:"aviso" json:"aviso"`
	TeacherID string         `bson:"professorId" json:"professorId"`
	Schedule  []ScheduleSlot `bson:"times" json:"times"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// ScheduleSlot is a value type for one meeting time of a subject or class
// section. It has no identity.
type ScheduleSlot struct {
	DateTime  string `bson:"dateTime" json:"dateTime"`
	DayOfWeek string `bson:"dayOfWeek" json:"dayOfWeek"`
}

// SchoolSubject is a subject enriched with the id of the school it was
// resolved from. The enrollment resolver emits these when it cross-references
// a user's subject ids against every school's disciplinas map.
type SchoolSubject struct {
	Subject  `bson:",inline"`
	SchoolID string `bson:"schoolId" json:"schoolId"`
}
