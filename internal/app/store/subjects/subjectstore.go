// internal/app/store/subjects/subjectstore.go
package subjectstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Elikson/fucapi-backend/internal/app/system/htmlsanitize"
	"github.com/Elikson/fucapi-backend/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the disciplinas map nested inside school documents.
//
// Unlike top-level records, a subject's id IS its storage key: entries are
// addressed by the dotted path disciplinas.<id>, so reads are direct key
// lookups rather than field matches.
type Store struct {
	c *mongo.Collection
}

var (
	ErrSchoolNotFound  = errors.New("school record not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrTeacherRequired = errors.New("professorId is required")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("schoolData")}
}

// schoolSubjects is the projection target for disciplinas reads.
type schoolSubjects struct {
	Subjects map[string]models.Subject `bson:"disciplinas"`
}

// List returns every subject under the given school. A missing school (or a
// school with no disciplinas node) yields an empty slice, not an error —
// absence is only an error for single-subject lookups.
func (s *Store) List(ctx context.Context, schoolID string) ([]models.Subject, error) {
	oid, err := primitive.ObjectIDFromHex(schoolID)
	if err != nil {
		return []models.Subject{}, nil
	}

	var doc schoolSubjects
	opts := options.FindOne().SetProjection(bson.M{"disciplinas": 1})
	err = s.c.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []models.Subject{}, nil
	}
	if err != nil {
		return nil, err
	}

	return Sorted(doc.Subjects), nil
}

// Create validates the teacher reference, generates a key for the subject,
// fills display defaults, stamps createdAt, and writes the entry under
// disciplinas.<id>. The fully materialized subject is returned.
func (s *Store) Create(ctx context.Context, schoolID string, subject models.Subject) (models.Subject, error) {
	if subject.TeacherID == "" {
		return models.Subject{}, ErrTeacherRequired
	}

	oid, err := primitive.ObjectIDFromHex(schoolID)
	if err != nil {
		return models.Subject{}, ErrSchoolNotFound
	}

	subject.ID = uuid.NewString()
	subject.Notice = htmlsanitize.Sanitize(subject.Notice)
	if subject.Schedule == nil {
		subject.Schedule = []models.ScheduleSlot{}
	}
	subject.CreatedAt = time.Now().UTC()

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"disciplinas." + subject.ID: subject}})
	if err != nil {
		return models.Subject{}, err
	}
	if res.MatchedCount == 0 {
		return models.Subject{}, ErrSchoolNotFound
	}
	return subject, nil
}

// GetByID loads one subject by its key within the school's disciplinas map.
func (s *Store) GetByID(ctx context.Context, schoolID, subjectID string) (models.Subject, error) {
	oid, err := primitive.ObjectIDFromHex(schoolID)
	if err != nil {
		return models.Subject{}, ErrSubjectNotFound
	}

	var doc schoolSubjects
	opts := options.FindOne().SetProjection(bson.M{"disciplinas." + subjectID: 1})
	err = s.c.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Subject{}, ErrSubjectNotFound
	}
	if err != nil {
		return models.Subject{}, err
	}

	subject, ok := doc.Subjects[subjectID]
	if !ok {
		return models.Subject{}, ErrSubjectNotFound
	}
	return subject, nil
}

// Update checks the subject exists first, then shallow-merges the given
// fields into its entry. The existence check and the write are separate
// store calls, so the pair is not atomic.
func (s *Store) Update(ctx context.Context, schoolID, subjectID string, fields bson.M) error {
	if _, err := s.GetByID(ctx, schoolID, subjectID); err != nil {
		return err
	}

	oid, _ := primitive.ObjectIDFromHex(schoolID)
	set := bson.M{}
	for k, v := range fields {
		if k == "aviso" {
			if notice, ok := v.(string); ok {
				v = htmlsanitize.Sanitize(notice)
			}
		}
		set["disciplinas."+subjectID+"."+k] = v
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	return err
}

// Delete checks the subject exists first, then unsets its entry.
func (s *Store) Delete(ctx context.Context, schoolID, subjectID string) error {
	if _, err := s.GetByID(ctx, schoolID, subjectID); err != nil {
		return err
	}

	oid, _ := primitive.ObjectIDFromHex(schoolID)
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$unset": bson.M{"disciplinas." + subjectID: ""}})
	return err
}

// Sorted flattens a disciplinas map in sorted-key order so list and
// resolution output is deterministic across reads. Go maps carry no
// insertion order, so this is the stable analogue of a snapshot walk.
func Sorted(m map[string]models.Subject) []models.Subject {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	subjects := make([]models.Subject, 0, len(keys))
	for _, k := range keys {
		subjects = append(subjects, m[k])
	}
	return subjects
}
