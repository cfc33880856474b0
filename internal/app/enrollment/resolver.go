// internal/app/enrollment/resolver.go

// Package enrollment resolves which subjects a user attends, bridging the
// two enrollment schemas that coexist in the data: the legacy flat list of
// subject names stored on the user, and the current list of subject ids
// that must be cross-referenced against every school's disciplinas map.
package enrollment

import (
	"context"
	"encoding/json"

	schoolstore "github.com/Elikson/fucapi-backend/internal/app/store/schools"
	subjectstore "github.com/Elikson/fucapi-backend/internal/app/store/subjects"
	userstore "github.com/Elikson/fucapi-backend/internal/app/store/users"
	"github.com/Elikson/fucapi-backend/internal/domain/models"
	"go.uber.org/zap"
)

// ErrUserNotFound is returned when the user id resolves to no record.
var ErrUserNotFound = userstore.ErrUserNotFound

// Materias is the resolver outcome. Exactly one of the two slices is
// populated: Legacy carries opaque subject names taken verbatim from the
// user record, Subjects carries resolved subjects enriched with the owning
// school's id. Making the variant explicit keeps the precedence rule a
// property of the type instead of scattered field checks.
type Materias struct {
	Legacy   []string
	Subjects []models.SchoolSubject
}

// MarshalJSON reproduces the wire shape clients expect: a plain string array
// on the legacy path, an object array otherwise, and [] when nothing matched.
func (m Materias) MarshalJSON() ([]byte, error) {
	if len(m.Legacy) > 0 {
		return json.Marshal(m.Legacy)
	}
	if m.Subjects == nil {
		return json.Marshal([]models.SchoolSubject{})
	}
	return json.Marshal(m.Subjects)
}

// Resolver cross-references user enrollment against the school records.
type Resolver struct {
	users   *userstore.Store
	schools *schoolstore.Store
	log     *zap.Logger
}

func New(users *userstore.Store, schools *schoolstore.Store, logger *zap.Logger) *Resolver {
	return &Resolver{users: users, schools: schools, log: logger}
}

// Resolve produces the subject list for a user, in priority order:
//
//  1. Unknown user id → ErrUserNotFound.
//  2. A non-empty legacy materias list is returned verbatim. It always wins;
//     classIds is ignored entirely while it is populated.
//  3. Otherwise the effective id set is classIds, falling back to the
//     singular classId on pre-migration records, falling back to empty.
//     An empty set resolves to an empty list, not an error.
//  4. Every school's disciplinas map is scanned and each subject whose id is
//     in the set is emitted with the owning school's id attached. Subject
//     ids are only unique per school, so one id can match in several
//     schools and every match is kept — no dedup. No match is not an error.
//
// The full scan trades efficiency for schema flexibility: subject ids are
// not globally indexed. Cost grows linearly with the school/subject count,
// which is acceptable at this fleet size.
func (r *Resolver) Resolve(ctx context.Context, userID string) (Materias, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return Materias{}, err
	}

	if len(user.Materias) > 0 {
		return Materias{Legacy: user.Materias}, nil
	}

	classIDs := user.ClassIDs
	if len(classIDs) == 0 && user.ClassID != "" {
		classIDs = []string{user.ClassID}
	}
	if len(classIDs) == 0 {
		return Materias{Subjects: []models.SchoolSubject{}}, nil
	}

	schools, err := r.schools.List(ctx)
	if err != nil {
		return Materias{}, err
	}

	wanted := make(map[string]bool, len(classIDs))
	for _, id := range classIDs {
		wanted[id] = true
	}

	matched := []models.SchoolSubject{}
	for _, school := range schools {
		for _, subject := range subjectstore.Sorted(school.Subjects) {
			if wanted[subject.ID] {
				matched = append(matched, models.SchoolSubject{
					Subject:  subject,
					SchoolID: school.ID,
				})
			}
		}
	}

	r.log.Debug("resolved enrollment",
		zap.String("user_id", userID),
		zap.Int("class_ids", len(classIDs)),
		zap.Int("matched", len(matched)))

	return Materias{Subjects: matched}, nil
}
