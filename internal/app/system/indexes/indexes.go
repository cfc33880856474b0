// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Problems are aggregated so every failure is visible and startup can fail
fast.

Both indexes here are deliberately NON-unique. Upstream, the backing store
indexed users.email and schoolData.id for lookup speed only; email
uniqueness is a pre-check at user creation, not a constraint. Adding a
unique index would change the duplicate-email failure mode that callers
already handle.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureSchoolData(ctx, db); err != nil {
		problems = append(problems, "schoolData: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Email lookup path for every email-addressed operation.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_users_email"),
		},
	})
}

func ensureSchoolData(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("schoolData")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// The public-id field match used by GetByID. The id always equals the
		// storage key, but reads go through this field.
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("idx_schooldata_id"),
		},
	})
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}

		start := time.Now()
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// An index with the same keys under another name is fine to reuse.
			if strings.Contains(err.Error(), "IndexOptionsConflict") {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", name))
				continue
			}
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", name),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
