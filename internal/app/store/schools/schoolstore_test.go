package schoolstore_test

import (
	"testing"

	schoolstore "github.com/Elikson/fucapi-backend/internal/app/store/schools"
	subjectstore "github.com/Elikson/fucapi-backend/internal/app/store/subjects"
	"github.com/Elikson/fucapi-backend/internal/domain/models"
	"github.com/Elikson/fucapi-backend/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schoolstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.School{Name: "FUCAPI"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.ID != created.StorageID.Hex() {
		t.Errorf("expected ID to mirror the storage key, got %q vs %q", created.ID, created.StorageID.Hex())
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	// The record must be readable through the public id right after create.
	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID after Create failed: %v", err)
	}
	if found.Name != "FUCAPI" {
		t.Errorf("Name: got %q, want %q", found.Name, "FUCAPI")
	}
	if found.ID != created.ID {
		t.Errorf("ID: got %q, want %q", found.ID, created.ID)
	}
	if found.CreatedAt.IsZero() {
		t.Error("expected stored CreatedAt to be set")
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schoolstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, "does-not-exist"); err != schoolstore.ErrSchoolNotFound {
		t.Errorf("expected ErrSchoolNotFound, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schoolstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"Campus A", "Campus B"} {
		if _, err := store.Create(ctx, models.School{Name: name}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	schools, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(schools) != 2 {
		t.Fatalf("expected 2 schools, got %d", len(schools))
	}
	for _, s := range schools {
		if s.ID == "" {
			t.Error("expected every listed school to carry its id")
		}
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schoolstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.School{Name: "Old Name"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Update(ctx, created.ID, bson.M{"name": "New Name"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Name != "New Name" {
		t.Errorf("Name: got %q, want %q", found.Name, "New Name")
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schoolstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Update(ctx, "missing", bson.M{"name": "x"}); err != schoolstore.ErrSchoolNotFound {
		t.Errorf("expected ErrSchoolNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schoolstore.New(db)
	subjects := subjectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.School{Name: "Doomed"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := subjects.Create(ctx, created.ID, models.Subject{Name: "Math", TeacherID: "prof-1"}); err != nil {
		t.Fatalf("subject Create failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.GetByID(ctx, created.ID); err != schoolstore.ErrSchoolNotFound {
		t.Errorf("expected ErrSchoolNotFound after delete, got %v", err)
	}

	// Subjects go with the record; no dangling entries remain visible.
	remaining, err := subjects.List(ctx, created.ID)
	if err != nil {
		t.Fatalf("subject List failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no subjects after school delete, got %d", len(remaining))
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := schoolstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Delete(ctx, "missing"); err != schoolstore.ErrSchoolNotFound {
		t.Errorf("expected ErrSchoolNotFound, got %v", err)
	}
}
