package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/skillpath-backend/internal/data/repos/testutil"
	types "github.com/yungbote/skillpath-backend/internal/domain/user"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(tx, testutil.Logger(t))

	u := &types.User{
		ID:        uuid.New(),
		Email:     "repo@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "hash",
	}
	if _, err := repo.Create(ctx, nil, []*types.User{u}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	byID, err := repo.GetByIDs(ctx, nil, []uuid.UUID{u.ID})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(byID) != 1 || byID[0].Email != "repo@example.com" {
		t.Fatalf("unexpected result: %+v", byID)
	}

	byEmail, err := repo.GetByEmails(ctx, nil, []string{"repo@example.com"})
	if err != nil {
		t.Fatalf("get by emails: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].ID != u.ID {
		t.Fatalf("unexpected result: %+v", byEmail)
	}
}

func TestUserRepoEmailExists(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(tx, testutil.Logger(t))

	exists, err := repo.EmailExists(ctx, nil, "nobody@example.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if exists {
		t.Fatalf("expected email to be absent")
	}

	u := &types.User{ID: uuid.New(), Email: "taken@example.com", FirstName: "A", LastName: "B", Password: "hash"}
	if _, err := repo.Create(ctx, nil, []*types.User{u}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	exists, err = repo.EmailExists(ctx, nil, "taken@example.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected email to be present")
	}
}

func TestUserRepoEmptySlices(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(tx, testutil.Logger(t))

	if _, err := repo.Create(ctx, nil, nil); err != nil {
		t.Fatalf("create with empty slice: %v", err)
	}
	got, err := repo.GetByIDs(ctx, nil, nil)
	if err != nil {
		t.Fatalf("get with empty slice: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}
