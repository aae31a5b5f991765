package services

import (
	"testing"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/testutil"
)

func TestCreateClubCreatesOwnerMembership(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewClubService(db)

	club, err := service.CreateClub(42, models.CreateClubRequest{
		Name: "Harbour United",
		City: "Hamburg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if club.Slug != "harbour-united" {
		t.Errorf("expected slug harbour-united, got %s", club.Slug)
	}
	if club.InviteCode == "" {
		t.Error("expected an invite code to be generated")
	}
	if club.OwnerID != 42 {
		t.Errorf("expected owner 42, got %d", club.OwnerID)
	}

	var membership models.Membership
	if err := db.Where("club_id = ? AND user_id = ?", club.ID, 42).First(&membership).Error; err != nil {
		t.Fatalf("expected an owner membership: %v", err)
	}
	if membership.Role != models.ClubRoleOwner {
		t.Errorf("expected owner role, got %s", membership.Role)
	}
}

func TestCreateClubSlugCollision(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewClubService(db)

	first, err := service.CreateClub(1, models.CreateClubRequest{Name: "Riverside FC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.CreateClub(2, models.CreateClubRequest{Name: "Riverside FC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Slug == second.Slug {
		t.Errorf("expected distinct slugs, both got %s", first.Slug)
	}
}

func TestJoinClub(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewClubService(db)

	club, err := service.CreateClub(1, models.CreateClubRequest{Name: "Join FC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined, err := service.JoinClub(2, club.InviteCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if joined.ID != club.ID {
		t.Errorf("joined the wrong club: %d", joined.ID)
	}

	var membership models.Membership
	if err := db.Where("club_id = ? AND user_id = ?", club.ID, 2).First(&membership).Error; err != nil {
		t.Fatalf("expected a membership: %v", err)
	}
	if membership.Role != models.ClubRoleMember {
		t.Errorf("expected member role, got %s", membership.Role)
	}
}

func TestJoinClubTwiceConflicts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewClubService(db)

	club, err := service.CreateClub(1, models.CreateClubRequest{Name: "Twice FC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.JoinClub(2, club.InviteCode); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	_, err = service.JoinClub(2, club.InviteCode)
	if err == nil {
		t.Fatal("expected a conflict on the second join")
	}
	if apperrors.Code(err) != apperrors.CodeConflict {
		t.Errorf("expected conflict, got %s", apperrors.Code(err))
	}
}

func TestJoinClubInvalidCode(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewClubService(db)

	_, err := service.JoinClub(1, "nope")
	if err == nil {
		t.Fatal("expected an error for an unknown invite code")
	}
	if apperrors.Code(err) != apperrors.CodeNotFound {
		t.Errorf("expected not-found, got %s", apperrors.Code(err))
	}
}

func TestGetClubsForUser(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewClubService(db)

	if _, err := service.CreateClub(1, models.CreateClubRequest{Name: "Mine FC"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.CreateClub(2, models.CreateClubRequest{Name: "Theirs FC"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page, err := service.GetClubsForUser(1, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 || len(page.Data) != 1 {
		t.Fatalf("expected exactly one club for user 1, got %d", page.Total)
	}
	if page.Data[0].Name != "Mine FC" {
		t.Errorf("expected Mine FC, got %s", page.Data[0].Name)
	}
}
