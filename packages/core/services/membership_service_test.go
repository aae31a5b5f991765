package services

import (
	"testing"

	"clubmanager-api/packages/core/apperrors"
	"clubmanager-api/packages/core/models"
	"clubmanager-api/packages/core/testutil"

	"gorm.io/gorm"
)

func seedMembership(t *testing.T, db *gorm.DB, clubID, userID uint, role string) {
	t.Helper()
	membership := &models.Membership{ClubID: clubID, UserID: userID, Role: role}
	if err := db.Create(membership).Error; err != nil {
		t.Fatalf("failed to seed membership: %v", err)
	}
}

func TestAuthorize(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club := testutil.CreateClub(t, db, "Auth FC")
	seedMembership(t, db, club.ID, 1, models.ClubRoleOwner)
	seedMembership(t, db, club.ID, 2, models.ClubRoleAdmin)
	seedMembership(t, db, club.ID, 3, models.ClubRoleMember)

	service := NewMembershipService(db)

	tests := []struct {
		name     string
		userID   uint
		required string
		wantErr  bool
	}{
		{"owner passes owner check", 1, models.ClubRoleOwner, false},
		{"owner passes member check", 1, models.ClubRoleMember, false},
		{"admin passes admin check", 2, models.ClubRoleAdmin, false},
		{"admin fails owner check", 2, models.ClubRoleOwner, true},
		{"member fails admin check", 3, models.ClubRoleAdmin, true},
		{"non-member fails member check", 99, models.ClubRoleMember, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Authorize(tt.userID, club.ID, tt.required)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected authorization to fail")
				}
				if apperrors.Code(err) != apperrors.CodePermissionDenied {
					t.Errorf("expected permission-denied, got %s", apperrors.Code(err))
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizeDoesNotLeakClubExistence(t *testing.T) {
	db := testutil.OpenTestDB(t)
	service := NewMembershipService(db)

	// Unknown club and unknown user look exactly like a denied member
	_, err := service.Authorize(1, 12345, models.ClubRoleMember)
	if err == nil {
		t.Fatal("expected authorization to fail")
	}
	if apperrors.Code(err) != apperrors.CodePermissionDenied {
		t.Errorf("expected permission-denied, got %s", apperrors.Code(err))
	}
}

func TestUpdateMemberRole(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club := testutil.CreateClub(t, db, "Role FC")
	seedMembership(t, db, club.ID, 1, models.ClubRoleOwner)
	seedMembership(t, db, club.ID, 2, models.ClubRoleMember)

	service := NewMembershipService(db)

	promoted, err := service.UpdateMemberRole(club.ID, 2, models.ClubRoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if promoted.Role != models.ClubRoleAdmin {
		t.Errorf("expected admin, got %s", promoted.Role)
	}

	if _, err := service.UpdateMemberRole(club.ID, 2, models.ClubRoleOwner); err == nil {
		t.Error("promoting to owner must be rejected")
	}
	if _, err := service.UpdateMemberRole(club.ID, 1, models.ClubRoleMember); err == nil {
		t.Error("demoting the owner must be rejected")
	}
	if _, err := service.UpdateMemberRole(club.ID, 99, models.ClubRoleAdmin); apperrors.Code(err) != apperrors.CodeNotFound {
		t.Errorf("expected not-found for unknown membership, got %v", err)
	}
}

func TestRemoveMember(t *testing.T) {
	db := testutil.OpenTestDB(t)
	club := testutil.CreateClub(t, db, "Remove FC")
	seedMembership(t, db, club.ID, 1, models.ClubRoleOwner)
	seedMembership(t, db, club.ID, 2, models.ClubRoleMember)

	service := NewMembershipService(db)

	if err := service.RemoveMember(club.ID, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Authorize(2, club.ID, models.ClubRoleMember); err == nil {
		t.Error("removed member must no longer be authorized")
	}

	if err := service.RemoveMember(club.ID, 1); err == nil {
		t.Error("the owner must not be removable")
	}
}
