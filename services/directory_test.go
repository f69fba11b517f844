package services

import (
	"testing"

	"gymnet-backend/models"

	"github.com/google/uuid"
)

func memberFixture(username string, staff bool) models.Profile {
	return models.Profile{
		ID:      uuid.New(),
		IsStaff: staff,
		User:    models.User{Username: username},
	}
}

func TestStaffMembers_FiltersToStaffSubset(t *testing.T) {
	gym := models.Gym{
		Slug: "city-center",
		Profiles: []models.Profile{
			memberFixture("alice", false),
			memberFixture("bob", true),
			memberFixture("carol", false),
			memberFixture("dave", true),
			memberFixture("erin", false),
		},
	}

	full := FullMembers(&gym)
	if len(full) != 5 {
		t.Fatalf("full membership = %d profiles, want 5", len(full))
	}

	staff := StaffMembers(&gym)
	if len(staff) != 2 {
		t.Fatalf("staff view = %d profiles, want 2", len(staff))
	}
	if staff[0].User.Username != "bob" || staff[1].User.Username != "dave" {
		t.Errorf("staff view order = [%s, %s], want [bob, dave]",
			staff[0].User.Username, staff[1].User.Username)
	}
}

func TestStaffMembers_EmptyWhenNoStaff(t *testing.T) {
	gym := models.Gym{Profiles: []models.Profile{memberFixture("alice", false)}}

	staff := StaffMembers(&gym)
	if len(staff) != 0 {
		t.Fatalf("expected empty staff view, got %d", len(staff))
	}
	if staff == nil {
		t.Error("staff view should be an empty slice, not nil")
	}
}

func TestMembershipProjections_DoNotMutateGym(t *testing.T) {
	gym := models.Gym{
		Profiles: []models.Profile{
			memberFixture("alice", false),
			memberFixture("bob", true),
		},
	}

	StaffMembers(&gym)
	FullMembers(&gym)

	if len(gym.Profiles) != 2 {
		t.Fatalf("projection changed membership size to %d", len(gym.Profiles))
	}
	if gym.Profiles[0].User.Username != "alice" {
		t.Error("projection reordered the membership list")
	}
}
