// services/directory.go
package services

import "gymnet-backend/models"

// Membership projections over a gym's preloaded profiles. Both are pure
// reads: the public page shows the full list, operational contexts (such as
// the gym directory view) show only staff.

// FullMembers returns every profile linked to the gym in persistence order.
func FullMembers(gym *models.Gym) []models.Profile {
	return gym.Profiles
}

// StaffMembers returns the staff-flagged subset, keeping relative order.
func StaffMembers(gym *models.Gym) []models.Profile {
	staff := make([]models.Profile, 0, len(gym.Profiles))
	for _, p := range gym.Profiles {
		if p.IsStaff {
			staff = append(staff, p)
		}
	}
	return staff
}
