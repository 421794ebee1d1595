package dto

// DashboardResponse carries the admin entity counts.
type DashboardResponse struct {
	FamilyMembers int64 `json:"family_members"`
	Doctors       int64 `json:"doctors"`
	Caregivers    int64 `json:"caregivers"`
	Patients      int64 `json:"patients"`
}
