package domain

import "time"

// NumFoodGroups is the number of meal groups accepted applicants are
// partitioned into. Groups are numbered 1..NumFoodGroups.
const NumFoodGroups = 4

// FoodGroupAssignment pins one applicant to one meal group. Once written
// an assignment is never moved by the balancer; it can only disappear via
// the whole-collection clear.
type FoodGroupAssignment struct {
	Email      string    `json:"email"`
	Group      int       `json:"group"`
	AssignedAt time.Time `json:"assignedAt"`
}

// FoodGroupReport summarizes one balancing run.
type FoodGroupReport struct {
	NewlyAssigned int         `json:"newlyAssigned"`
	TotalEligible int         `json:"totalEligible"`
	GroupCounts   map[int]int `json:"groupCounts"`
}
