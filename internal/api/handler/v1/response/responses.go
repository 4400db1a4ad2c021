package response

import "github.com/SparkHacks/spark-dashboard-sub000/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type SubmitApplicationResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Applicant *domain.Applicant `json:"applicant,omitempty"`
}

type FoodGroupAssignResponse struct {
	NewlyAssigned int         `json:"newlyAssigned"`
	TotalEligible int         `json:"totalEligible"`
	GroupCounts   map[int]int `json:"groupCounts"`
}

type FoodGroupFetchResponse struct {
	Groups map[int][]string `json:"groups"`
	Total  int              `json:"total"`
}

type FoodGroupClearResponse struct {
	Deleted int64 `json:"deleted"`
}

type StatsResponse struct {
	Counts map[string]int64 `json:"counts"`
}

type RolesResponse struct {
	Email string          `json:"email"`
	Roles map[string]bool `json:"roles"`
}
