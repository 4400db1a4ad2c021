package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
)

// deleteBatchSize matches the store's per-batch write limit.
const deleteBatchSize = 500

type FoodGroupRepository interface {
	FindAll(ctx context.Context) ([]domain.FoodGroupAssignment, error)
	CreateBatch(ctx context.Context, assignments []domain.FoodGroupAssignment) error
	DeleteBatch(ctx context.Context, limit int) (int64, error)
}

type FoodGroupApplicantRepository interface {
	FindByStatus(ctx context.Context, status string) ([]domain.Applicant, error)
}

type FoodGroupService struct {
	repo              FoodGroupRepository
	applicants        FoodGroupApplicantRepository
	institutionDomain string
}

func NewFoodGroupService(repo FoodGroupRepository, applicants FoodGroupApplicantRepository, institutionDomain string) *FoodGroupService {
	return &FoodGroupService{
		repo:              repo,
		applicants:        applicants,
		institutionDomain: institutionDomain,
	}
}

// Assign places every eligible, not-yet-assigned applicant into the meal
// group that is smallest at that moment. Existing assignments are frozen
// inputs: they seed the counts and are never moved. The new applicants are
// shuffled with the given seed, then handed out greedily one by one, each
// assignment bumping its group's count before the next applicant is
// placed. With groups starting balanced this keeps any two group sizes
// within 1 of each other. The whole batch is committed atomically.
func (s *FoodGroupService) Assign(ctx context.Context, seed int64) (domain.FoodGroupReport, error) {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.FoodGroupReport{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	assigned := make(map[string]int, len(existing))
	counts := emptyGroupCounts()
	for _, a := range existing {
		assigned[a.Email] = a.Group
		counts[a.Group]++
	}

	accepted, err := s.applicants.FindByStatus(ctx, domain.StatusAccepted)
	if err != nil {
		return domain.FoodGroupReport{}, fmt.Errorf("s.applicants.FindByStatus -> %w", err)
	}

	totalEligible := 0
	var fresh []string
	for _, applicant := range accepted {
		if !applicant.EligibleForFoodGroup(s.institutionDomain) {
			continue
		}
		totalEligible++

		if _, ok := assigned[applicant.Email]; ok {
			continue
		}
		fresh = append(fresh, applicant.Email)
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(fresh), func(i, j int) {
		fresh[i], fresh[j] = fresh[j], fresh[i]
	})

	now := time.Now()
	batch := make([]domain.FoodGroupAssignment, 0, len(fresh))
	for _, email := range fresh {
		group := smallestGroup(counts)
		counts[group]++
		batch = append(batch, domain.FoodGroupAssignment{
			Email:      email,
			Group:      group,
			AssignedAt: now,
		})
	}

	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return domain.FoodGroupReport{}, fmt.Errorf("s.repo.CreateBatch -> %w", err)
	}

	return domain.FoodGroupReport{
		NewlyAssigned: len(batch),
		TotalEligible: totalEligible,
		GroupCounts:   counts,
	}, nil
}

// Clear wipes every assignment, deleting in store-sized batches until the
// collection is empty, and reports how many rows went.
func (s *FoodGroupService) Clear(ctx context.Context) (int64, error) {
	var total int64
	for {
		deleted, err := s.repo.DeleteBatch(ctx, deleteBatchSize)
		if err != nil {
			return 0, fmt.Errorf("s.repo.DeleteBatch -> %w", err)
		}
		if deleted == 0 {
			return total, nil
		}
		total += deleted
	}
}

// Fetch returns the current group membership straight from the store.
// Every group key is present even when empty.
func (s *FoodGroupService) Fetch(ctx context.Context) (map[int][]string, int, error) {
	assignments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	groups := make(map[int][]string, domain.NumFoodGroups)
	for g := 1; g <= domain.NumFoodGroups; g++ {
		groups[g] = []string{}
	}
	for _, a := range assignments {
		groups[a.Group] = append(groups[a.Group], a.Email)
	}

	return groups, len(assignments), nil
}

// smallestGroup scans groups 1..N in order; only a strictly smaller count
// replaces the current minimum, so ties resolve to the lowest number.
func smallestGroup(counts map[int]int) int {
	best := 1
	for g := 2; g <= domain.NumFoodGroups; g++ {
		if counts[g] < counts[best] {
			best = g
		}
	}

	return best
}

func emptyGroupCounts() map[int]int {
	counts := make(map[int]int, domain.NumFoodGroups)
	for g := 1; g <= domain.NumFoodGroups; g++ {
		counts[g] = 0
	}

	return counts
}
