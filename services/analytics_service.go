package services

import (
	"math"
	"math/rand"

	"hr-dashboard-server/models"
	"hr-dashboard-server/store"
)

var trendMonths = []string{"July", "August", "September", "October", "November", "December"}

// AnalyticsService computes the dashboard analytics from the live store.
// Bookmark trends have no historical backing data and are generated from a
// fixed seed, so the chart is stable across requests and restarts.
type AnalyticsService struct {
	store *store.Store
	seed  int64
}

// NewAnalyticsService creates an analytics service over the given store.
func NewAnalyticsService(st *store.Store, seed int64) *AnalyticsService {
	return &AnalyticsService{store: st, seed: seed}
}

// DepartmentStats returns the average rating (one decimal) and head count for
// each enrichment department. Departments with no employees report a zero
// average.
func (as *AnalyticsService) DepartmentStats() []models.DepartmentStat {
	employees := as.store.Employees()

	stats := make([]models.DepartmentStat, 0, len(models.EnrichmentDepartments))
	for _, dept := range models.EnrichmentDepartments {
		sum := 0.0
		count := 0
		for _, e := range employees {
			if e.Department == dept {
				sum += e.Rating
				count++
			}
		}
		avg := 0.0
		if count > 0 {
			avg = math.Round(sum/float64(count)*10) / 10
		}
		stats = append(stats, models.DepartmentStat{
			Department: dept,
			AvgRating:  avg,
			UserCount:  count,
		})
	}
	return stats
}

// DepartmentDistribution returns the employee count per enrichment department.
func (as *AnalyticsService) DepartmentDistribution() []models.DepartmentDistribution {
	employees := as.store.Employees()

	dist := make([]models.DepartmentDistribution, 0, len(models.EnrichmentDepartments))
	for _, dept := range models.EnrichmentDepartments {
		count := 0
		for _, e := range employees {
			if e.Department == dept {
				count++
			}
		}
		dist = append(dist, models.DepartmentDistribution{Department: dept, Count: count})
	}
	return dist
}

// BookmarkTrends returns six months of mock bookmark activity: 5-20 total
// bookmarks and 2-10 new bookmarks per month.
func (as *AnalyticsService) BookmarkTrends() []models.BookmarkTrend {
	rng := rand.New(rand.NewSource(as.seed))

	trends := make([]models.BookmarkTrend, len(trendMonths))
	for i, month := range trendMonths {
		trends[i] = models.BookmarkTrend{
			Month:        month,
			Bookmarks:    rng.Intn(15) + 5,
			NewBookmarks: rng.Intn(8) + 2,
		}
	}
	return trends
}
