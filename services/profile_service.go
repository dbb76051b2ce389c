package services

import (
	"fmt"
	"math/rand"

	"hr-dashboard-server/models"
)

var bioTemplates = []string{
	"%s is a dedicated professional with over 5 years of experience in their field. Known for exceptional problem-solving skills and team collaboration.",
	"%s brings innovative thinking and strong leadership qualities to every project. Passionate about continuous learning and professional development.",
	"%s is a results-driven individual with a proven track record of exceeding expectations. Excellent communication skills and attention to detail.",
	"%s combines technical expertise with creative problem-solving. A reliable team player who thrives in fast-paced environments.",
}

var performancePhrases = []string{
	"Excellent performance and exceeded targets",
	"Strong team collaboration and leadership",
	"Innovative solutions and problem-solving",
	"Consistent delivery and reliability",
	"Great communication and client relations",
}

var projectCatalog = []models.Project{
	{Name: "Customer Portal Redesign", Status: "Completed", Progress: 100},
	{Name: "Mobile App Development", Status: "In Progress", Progress: 75},
	{Name: "Database Migration", Status: "Planning", Progress: 25},
	{Name: "API Integration", Status: "Completed", Progress: 100},
}

// ProfileService produces the supplementary detail-view data (bio,
// performance history, projects) that has no backing source. Everything is
// derived from the employee identifier, so a given employee always shows the
// same profile.
type ProfileService struct{}

// NewProfileService creates a profile service.
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Bio returns the employee's biography text.
func (ps *ProfileService) Bio(e models.Employee) string {
	rng := rand.New(rand.NewSource(int64(e.ID)))
	return fmt.Sprintf(bioTemplates[rng.Intn(len(bioTemplates))], e.FullName())
}

// PerformanceHistory returns six quarters of historical ratings, Q1 through
// Q4 of the base year followed by the first two quarters of the year before.
func (ps *ProfileService) PerformanceHistory(id int) []models.PerformanceRecord {
	rng := rand.New(rand.NewSource(int64(id) + 1))

	records := make([]models.PerformanceRecord, 6)
	for i := range records {
		records[i] = models.PerformanceRecord{
			Period:   fmt.Sprintf("Q%d %d", (i%4)+1, 2024-i/4),
			Rating:   rng.Intn(5) + 1,
			Feedback: performancePhrases[rng.Intn(len(performancePhrases))],
		}
	}
	return records
}

// Projects returns between two and four project assignments from the fixed
// catalog.
func (ps *ProfileService) Projects(id int) []models.Project {
	rng := rand.New(rand.NewSource(int64(id) + 2))

	count := rng.Intn(3) + 2
	if count > len(projectCatalog) {
		count = len(projectCatalog)
	}
	out := make([]models.Project, count)
	copy(out, projectCatalog[:count])
	return out
}
