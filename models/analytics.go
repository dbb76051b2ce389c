package models

// DepartmentStat is the average rating and head count for one department.
type DepartmentStat struct {
	Department string  `json:"department"`
	AvgRating  float64 `json:"avgRating"`
	UserCount  int     `json:"userCount"`
}

// DepartmentDistribution is the employee count for one department.
type DepartmentDistribution struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// BookmarkTrend is one month of bookmark activity numbers.
type BookmarkTrend struct {
	Month        string `json:"month"`
	Bookmarks    int    `json:"bookmarks"`
	NewBookmarks int    `json:"newBookmarks"`
}
