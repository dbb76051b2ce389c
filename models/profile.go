package models

// PerformanceRecord is one historical quarter of an employee's rating.
type PerformanceRecord struct {
	Period   string `json:"period"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

// Project is one project assignment shown on the employee detail view.
type Project struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}
