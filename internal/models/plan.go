package models

// PlanDay is one scheduled day of a revision plan
type PlanDay struct {
	Date      string   `json:"date" yaml:"date"` // YYYY-MM-DD format
	Tasks     []string `json:"tasks" yaml:"tasks"`
	Completed bool     `json:"completed" yaml:"completed"`
}
