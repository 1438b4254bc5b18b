package models

import "github.com/julianstephens/campusbuddy/internal/constants"

// RecentOutput is a history record of a past generation
type RecentOutput struct {
	ID        string               `json:"id" yaml:"id"`
	Type      constants.OutputType `json:"type" yaml:"type"`
	Title     string               `json:"title" yaml:"title"`
	Timestamp string               `json:"timestamp" yaml:"timestamp"` // RFC3339 timestamp
	Preview   string               `json:"preview" yaml:"preview"`
	Content   string               `json:"content" yaml:"content"`
}

// MCQ is a multiple-choice question with four options
type MCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Question is a question-bank entry
type Question struct {
	Question  string `json:"question"`
	Important bool   `json:"important"`
}

// PracticalFile is the generated lab record for one experiment
type PracticalFile struct {
	Aim           string   `json:"aim"`
	Apparatus     []string `json:"apparatus"`
	Theory        string   `json:"theory"`
	Procedure     []string `json:"procedure"`
	Observation   string   `json:"observation"`
	Result        string   `json:"result"`
	VivaQuestions []string `json:"vivaQuestions"`
}
