package models

// CGPASubject is one graded course counted towards the CGPA
type CGPASubject struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Credits int    `json:"credits" yaml:"credits"`
	Grade   string `json:"grade" yaml:"grade"`
}

// AttendanceSubject tracks the attendance percentage of one course
type AttendanceSubject struct {
	ID         string  `json:"id" yaml:"id"`
	Subject    string  `json:"subject" yaml:"subject"`
	Attendance float64 `json:"attendance" yaml:"attendance"`
}
