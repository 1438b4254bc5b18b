package grades

import (
	"math"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/models"
)

// Points maps each grade symbol to its grade point.
var Points = map[string]int{
	"O":  10,
	"A+": 9,
	"A":  8,
	"B+": 7,
	"B":  6,
	"C":  5,
	"P":  4,
	"F":  0,
}

// GradePoint returns the grade point for grade, or 0 for an unknown symbol.
func GradePoint(grade string) int {
	return Points[grade]
}

// IsValid reports whether grade is one of the known grade symbols.
func IsValid(grade string) bool {
	_, ok := Points[grade]
	return ok
}

// CalculateCGPA returns the credit-weighted mean grade point rounded to two
// decimal places. Halves round away from zero.
func CalculateCGPA(subjects []models.CGPASubject) float64 {
	if len(subjects) == 0 {
		return 0
	}

	var weighted, credits int
	for _, s := range subjects {
		weighted += s.Credits * GradePoint(s.Grade)
		credits += s.Credits
	}
	if credits == 0 {
		return 0
	}
	return Round2(float64(weighted) / float64(credits))
}

// Round2 rounds x to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// TotalCredits sums the credits of all subjects.
func TotalCredits(subjects []models.CGPASubject) int {
	total := 0
	for _, s := range subjects {
		total += s.Credits
	}
	return total
}

// LowAttendance returns the subjects whose attendance is below the threshold.
func LowAttendance(subjects []models.AttendanceSubject) []models.AttendanceSubject {
	var low []models.AttendanceSubject
	for _, s := range subjects {
		if IsLow(s.Attendance) {
			low = append(low, s)
		}
	}
	return low
}

// IsLow reports whether an attendance percentage needs attention.
func IsLow(attendance float64) bool {
	return attendance < constants.LowAttendanceThreshold
}

// Progress returns the share of completed plan days as a whole percentage.
func Progress(plan []models.PlanDay) int {
	if len(plan) == 0 {
		return 0
	}
	done := 0
	for _, d := range plan {
		if d.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(plan)) * 100))
}
