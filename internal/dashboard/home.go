package dashboard

import (
	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/models"
)

// Overview is the read-only summary shown on the home screen.
type Overview struct {
	Progress      int
	PlanDays      int
	CGPA          float64
	TotalCredits  int
	Subjects      int
	LowAttendance []models.AttendanceSubject
	Recent        []models.RecentOutput
}

// Overview gathers the home screen statistics from the current state.
func (d *Dashboard) Overview() Overview {
	return Overview{
		Progress:      d.Revision.Progress(),
		PlanDays:      len(d.st.plan.Get()),
		CGPA:          d.Tracker.CGPA(),
		TotalCredits:  d.Tracker.TotalCredits(),
		Subjects:      len(d.st.cgpa.Get()),
		LowAttendance: d.Tracker.LowAttendance(),
		Recent:        d.History.Recent(constants.HomeRecentCount),
	}
}
