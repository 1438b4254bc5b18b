package constants

// Store keys. Each feature owns exactly one key.
const (
	KeyRevisionPlan  = "campusbuddy-revision-plan"
	KeyCGPAData      = "campusbuddy-cgpa-data"
	KeyAttendance    = "campusbuddy-attendance-data"
	KeyRecentOutputs = "campusbuddy-recent-outputs"
)

// AllKeys lists every key touched by export, import and clear, in export order.
var AllKeys = []string{
	KeyRevisionPlan,
	KeyCGPAData,
	KeyAttendance,
	KeyRecentOutputs,
}
