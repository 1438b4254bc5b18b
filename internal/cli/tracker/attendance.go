package tracker

import (
	"fmt"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/grades"
)

type AttendanceCmd struct {
	Add    AttendanceAddCmd    `cmd:"" help:"Record attendance for a subject."`
	List   AttendanceListCmd   `cmd:"" help:"List attendance, flagging subjects below 75%." default:"1"`
	Remove AttendanceRemoveCmd `cmd:"" help:"Remove an attendance record by id."`
}

type AttendanceAddCmd struct {
	Subject string  `arg:"" help:"Subject name."`
	Percent float64 `help:"Attendance percentage (0-100)." short:"p" required:""`
}

func (c *AttendanceAddCmd) Run(ctx *cli.Context) error {
	a, err := ctx.Dashboard().Tracker.AddAttendance(c.Subject, c.Percent)
	if a == nil {
		return err
	}
	ctx.Warn(err)
	ctx.Printf("✓ Recorded %s at %g%% [%s]\n", a.Subject, a.Attendance, a.ID)
	if grades.IsLow(a.Attendance) {
		ctx.Printf("⚠ Below the %g%% requirement\n", constants.LowAttendanceThreshold)
	}
	return nil
}

type AttendanceListCmd struct{}

func (c *AttendanceListCmd) Run(ctx *cli.Context) error {
	t := ctx.Dashboard().Tracker
	records := t.Attendance()
	if len(records) == 0 {
		ctx.Println("No attendance records yet. Add one with 'campusbuddy attendance add'.")
		return nil
	}

	ctx.Printf("%-36s  %-30s  %10s\n", "ID", "SUBJECT", "ATTENDANCE")
	for _, a := range records {
		flag := ""
		if grades.IsLow(a.Attendance) {
			flag = "  ⚠ low"
		}
		ctx.Printf("%-36s  %-30s  %9g%%%s\n", a.ID, a.Subject, a.Attendance, flag)
	}

	if low := t.LowAttendance(); len(low) > 0 {
		ctx.Printf("\n%d subject(s) below %g%%\n", len(low), constants.LowAttendanceThreshold)
	}
	return nil
}

type AttendanceRemoveCmd struct {
	ID string `arg:"" help:"Record id as shown by 'attendance list'."`
}

func (c *AttendanceRemoveCmd) Run(ctx *cli.Context) error {
	removed, err := ctx.Dashboard().Tracker.RemoveAttendance(c.ID)
	if !removed {
		return fmt.Errorf("no attendance record with id %s", c.ID)
	}
	ctx.Warn(err)
	ctx.Printf("✓ Removed attendance record %s\n", c.ID)
	return nil
}
