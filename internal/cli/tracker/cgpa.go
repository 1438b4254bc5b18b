package tracker

import (
	"fmt"
	"os"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/grades"
	"github.com/julianstephens/campusbuddy/internal/sheets"
)

type CGPACmd struct {
	Add    CGPAAddCmd    `cmd:"" help:"Add a graded subject."`
	List   CGPAListCmd   `cmd:"" help:"List subjects with the current CGPA." default:"1"`
	Remove CGPARemoveCmd `cmd:"" help:"Remove a subject by id."`
	Sample CGPASampleCmd `cmd:"" help:"Replace subjects and attendance with a sample semester."`
	Sheet  struct {
		Export SheetExportCmd `cmd:"" help:"Write subjects and attendance to an .xlsx workbook."`
		Import SheetImportCmd `cmd:"" help:"Replace subjects and attendance from an .xlsx workbook."`
	} `cmd:"" help:"Exchange grades with a spreadsheet."`
}

type CGPAAddCmd struct {
	Name    string `arg:"" help:"Subject name."`
	Credits int    `help:"Credit hours (greater than zero)." short:"c" required:""`
	Grade   string `help:"Letter grade (O, A+, A, B+, B, C, P, F)." short:"g" required:""`
}

func (c *CGPAAddCmd) Run(ctx *cli.Context) error {
	t := ctx.Dashboard().Tracker
	s, err := t.AddSubject(c.Name, c.Credits, c.Grade)
	if s == nil {
		return err
	}
	ctx.Warn(err)
	ctx.Printf("✓ Added %s (%d credits, %s) [%s]\n", s.Name, s.Credits, s.Grade, s.ID)
	ctx.Printf("CGPA: %.2f\n", t.CGPA())
	return nil
}

type CGPAListCmd struct{}

func (c *CGPAListCmd) Run(ctx *cli.Context) error {
	t := ctx.Dashboard().Tracker
	subjects := t.Subjects()
	if len(subjects) == 0 {
		ctx.Println("No subjects yet. Add one with 'campusbuddy cgpa add'.")
		return nil
	}

	ctx.Printf("%-36s  %-30s  %7s  %5s  %6s\n", "ID", "SUBJECT", "CREDITS", "GRADE", "POINTS")
	for _, s := range subjects {
		ctx.Printf("%-36s  %-30s  %7d  %5s  %6d\n", s.ID, s.Name, s.Credits, s.Grade, grades.GradePoint(s.Grade))
	}
	ctx.Printf("\nTotal credits: %d\nCGPA: %.2f\n", t.TotalCredits(), t.CGPA())
	return nil
}

type CGPARemoveCmd struct {
	ID string `arg:"" help:"Subject id as shown by 'cgpa list'."`
}

func (c *CGPARemoveCmd) Run(ctx *cli.Context) error {
	removed, err := ctx.Dashboard().Tracker.RemoveSubject(c.ID)
	if !removed {
		return fmt.Errorf("no subject with id %s", c.ID)
	}
	ctx.Warn(err)
	ctx.Printf("✓ Removed subject %s\n", c.ID)
	return nil
}

type CGPASampleCmd struct{}

func (c *CGPASampleCmd) Run(ctx *cli.Context) error {
	t := ctx.Dashboard().Tracker
	ctx.Warn(t.LoadSampleData())
	ctx.Printf("✓ Loaded %d sample subjects and %d attendance records (CGPA %.2f)\n",
		len(t.Subjects()), len(t.Attendance()), t.CGPA())
	return nil
}

type SheetExportCmd struct {
	File string `arg:"" help:"Destination .xlsx file." type:"path"`
}

func (c *SheetExportCmd) Run(ctx *cli.Context) error {
	t := ctx.Dashboard().Tracker
	wb := sheets.Workbook{Subjects: t.Subjects(), Attendance: t.Attendance()}
	if err := sheets.Save(c.File, wb); err != nil {
		return err
	}
	ctx.Printf("✓ Exported %d subjects and %d attendance records to %s\n", len(wb.Subjects), len(wb.Attendance), c.File)
	return nil
}

type SheetImportCmd struct {
	File string `arg:"" help:"Source .xlsx file." type:"existingfile"`
}

func (c *SheetImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	wb, err := sheets.Parse(f)
	if err != nil {
		return err
	}
	if err := ctx.Dashboard().Tracker.Replace(wb.Subjects, wb.Attendance); err != nil {
		return err
	}
	ctx.Printf("✓ Imported %d subjects and %d attendance records\n", len(wb.Subjects), len(wb.Attendance))
	return nil
}
