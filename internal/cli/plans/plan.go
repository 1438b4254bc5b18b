package plans

import (
	"errors"
	"fmt"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/dashboard"
	"github.com/julianstephens/campusbuddy/internal/grades"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/utils"
)

type PlanCmd struct {
	New    PlanNewCmd    `cmd:"" help:"Generate a revision plan up to an exam date."`
	Show   PlanShowCmd   `cmd:"" help:"Show the current revision plan." default:"1"`
	Toggle PlanToggleCmd `cmd:"" help:"Mark a plan day completed or pending."`
	Clear  PlanClearCmd  `cmd:"" help:"Delete the revision plan."`
	Export PlanExportCmd `cmd:"" help:"Export the plan as plain text."`
}

type PlanNewCmd struct {
	Exam   string   `help:"Exam date (YYYY-MM-DD)." short:"e"`
	Topics []string `name:"topic" help:"Topic to revise (repeatable)." short:"t" sep:"none"`
	Sample bool     `help:"Use ten sample topics and an exam two weeks out."`
}

func (c *PlanNewCmd) Run(ctx *cli.Context) error {
	r := ctx.Dashboard().Revision

	exam := c.Exam
	if c.Sample {
		exam = utils.FormatDate(r.LoadSample())
	} else {
		r.SetTopics(c.Topics)
	}
	if exam == "" {
		return fmt.Errorf("--exam is required")
	}
	examDate, err := utils.ParseDate(exam)
	if err != nil {
		return err
	}

	plan, err := r.Generate(examDate)
	if plan == nil {
		return err
	}
	ctx.Warn(err)

	ctx.Printf("✓ Generated a %d-day revision plan for the exam on %s\n\n", len(plan), exam)
	printPlan(ctx, plan)
	return nil
}

type PlanShowCmd struct{}

func (c *PlanShowCmd) Run(ctx *cli.Context) error {
	plan := ctx.Dashboard().Revision.Plan()
	if len(plan) == 0 {
		ctx.Println("No revision plan. Create one with 'campusbuddy plan new'.")
		return nil
	}
	ctx.Printf("Progress: %d%% (%d days)\n\n", grades.Progress(plan), len(plan))
	printPlan(ctx, plan)
	return nil
}

func printPlan(ctx *cli.Context, plan []models.PlanDay) {
	for i, day := range plan {
		mark := " "
		if day.Completed {
			mark = "✓"
		}
		ctx.Printf("[%s] Day %d (%s)\n", mark, i+1, utils.FormatDayLabel(day.Date))
		for _, task := range day.Tasks {
			ctx.Printf("      • %s\n", task)
		}
	}
}

type PlanToggleCmd struct {
	Day int `arg:"" help:"Day number as shown by 'plan show' (1-based)."`
}

func (c *PlanToggleCmd) Run(ctx *cli.Context) error {
	done, err := ctx.Dashboard().Revision.Toggle(c.Day - 1)
	if errors.Is(err, dashboard.ErrIndexOutOfRange) {
		return fmt.Errorf("day %d: %w", c.Day, err)
	}
	ctx.Warn(err)

	state := "pending"
	if done {
		state = "completed"
	}
	ctx.Printf("✓ Day %d marked %s (progress %d%%)\n", c.Day, state, ctx.Dashboard().Revision.Progress())
	return nil
}

type PlanClearCmd struct {
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *PlanClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.Confirm("Delete the current revision plan?")
		if err != nil || !ok {
			ctx.Println("Cancelled.")
			return err
		}
	}
	if err := ctx.Dashboard().Revision.Clear(); err != nil {
		return err
	}
	ctx.Println("✓ Revision plan cleared")
	return nil
}

type PlanExportCmd struct {
	Exam string `help:"Exam date label printed in the header." short:"e"`
	Out  string `help:"Write to a file or directory instead of stdout." short:"o" type:"path"`
}

func (c *PlanExportCmd) Run(ctx *cli.Context) error {
	r := ctx.Dashboard().Revision
	if len(r.Plan()) == 0 {
		return fmt.Errorf("no revision plan to export")
	}

	text := r.Export()
	if c.Exam != "" {
		text = r.ExportText(c.Exam)
	}
	return ctx.Emit(c.Out, r.Filename(), text)
}
