package study

import (
	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/dashboard"
)

type PracticalCmd struct {
	Title   string `help:"Experiment title." short:"t"`
	Context string `help:"Lab or course context, e.g. 'Data Structures Lab, CSE'." short:"c"`
	Sample  bool   `help:"Use the sample stack experiment."`
	Out     string `help:"Write the practical file to a file or directory." short:"o" type:"path"`
}

func (c *PracticalCmd) Run(ctx *cli.Context) error {
	title, labContext := c.Title, c.Context
	if c.Sample {
		title, labContext = dashboard.SamplePracticalTitle, dashboard.SamplePracticalContext
	}

	out, err := ctx.Dashboard().Practical.Generate(title, labContext)
	if err != nil {
		return err
	}
	ctx.Warn(out.Warning)
	return ctx.Emit(c.Out, out.Filename, out.Text)
}
