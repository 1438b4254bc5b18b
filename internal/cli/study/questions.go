package study

import (
	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/dashboard"
)

type QuestionsCmd struct {
	Subject    string `help:"Subject name." short:"s"`
	Topic      string `help:"Topic within the subject." short:"t"`
	Difficulty string `help:"Question difficulty." enum:"Easy,Medium,Hard" default:"Medium" short:"d"`
	Sample     bool   `help:"Use the sample Operating Systems topic."`
	Out        string `help:"Write the question bank to a file or directory." short:"o" type:"path"`
}

func (c *QuestionsCmd) Run(ctx *cli.Context) error {
	subject, topic, difficulty := c.Subject, c.Topic, c.Difficulty
	if c.Sample {
		subject = dashboard.SampleQuestionsSubject
		topic = dashboard.SampleQuestionsTopic
		difficulty = dashboard.SampleQuestionsDifficulty
	}

	out, err := ctx.Dashboard().Questions.Generate(subject, topic, difficulty)
	if err != nil {
		return err
	}
	ctx.Warn(out.Warning)
	return ctx.Emit(c.Out, out.Filename, out.Text)
}
