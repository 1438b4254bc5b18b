package study

import (
	"errors"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/dashboard"
)

// NotesInput is shared by the notes subcommands.
type NotesInput struct {
	Subject string `help:"Subject name." short:"s"`
	File    string `help:"Read notes from a file ('-' for stdin)." short:"f" xor:"source"`
	Text    string `help:"Notes text." short:"t" xor:"source"`
	Sample  bool   `help:"Use the sample Data Structures notes."`
	Out     string `help:"Write the result to a file or directory instead of stdout." short:"o" type:"path"`
}

func (in *NotesInput) resolve(ctx *cli.Context) (subject, notes string, err error) {
	if in.Sample {
		return dashboard.SampleNotesSubject, dashboard.SampleNotes, nil
	}
	notes, err = ctx.ReadInput(in.File, in.Text)
	return in.Subject, notes, err
}

type NotesCmd struct {
	Summary   SummaryCmd   `cmd:"" help:"Summarise notes into a short outline."`
	Keypoints KeypointsCmd `cmd:"" help:"Extract key points from notes."`
	Mcq       MCQCmd       `cmd:"" help:"Generate multiple-choice questions from notes."`
}

type SummaryCmd struct {
	NotesInput
}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	subject, notes, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	out, err := ctx.Dashboard().Notes.Summarize(subject, notes)
	if err != nil {
		return err
	}
	ctx.Warn(out.Warning)
	return ctx.Emit(c.Out, out.Filename, out.Text)
}

type KeypointsCmd struct {
	NotesInput
}

func (c *KeypointsCmd) Run(ctx *cli.Context) error {
	subject, notes, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	out, err := ctx.Dashboard().Notes.KeyPoints(subject, notes)
	if err != nil {
		return err
	}
	return ctx.Emit(c.Out, out.Filename, out.Text)
}

type MCQCmd struct {
	NotesInput
}

func (c *MCQCmd) Run(ctx *cli.Context) error {
	subject, notes, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	out, err := ctx.Dashboard().Notes.MCQs(subject, notes)
	if err != nil {
		return err
	}
	if len(out.Value) == 0 {
		return errors.New("no questions generated")
	}
	return ctx.Emit(c.Out, out.Filename, out.Text)
}
