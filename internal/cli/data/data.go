package data

import (
	"os"
	"strings"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/dashboard"
)

type DataCmd struct {
	Export DataExportCmd `cmd:"" help:"Export every stored collection as JSON or YAML."`
	Import DataImportCmd `cmd:"" help:"Import collections from an export file."`
	Clear  DataClearCmd  `cmd:"" help:"Delete every stored collection."`
}

type DataExportCmd struct {
	Format string `help:"Export format (json or yaml); inferred from --out when omitted." short:"f" enum:",json,yaml,yml" default:""`
	Out    string `help:"Destination file or directory; prints to stdout when omitted." short:"o" type:"path"`
}

func (c *DataExportCmd) Run(ctx *cli.Context) error {
	format := dashboard.FormatFromPath(c.Out)
	if c.Format != "" {
		var err error
		if format, err = dashboard.ParseFormat(c.Format); err != nil {
			return err
		}
	}

	doc, err := ctx.Dashboard().Data.Export(format)
	if err != nil {
		return err
	}

	filename := dashboard.ExportFilename
	if format == dashboard.FormatYAML {
		filename = strings.TrimSuffix(filename, ".json") + ".yaml"
	}
	return ctx.Emit(c.Out, filename, string(doc))
}

type DataImportCmd struct {
	File   string `arg:"" help:"Export file to import." type:"existingfile"`
	Format string `help:"File format (json or yaml); inferred from the extension when omitted." short:"f" enum:",json,yaml,yml" default:""`
}

func (c *DataImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	format := dashboard.FormatFromPath(c.File)
	if c.Format != "" {
		if format, err = dashboard.ParseFormat(c.Format); err != nil {
			return err
		}
	}

	keys, err := ctx.Dashboard().Data.Import(data, format)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		ctx.Println("Nothing to import.")
		return nil
	}
	ctx.Printf("✓ Imported %s\n", strings.Join(keys, ", "))
	return nil
}

type DataClearCmd struct {
	Yes bool `help:"Skip the confirmation prompt." short:"y"`
}

func (c *DataClearCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}
	if !c.Yes {
		ok, err := ctx.Confirm("Delete all revision plans, grades, attendance and history? This cannot be undone.")
		if err != nil || !ok {
			ctx.Println("Cancelled.")
			return err
		}
	}
	if err := ctx.Dashboard().Data.Clear(); err != nil {
		return err
	}
	ctx.Println("✓ All data cleared")
	return nil
}
