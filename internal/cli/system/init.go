package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete an existing store file before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.removeExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized campusbuddy storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

func (c *InitCmd) removeExisting(ctx *cli.Context) error {
	switch storage.DetectKind(ctx.Location) {
	case storage.KindSQLite, storage.KindJSON:
	default:
		return fmt.Errorf("--force only applies to file-backed stores")
	}
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	path := ctx.Location
	if _, err := os.Stat(path); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing store: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing store: %w", err)
		}
		ctx.Printf("Deleted existing store at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing store: %w", err)
	}
	return nil
}
