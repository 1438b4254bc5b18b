package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/storage"
	"github.com/julianstephens/campusbuddy/internal/validation"
)

type DoctorCmd struct{}

// schemaReporter is implemented by the migrated SQL stores.
type schemaReporter interface {
	SchemaStatus() (bool, int, error)
}

type check struct {
	name     string
	needsDB  bool
	warnOnly bool
	run      func(*cli.Context) error
}

var checks = []check{
	{name: "Storage reachable", run: checkStoreReachable},
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Stored data decodes", needsDB: true, run: checkDecode},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := false
	for i, c := range checks {
		if c.needsDB && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
			if i == 0 {
				reachable = true
			}
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sr, ok := ctx.Store.(schemaReporter)
	if !ok {
		// file and memory stores are schemaless
		return nil
	}
	current, version, err := sr.SchemaStatus()
	if err != nil {
		return err
	}
	if !current {
		return fmt.Errorf("schema version %d is behind; run 'campusbuddy init'", version)
	}
	return nil
}

type storedData struct {
	plan       []models.PlanDay
	subjects   []models.CGPASubject
	attendance []models.AttendanceSubject
	outputs    []models.RecentOutput
}

func loadStored(p storage.Provider) (storedData, error) {
	var d storedData
	targets := []struct {
		key string
		out any
	}{
		{constants.KeyRevisionPlan, &d.plan},
		{constants.KeyCGPAData, &d.subjects},
		{constants.KeyAttendance, &d.attendance},
		{constants.KeyRecentOutputs, &d.outputs},
	}
	var errs []error
	for _, t := range targets {
		if _, err := storage.GetJSON(p, t.key, t.out); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.key, err))
		}
	}
	return d, errors.Join(errs...)
}

func checkDecode(ctx *cli.Context) error {
	_, err := loadStored(ctx.Store)
	return err
}

func checkValidation(ctx *cli.Context) error {
	d, err := loadStored(ctx.Store)
	if err != nil {
		return fmt.Errorf("skipped, stored data does not decode")
	}

	v := validation.New()
	results := []validation.ValidationResult{
		v.ValidateCGPA(d.subjects),
		v.ValidateAttendance(d.attendance),
		v.ValidatePlan(d.plan),
		v.ValidateHistory(d.outputs),
	}
	var report string
	for _, r := range results {
		if r.HasConflicts() {
			report += r.FormatReport()
		}
	}
	if report != "" {
		return fmt.Errorf("validation found conflicts:\n%s", report)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if storage.DetectKind(ctx.Location) == storage.KindMemory {
		return fmt.Errorf("in-memory storage is never backed up")
	}
	backups, err := ctx.BackupManager().ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; run 'campusbuddy backup create'")
	}
	if age := time.Since(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("most recent backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkClockTimezone(*cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, err := time.LoadLocation(now.Location().String()); err != nil {
		return fmt.Errorf("failed to load local timezone: %w", err)
	}
	return nil
}
