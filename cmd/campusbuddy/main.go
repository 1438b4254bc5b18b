package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/cli/backups"
	"github.com/julianstephens/campusbuddy/internal/cli/data"
	"github.com/julianstephens/campusbuddy/internal/cli/history"
	"github.com/julianstephens/campusbuddy/internal/cli/plans"
	"github.com/julianstephens/campusbuddy/internal/cli/study"
	"github.com/julianstephens/campusbuddy/internal/cli/system"
	"github.com/julianstephens/campusbuddy/internal/cli/tracker"
	"github.com/julianstephens/campusbuddy/internal/constants"
	cberrors "github.com/julianstephens/campusbuddy/internal/errors"
	"github.com/julianstephens/campusbuddy/internal/keyring"
	"github.com/julianstephens/campusbuddy/internal/logger"
	"github.com/julianstephens/campusbuddy/internal/storage"
	"github.com/julianstephens/campusbuddy/internal/storage/postgres"
	"github.com/julianstephens/campusbuddy/internal/storage/sqlite"
	"github.com/julianstephens/campusbuddy/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite file, JSON file, ':memory:', 'keyring', or a PostgreSQL connection string without a password." env:"CAMPUSBUDDY_CONFIG" default:"~/.config/campusbuddy/campusbuddy.db"`
	Debug   bool   `help:"Mirror log output to stderr." env:"CAMPUSBUDDY_DEBUG"`

	Init       system.InitCmd        `cmd:"" help:"Initialize campusbuddy storage."`
	Doctor     system.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
	Tui        system.TuiCmd         `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Notes      study.NotesCmd        `cmd:"" help:"Summarize notes, extract key points, or build MCQs."`
	Questions  study.QuestionsCmd    `cmd:"" help:"Generate an exam question bank."`
	Practical  study.PracticalCmd    `cmd:"" help:"Generate a practical lab record."`
	Plan       plans.PlanCmd         `cmd:"" help:"Manage the revision plan."`
	CGPA       tracker.CGPACmd       `cmd:"" name:"cgpa" help:"Track subjects, grades and CGPA."`
	Attendance tracker.AttendanceCmd `cmd:"" help:"Track attendance per subject."`
	History    history.HistoryCmd    `cmd:"" help:"Browse recent generations."`
	Data       data.DataCmd          `cmd:"" help:"Export, import or clear all data."`
	Backup     struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Study companion: notes, question banks, revision plans, CGPA and attendance"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	command := ctx.Command()
	location, err := resolveLocation(CLI.Config, strings.HasPrefix(command, "keyring"))
	if err != nil {
		cberrors.Fatal(err)
	}

	store, err := newStore(location)
	if err != nil {
		cberrors.Fatal(err)
	}
	defer store.Close()

	configDir, err := configDir(location)
	if err != nil {
		cberrors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintln(os.Stderr, cberrors.Warning(fmt.Errorf("logging disabled: %w", err)))
	}
	logger.Debug("Starting", "command", command, "backend", storage.DetectKind(location))

	appCtx := &cli.Context{
		Store:     store,
		Location:  location,
		ConfigDir: configDir,
	}

	// init and keyring manage storage themselves
	if command != "init" && !strings.HasPrefix(command, "keyring") {
		if err := store.Load(); err != nil {
			cberrors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		cberrors.Fatal(err)
	}
}

// resolveLocation expands ~ and swaps "keyring" for the stored connection
// string. Keyring commands never need the secret.
func resolveLocation(config string, keyringCmd bool) (string, error) {
	if config == constants.ConfigKeyring {
		if keyringCmd {
			return constants.ConfigMemory, nil
		}
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return "", errors.New("no connection string in keyring; run 'campusbuddy keyring set' first")
			}
			return "", err
		}
		return normalizeDSN(connStr), nil
	}
	if storage.IsPostgres(config) || config == constants.ConfigMemory {
		return config, nil
	}
	return utils.ExpandPath(config)
}

// normalizeDSN marks key=value DSNs from the keyring as PostgreSQL.
func normalizeDSN(connStr string) string {
	if !storage.IsPostgres(connStr) && strings.Contains(connStr, "host=") {
		return "postgres:///?" + strings.Join(strings.Fields(connStr), "&")
	}
	return connStr
}

func newStore(location string) (storage.Provider, error) {
	switch storage.DetectKind(location) {
	case storage.KindPostgres:
		// keyring entries were validated by 'keyring set' and may carry a password
		if CLI.Config != constants.ConfigKeyring {
			if _, err := postgres.ValidateConnString(location); err != nil {
				return nil, fmt.Errorf("%w\n       store the connection string with 'campusbuddy keyring set' and use --config keyring, or rely on PGPASSWORD / .pgpass", err)
			}
		}
		return postgres.New(location), nil
	case storage.KindMemory:
		return storage.NewMemoryStore(), nil
	case storage.KindJSON:
		return storage.NewJSONStore(location), nil
	default:
		return sqlite.NewStore(location), nil
	}
}

func configDir(location string) (string, error) {
	switch storage.DetectKind(location) {
	case storage.KindSQLite, storage.KindJSON:
		return filepath.Dir(location), nil
	}
	def, err := utils.ExpandPath(constants.DefaultConfigPath)
	if err != nil {
		return "", err
	}
	return filepath.Dir(def), nil
}
