package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"gymdesk/internal/adapters/email"
	"gymdesk/internal/adapters/storage"
	attendanceStore "gymdesk/internal/adapters/storage/attendance"
	"gymdesk/internal/adapters/storage/docstore"
	memberStore "gymdesk/internal/adapters/storage/member"
	noticeStore "gymdesk/internal/adapters/storage/notice"
	workoutStore "gymdesk/internal/adapters/storage/workout"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/application/session"
	"gymdesk/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	configPath := flag.String("config", ".", "directory holding config.yaml")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config_load_failed", "error", err)
		os.Exit(1)
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		slog.Error("db_open_failed", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := storage.InitDB(db); err != nil {
		slog.Error("db_init_failed", "error", err)
		os.Exit(1)
	}

	timedDB := storage.NewTimedDB(db)
	docs := docstore.NewSQLiteStore(timedDB)
	ctx := context.Background()

	switch flag.Arg(0) {
	case "export":
		err = runExport(ctx, docs, flag.Arg(1))
	case "import":
		err = runImport(ctx, docs, flag.Arg(1))
	case "remind":
		err = runReminders(ctx, docs, cfg)
	case "session":
		err = runSession(ctx, docs, flag.Arg(1))
	case "", "status":
		err = runStatus(ctx, docs)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want export, import, remind, session or status)\n", flag.Arg(0))
		os.Exit(2)
	}
	if err != nil {
		slog.Error("command_failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

// runExport writes the whole store as one JSON document, bit-exact per
// collection, to path or stdout.
func runExport(ctx context.Context, docs docstore.Store, path string) error {
	data, err := docstore.Export(ctx, docs)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	slog.Info("backup_event", "event", "export_done", "path", path, "bytes", len(data))
	return nil
}

// runImport restores collections from a previously exported JSON document.
// Collections absent from the file are left untouched.
func runImport(ctx context.Context, docs docstore.Store, path string) error {
	if path == "" {
		return fmt.Errorf("import requires a file path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := docstore.Import(ctx, docs, data); err != nil {
		return err
	}
	slog.Info("backup_event", "event", "import_done", "path", path)
	return nil
}

// runReminders performs one attendance-reminder sweep.
func runReminders(ctx context.Context, docs docstore.Store, cfg config.Config) error {
	var sender email.Sender
	if cfg.Email.Provider == "resend" && cfg.Email.APIKey != "" {
		sender = email.NewResendSender(cfg.Email.APIKey, cfg.Email.From)
	} else {
		sender = email.NewNoopSender()
	}

	notices := noticeStore.NewStore(docs)
	result, err := orchestrators.ExecuteSendReminders(ctx,
		orchestrators.SendRemindersInput{AfterDays: cfg.Reminders.AfterDays},
		orchestrators.SendRemindersDeps{
			MemberStore:     memberStore.NewStore(docs),
			AttendanceStore: attendanceStore.NewStore(docs),
			ReminderStore:   notices,
			SettingsStore:   notices,
			Sender:          sender,
		})
	if err != nil {
		return err
	}
	fmt.Printf("reminders sent: %d, skipped: %d\n", result.Sent, result.Skipped)
	return nil
}

// runStatus lists the stored collections and headline counts.
func runStatus(ctx context.Context, docs docstore.Store) error {
	names, err := docs.Names(ctx)
	if err != nil {
		return err
	}

	settings := noticeStore.NewStore(docs).Settings(ctx)
	fmt.Printf("gymdesk %s, gym %q\n", version, settings.GymName)
	fmt.Printf("collections: %d\n", len(names))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}

	workouts := workoutStore.NewStore(docs)
	fmt.Printf("plans: %d, records: %d\n",
		len(workouts.Plans(ctx)), len(workouts.Records(ctx)))
	return nil
}

// runSession reports the workout session state for one user.
func runSession(ctx context.Context, docs docstore.Store, userID string) error {
	if userID == "" {
		return fmt.Errorf("session requires a user ID")
	}

	engine := session.NewEngine(session.Deps{
		Workouts: workoutStore.NewStore(docs),
		Tracker:  &orchestrators.Tracker{AttendanceStore: attendanceStore.NewStore(docs)},
	})
	defer engine.Close()

	state := engine.State(ctx, userID)
	fmt.Printf("user %s: %s\n", userID, state)
	if state == session.StateAbsent {
		return nil
	}
	fmt.Printf("progress: %d%%\n", engine.Progress(ctx, userID))
	return nil
}
