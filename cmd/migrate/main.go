// Command migrate applies the SQL files in the migrations directory, in
// lexical order, each inside its own transaction.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"

	"github.com/miroldev/vendure/internal/config"
	"github.com/miroldev/vendure/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	dir := flag.String("dir", "migrations", "directory of .sql migration files")
	listOnly := flag.Bool("list", false, "list existing tax tables and exit")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		fatal("load config: %v", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	if cfg.Database.URL == "" {
		fatal("database url is required (config database.url or DATABASE_URL)")
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		fatal("connect: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fatal("ping: %v", err)
	}
	logger.Info("connected to database")

	if *listOnly {
		if err := listTables(db); err != nil {
			fatal("list tables: %v", err)
		}
		return
	}

	applied, failed, err := applyDir(db, *dir)
	if err != nil {
		fatal("%v", err)
	}
	logger.Info("migrations complete", "applied", applied, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func listTables(db *sql.DB) error {
	rows, err := db.Query(
		"SELECT tablename FROM pg_tables WHERE schemaname='public' AND tablename LIKE 'tax_%' ORDER BY tablename")
	if err != nil {
		return err
	}
	defer rows.Close()
	n := 0
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return err
		}
		fmt.Println(" ", t)
		n++
	}
	fmt.Printf("Total: %d tables\n", n)
	return rows.Err()
}

func applyDir(db *sql.DB, dir string) (applied, failed int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, fmt.Errorf("read migrations dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f))
		if err != nil {
			return applied, failed, fmt.Errorf("read %s: %w", f, err)
		}
		if strings.TrimSpace(string(data)) == "" {
			continue
		}
		if err := applyOne(db, string(data)); err != nil {
			logger.Error("migration failed", "file", f, "error", err.Error())
			failed++
			continue
		}
		logger.Info("migration applied", "file", f)
		applied++
	}
	return applied, failed, nil
}

func applyOne(db *sql.DB, stmt string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if _, err := tx.Exec(stmt); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "migrate: "+format+"\n", args...)
	os.Exit(1)
}
