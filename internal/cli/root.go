// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmolinar/cubesim/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "3x3 Rubik's cube simulator",
	Long: `cubesim - a 3x3 Rubik's cube simulator with scramble generation and an
iterative-deepening solver for lightly scrambled states.

Apply move sequences in standard notation, generate scrambles, search for
solutions with live depth progress, and keep a history of solve attempts.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesim/cubesim.db)")
}

// openDB opens the session database at the configured path and applies
// pending migrations.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
