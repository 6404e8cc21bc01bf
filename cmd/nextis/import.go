// Import command: ingest spreadsheets from the command line without
// going through the HTTP upload.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BasharMawase/Nextis-Admin/internal/ingest"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import client rows from CSV or Excel files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		store, _, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		total := 0
		for _, path := range args {
			rows, err := ingest.ParseFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "import: %s: %v\n", path, err)
				os.Exit(exitUserError)
			}
			name := filepath.Base(path)
			for i := range rows {
				rows[i].SourceFile = name
			}

			n, err := store.InsertClients(rows)
			if err != nil {
				fmt.Fprintf(os.Stderr, "import: %s: %v\n", path, err)
				os.Exit(exitSysError)
			}

			info, err := os.Stat(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "import: %s: %v\n", path, err)
				os.Exit(exitSysError)
			}
			if err := store.RegisterSourceFile(name, name, info.Size()); err != nil {
				fmt.Fprintf(os.Stderr, "import: %s: %v\n", path, err)
				os.Exit(exitSysError)
			}

			log.Info().Str("file", name).Int("rows", n).Msg("imported")
			total += n
		}

		fmt.Printf("Imported %d rows from %d files\n", total, len(args))
		return nil
	},
}
