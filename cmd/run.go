package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhvu/persona/internal/app"
	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/prefs"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/store"
)

// runApp loads content, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	library, err := content.Load()
	if err != nil {
		return fmt.Errorf("load question sets: %w", err)
	}

	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	st, err := store.Open(dbPath(dataDir))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Library:  library,
		Registry: registry.Open(usersPath(dataDir)),
		Answers:  st.Answers(),
		Prefs:    prefs.Open(prefsPath(dataDir)),
	})
}
