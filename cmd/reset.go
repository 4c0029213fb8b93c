package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <username-or-email> <instrument>",
	Short: "Discard a user's saved answers and result for an instrument",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst := content.Instrument(args[1])
		if !inst.Valid() {
			return fmt.Errorf("unknown instrument %q (want MBTI or DISC)", args[1])
		}

		dataDir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		reg := registry.Open(usersPath(dataDir))
		user, err := reg.Find(args[0])
		if err != nil {
			return fmt.Errorf("look up user: %w", err)
		}
		if user == nil {
			return fmt.Errorf("no user matches %q", args[0])
		}

		st, err := store.Open(dbPath(dataDir))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Answers().Delete(cmd.Context(), user.Key(), inst); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}

		user.SetProgress(inst, 0)
		delete(user.Types, inst)
		if err := reg.Upsert(user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		fmt.Printf("Reset %s data for %s.\n", inst, user.Username)
		return nil
	},
}
