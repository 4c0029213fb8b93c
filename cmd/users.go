package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/registry"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users and their results",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		reg := registry.Open(usersPath(dataDir))
		users, err := reg.ListAll()
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No registered users.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USERNAME\tEMAIL\tMBTI\tDISC")
		for i := range users {
			u := &users[i]
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				u.Username, u.Email,
				codeOrDash(u, content.MBTI),
				codeOrDash(u, content.DISC))
		}
		return w.Flush()
	},
}

func codeOrDash(u *registry.UserProfile, inst content.Instrument) string {
	if code, ok := u.TypeFor(inst); ok {
		return code
	}
	return "-"
}
