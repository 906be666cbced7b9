package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/sbilibin2017/gw-tools-directory/internal/repositories"
	"github.com/sbilibin2017/gw-tools-directory/internal/services"
	"github.com/spf13/cobra"
)

var revoke bool

// adminCmd represents the admin command
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage administrator access",
	Long: `Administrators are users whose is_admin flag is set. A user row exists once the
person has recorded a download or review, so they must do that before being granted.`,
}

var adminCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "List administrators",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		svc := services.NewAdminService(repositories.NewStatsRepository(db), repositories.NewUserRepository(db))
		admins, err := svc.CheckAdmins(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return json.NewEncoder(out).Encode(admins)
		}
		if len(admins) == 0 {
			fmt.Fprintln(out, "No administrators. Run `toolsctl admin grant <email>`.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tUSERNAME\tID")
		for _, a := range admins {
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.Email, a.Username, a.ID)
		}
		return w.Flush()
	},
}

var adminGrantCmd = &cobra.Command{
	Use:   "grant <email>",
	Short: "Grant (or with --revoke, remove) administrator access",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		svc := services.NewAdminService(repositories.NewStatsRepository(db), repositories.NewUserRepository(db))
		if err := svc.GrantAdmin(cmd.Context(), args[0], !revoke); err != nil {
			return err
		}

		if revoke {
			fmt.Fprintf(cmd.OutOrStdout(), "Revoked admin from %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Granted admin to %s\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminCheckCmd, adminGrantCmd)

	adminGrantCmd.Flags().BoolVar(&revoke, "revoke", false, "Clear the admin flag instead of setting it")
}
