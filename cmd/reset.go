package cmd

import (
	"fmt"

	"github.com/abhisek/studyhall/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete local quiz results history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes your local results history. Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		studentID := resolveStudentID(cmd)
		res, err := st.DB().ExecContext(cmd.Context(), "DELETE FROM results WHERE student_id = ?", studentID)
		if err != nil {
			return fmt.Errorf("delete results: %w", err)
		}
		n, _ := res.RowsAffected()
		fmt.Printf("Deleted %d result(s) for %s.\n", n, studentID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion without prompting")
}
