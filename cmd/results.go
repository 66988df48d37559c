package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/abhisek/studyhall/internal/store"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show quiz results history",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		limit, _ := cmd.Flags().GetInt("limit")

		recs, err := st.Results().ListResults(cmd.Context(), studentID, limit)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(recs) == 0 {
			fmt.Printf("No results yet for %s.\n", studentID)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tQUIZ\tSUBJECT\tSCORE\tCORRECT")
		for _, r := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%d/%d\n",
				r.SubmittedAt.Local().Format("2006-01-02 15:04"),
				r.QuizTitle, r.Subject, r.Score, r.Correct, r.Total)
		}
		return w.Flush()
	},
}

func init() {
	resultsCmd.Flags().Int("limit", 20, "Maximum number of results to show (0 = all)")
}
