package cmd

import (
	"os"

	"github.com/abhisek/studyhall/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyhall",
	Short: "Student progress dashboard in the terminal",
	Long:  "StudyHall — terminal app for students to take quizzes and track academic progress, skills, and badges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYHALL_DB env var)")
	rootCmd.PersistentFlags().String("student", "", "Student ID to sign in as (overrides STUDYHALL_STUDENT env var)")
	rootCmd.Flags().String("quizzes", "", "Directory of custom quiz pack JSON files to add to the catalog")

	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYHALL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveStudentID returns the signed-in student using --student flag,
// then STUDYHALL_STUDENT env var, then the first seeded student.
func resolveStudentID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("student"); id != "" {
		return id
	}
	if id := os.Getenv("STUDYHALL_STUDENT"); id != "" {
		return id
	}
	return "student1"
}
