package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studyhall/internal/app"
	"github.com/abhisek/studyhall/internal/mockapi"
	"github.com/abhisek/studyhall/internal/quiz"
	"github.com/abhisek/studyhall/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the data layer, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	api := mockapi.New()
	api.SetResultSink(st.Results())

	if dir, _ := cmd.Flags().GetString("quizzes"); dir != "" {
		packs, err := quiz.LoadPackDir(dir)
		if err != nil {
			return fmt.Errorf("load quiz packs: %w", err)
		}
		api.AddQuizzes(packs)
	}

	studentID := resolveStudentID(cmd)

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	student, err := api.FetchStudentProfile(ctx, studentID)
	if err != nil {
		return fmt.Errorf("sign in as %s: %w", studentID, err)
	}

	return app.Run(app.Options{
		API:          api,
		Results:      st.Results(),
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentGrade: student.Grade,
	})
}
