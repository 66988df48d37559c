package mockapi

import (
	"time"

	"github.com/abhisek/studyhall/internal/badges"
	"github.com/abhisek/studyhall/internal/quiz"
	"github.com/abhisek/studyhall/internal/skills"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedStudents() map[string]Student {
	return map[string]Student{
		"student1": {ID: "student1", Name: "Alex Johnson", Grade: "7", Section: "A", Email: "alex.j@example.com", JoinedDate: day(2024, 9, 1)},
		"student2": {ID: "student2", Name: "Jamie Smith", Grade: "8", Section: "B", Email: "jamie.s@example.com", JoinedDate: day(2024, 9, 1)},
		"student3": {ID: "student3", Name: "Taylor Wilson", Grade: "9", Section: "A", Email: "taylor.w@example.com", JoinedDate: day(2024, 9, 1)},
	}
}

func seedAcademicScores() map[string][]AcademicScore {
	return map[string][]AcademicScore{
		"student1": {
			{ID: "score1", Topic: "Algebraic Expressions", Score: 85, Date: day(2024, 9, 15)},
			{ID: "score2", Topic: "Linear Equations", Score: 92, Date: day(2024, 9, 22)},
			{ID: "score3", Topic: "Inequalities", Score: 78, Date: day(2024, 9, 29)},
		},
		"student2": {
			{ID: "score4", Topic: "Algebraic Expressions", Score: 90, Date: day(2024, 9, 15)},
			{ID: "score5", Topic: "Linear Equations", Score: 88, Date: day(2024, 9, 22)},
			{ID: "score6", Topic: "Inequalities", Score: 95, Date: day(2024, 9, 29)},
		},
		"student3": {
			{ID: "score7", Topic: "Algebraic Expressions", Score: 75, Date: day(2024, 9, 15)},
			{ID: "score8", Topic: "Linear Equations", Score: 82, Date: day(2024, 9, 22)},
			{ID: "score9", Topic: "Inequalities", Score: 88, Date: day(2024, 9, 29)},
		},
	}
}

func seedActivities() map[string][]PhysicalActivity {
	return map[string][]PhysicalActivity{
		"student1": {
			{ID: "activity1", Type: "Basketball", Duration: 60, Date: day(2024, 9, 14)},
			{ID: "activity2", Type: "Swimming", Duration: 45, Date: day(2024, 9, 21)},
			{ID: "activity3", Type: "Running", Duration: 30, Date: day(2024, 9, 28)},
		},
		"student2": {
			{ID: "activity4", Type: "Soccer", Duration: 90, Date: day(2024, 9, 14)},
			{ID: "activity5", Type: "Tennis", Duration: 60, Date: day(2024, 9, 21)},
			{ID: "activity6", Type: "Cycling", Duration: 45, Date: day(2024, 9, 28)},
		},
		"student3": {
			{ID: "activity7", Type: "Volleyball", Duration: 75, Date: day(2024, 9, 14)},
			{ID: "activity8", Type: "Yoga", Duration: 60, Date: day(2024, 9, 21)},
			{ID: "activity9", Type: "Swimming", Duration: 45, Date: day(2024, 9, 28)},
		},
	}
}

func seedSkillIndices() map[string][]skills.Index {
	return map[string][]skills.Index{
		"student1": {
			{SkillType: skills.ProblemSolving, Score: 82},
			{SkillType: skills.CriticalThinking, Score: 78},
			{SkillType: skills.Creativity, Score: 90},
			{SkillType: skills.Endurance, Score: 85},
		},
		"student2": {
			{SkillType: skills.ProblemSolving, Score: 88},
			{SkillType: skills.CriticalThinking, Score: 92},
			{SkillType: skills.Creativity, Score: 75},
			{SkillType: skills.Endurance, Score: 94},
		},
		"student3": {
			{SkillType: skills.ProblemSolving, Score: 76},
			{SkillType: skills.CriticalThinking, Score: 85},
			{SkillType: skills.Creativity, Score: 95},
			{SkillType: skills.Endurance, Score: 80},
		},
	}
}

func seedBadges() map[string][]badges.Badge {
	return map[string][]badges.Badge{
		"student1": {
			{ID: "badge1", Name: "Math Whiz", Description: "Scored 90+ in Algebra", EarnedAt: day(2024, 9, 22)},
			{ID: "badge2", Name: "Team Player", Description: "Participated in 5 team activities", EarnedAt: day(2024, 9, 28)},
		},
		"student2": {
			{ID: "badge3", Name: "Quiz Master", Description: "Completed 10 quizzes with 85%+ score", EarnedAt: day(2024, 9, 25)},
			{ID: "badge4", Name: "Endurance Champion", Description: "Maintained high activity levels for 3 weeks", EarnedAt: day(2024, 9, 30)},
		},
		"student3": {
			{ID: "badge5", Name: "Creative Genius", Description: "Top creativity score in class", EarnedAt: day(2024, 9, 20)},
			{ID: "badge6", Name: "Quick Learner", Description: "Improved scores by 20% in 2 weeks", EarnedAt: day(2024, 9, 27)},
		},
	}
}

func seedQuizzes() []quiz.Quiz {
	return []quiz.Quiz{
		{
			ID:          "quiz1",
			Title:       "Algebraic Expressions",
			Subject:     "Algebra",
			GradeLevel:  "7",
			Description: "Test your knowledge of algebraic expressions and operations",
			TimeLimit:   20,
			Questions: []quiz.Question{
				{
					ID:   "q1",
					Text: "Simplify the expression: 3(x + 2) - 2(x - 1)",
					Options: []quiz.Option{
						{ID: "a", Text: "x + 8"},
						{ID: "b", Text: "x + 4"},
						{ID: "c", Text: "5x + 4"},
						{ID: "d", Text: "5x + 8"},
					},
					CorrectOptionID: "a",
				},
				{
					ID:   "q2",
					Text: "If x = 3, what is the value of 2x² - 5x + 1?",
					Options: []quiz.Option{
						{ID: "a", Text: "4"},
						{ID: "b", Text: "10"},
						{ID: "c", Text: "7"},
						{ID: "d", Text: "13"},
					},
					CorrectOptionID: "a",
				},
				{
					ID:   "q3",
					Text: "Factor the expression: x² - 9",
					Options: []quiz.Option{
						{ID: "a", Text: "(x - 3)(x - 3)"},
						{ID: "b", Text: "(x - 3)(x + 3)"},
						{ID: "c", Text: "(x + 9)(x - 1)"},
						{ID: "d", Text: "(x - 9)(x + 1)"},
					},
					CorrectOptionID: "b",
				},
			},
		},
		{
			ID:          "quiz2",
			Title:       "Linear Equations",
			Subject:     "Algebra",
			GradeLevel:  "8",
			Description: "Test your understanding of linear equations and their applications",
			TimeLimit:   25,
			Questions: []quiz.Question{
				{
					ID:   "q1",
					Text: "Solve for x: 2x + 5 = 13",
					Options: []quiz.Option{
						{ID: "a", Text: "x = 3"},
						{ID: "b", Text: "x = 4"},
						{ID: "c", Text: "x = 5"},
						{ID: "d", Text: "x = 6"},
					},
					CorrectOptionID: "b",
				},
				{
					ID:   "q2",
					Text: "A train travels at a speed of 60 mph. How long will it take to travel 240 miles?",
					Options: []quiz.Option{
						{ID: "a", Text: "3 hours"},
						{ID: "b", Text: "4 hours"},
						{ID: "c", Text: "5 hours"},
						{ID: "d", Text: "6 hours"},
					},
					CorrectOptionID: "b",
				},
				{
					ID:   "q3",
					Text: "What is the slope of the line passing through the points (2, 3) and (4, 7)?",
					Options: []quiz.Option{
						{ID: "a", Text: "1"},
						{ID: "b", Text: "2"},
						{ID: "c", Text: "3"},
						{ID: "d", Text: "4"},
					},
					CorrectOptionID: "b",
				},
			},
		},
		{
			ID:          "quiz3",
			Title:       "Cells and Organisms",
			Subject:     "Science",
			GradeLevel:  "9",
			Description: "Review the building blocks of living things",
			TimeLimit:   15,
			Questions: []quiz.Question{
				{
					ID:   "q1",
					Text: "Which organelle is known as the powerhouse of the cell?",
					Options: []quiz.Option{
						{ID: "a", Text: "Nucleus"},
						{ID: "b", Text: "Mitochondrion"},
						{ID: "c", Text: "Ribosome"},
						{ID: "d", Text: "Golgi apparatus"},
					},
					CorrectOptionID: "b",
				},
				{
					ID:   "q2",
					Text: "What do plant cells have that animal cells lack?",
					Options: []quiz.Option{
						{ID: "a", Text: "Cell membrane"},
						{ID: "b", Text: "Cytoplasm"},
						{ID: "c", Text: "Cell wall"},
						{ID: "d", Text: "Mitochondria"},
					},
					CorrectOptionID: "c",
				},
				{
					ID:   "q3",
					Text: "Which process do plants use to make food from sunlight?",
					Options: []quiz.Option{
						{ID: "a", Text: "Respiration"},
						{ID: "b", Text: "Photosynthesis"},
						{ID: "c", Text: "Fermentation"},
						{ID: "d", Text: "Transpiration"},
					},
					CorrectOptionID: "b",
				},
			},
		},
	}
}
