package quiz

import (
	"strings"
	"testing"
)

func validQuiz() Quiz {
	return Quiz{
		ID:         "quiz1",
		Title:      "Fractions",
		Subject:    "Math",
		GradeLevel: "7",
		TimeLimit:  15,
		Questions: []Question{
			{
				ID:   "q1",
				Text: "1/2 + 1/4 = ?",
				Options: []Option{
					{ID: "a", Text: "3/4"},
					{ID: "b", Text: "2/6"},
				},
				CorrectOptionID: "a",
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	z := validQuiz()
	if err := z.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Quiz)
		wantSub string
	}{
		{"empty id", func(z *Quiz) { z.ID = " " }, "ID is empty"},
		{"time limit low", func(z *Quiz) { z.TimeLimit = 0 }, "time limit"},
		{"time limit high", func(z *Quiz) { z.TimeLimit = 121 }, "time limit"},
		{"no questions", func(z *Quiz) { z.Questions = nil }, "no questions"},
		{"no options", func(z *Quiz) { z.Questions[0].Options = nil }, "no options"},
		{"dangling correct option", func(z *Quiz) { z.Questions[0].CorrectOptionID = "z" }, "does not resolve"},
		{"duplicate option", func(z *Quiz) {
			z.Questions[0].Options = append(z.Questions[0].Options, Option{ID: "a", Text: "dup"})
		}, "duplicate option"},
		{"duplicate question", func(z *Quiz) {
			z.Questions = append(z.Questions, z.Questions[0])
		}, "duplicate question"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			z := validQuiz()
			c.mutate(&z)
			err := z.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), c.wantSub) {
				t.Errorf("error %q does not mention %q", err, c.wantSub)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	z := validQuiz()

	if !(Filter{}).Matches(&z) {
		t.Error("zero filter must match everything")
	}
	if !(Filter{GradeLevel: "7", Subject: "Math"}).Matches(&z) {
		t.Error("exact filter should match")
	}
	if (Filter{GradeLevel: "8"}).Matches(&z) {
		t.Error("grade mismatch should not match")
	}
	if (Filter{Subject: "History"}).Matches(&z) {
		t.Error("subject mismatch should not match")
	}
}

func TestParsePack_ValidatesSchemaAndStructure(t *testing.T) {
	good := `[
	  {
	    "id": "pack-quiz",
	    "title": "Geometry Basics",
	    "subject": "Geometry",
	    "gradeLevel": "8",
	    "timeLimit": 10,
	    "questions": [
	      {
	        "id": "q1",
	        "text": "Angles of a triangle sum to?",
	        "options": [
	          {"id": "a", "text": "90"},
	          {"id": "b", "text": "180"}
	        ],
	        "correctOptionId": "b"
	      }
	    ]
	  }
	]`

	quizzes, err := ParsePack([]byte(good))
	if err != nil {
		t.Fatalf("ParsePack: %v", err)
	}
	if len(quizzes) != 1 || quizzes[0].ID != "pack-quiz" {
		t.Errorf("parsed %d quizzes, want the one pack quiz", len(quizzes))
	}

	// Schema catches missing required fields.
	if _, err := ParsePack([]byte(`[{"id": "x"}]`)); err == nil {
		t.Error("expected schema validation error for missing fields")
	}

	// Validate catches what the schema cannot: dangling correct option.
	dangling := strings.Replace(good, `"correctOptionId": "b"`, `"correctOptionId": "zz"`, 1)
	if _, err := ParsePack([]byte(dangling)); err == nil {
		t.Error("expected structural error for dangling correct option")
	}

	if _, err := ParsePack([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadPackDir_MissingDirIsNotAnError(t *testing.T) {
	quizzes, err := LoadPackDir(t.TempDir() + "/does-not-exist")
	if err != nil {
		t.Errorf("LoadPackDir on missing dir: %v", err)
	}
	if quizzes != nil {
		t.Errorf("expected no quizzes, got %d", len(quizzes))
	}
}
