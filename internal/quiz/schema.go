package quiz

// PackSchema is the JSON Schema for a quiz pack file: a top-level array
// of quiz definitions. Structural rules that a schema cannot express
// (correct-option resolution, ID uniqueness) are enforced by Validate.
var PackSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "minLength": 1},
			"title":       map[string]any{"type": "string", "minLength": 1},
			"subject":     map[string]any{"type": "string"},
			"gradeLevel":  map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"timeLimit": map[string]any{
				"type":    "integer",
				"minimum": MinTimeLimit,
				"maximum": MaxTimeLimit,
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "string", "minLength": 1},
						"text": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":   map[string]any{"type": "string", "minLength": 1},
									"text": map[string]any{"type": "string"},
								},
								"required":             []any{"id", "text"},
								"additionalProperties": false,
							},
						},
						"correctOptionId": map[string]any{"type": "string", "minLength": 1},
					},
					"required":             []any{"id", "text", "options", "correctOptionId"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"id", "title", "subject", "gradeLevel", "timeLimit", "questions"},
		"additionalProperties": false,
	},
}
