package dataset

// JSON Schemas for the four dataset files. Validation happens before
// unmarshalling so a malformed file fails the load with a useful message
// instead of surfacing as a zero-valued struct later. Extra fields are
// deliberately allowed (additionalProperties is left open) — the dataset
// format carries fields this tool does not use.

var studentsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":        map[string]any{"type": "string", "minLength": 1},
			"firstName": map[string]any{"type": "string"},
			"lastName":  map[string]any{"type": "string"},
			"yearLevel": map[string]any{"type": "integer"},
		},
		"required": []any{"id", "firstName", "lastName"},
	},
}

var assessmentsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":   map[string]any{"type": "string", "minLength": 1},
			"name": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionId": map[string]any{"type": "string", "minLength": 1},
						"position":   map[string]any{"type": "integer"},
					},
					"required": []any{"questionId"},
				},
			},
		},
		"required": []any{"id", "name"},
	},
}

var questionsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":     map[string]any{"type": "string", "minLength": 1},
			"stem":   map[string]any{"type": "string"},
			"type":   map[string]any{"type": "string"},
			"strand": map[string]any{"type": "string"},
			"config": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"options": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":    map[string]any{"type": "string", "minLength": 1},
								"label": map[string]any{"type": "string"},
								"value": map[string]any{"type": "string"},
							},
							"required": []any{"id"},
						},
					},
					"key":  map[string]any{"type": "string"},
					"hint": map[string]any{"type": "string"},
				},
				"required": []any{"options", "key"},
			},
		},
		"required": []any{"id", "stem", "strand", "config"},
	},
}

var responsesSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":           map[string]any{"type": "string", "minLength": 1},
			"assessmentId": map[string]any{"type": "string", "minLength": 1},
			"assigned":     map[string]any{"type": "string"},
			"started":      map[string]any{"type": "string"},
			"completed":    map[string]any{"type": "string"},
			"student": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":        map[string]any{"type": "string", "minLength": 1},
					"yearLevel": map[string]any{"type": "integer"},
				},
				"required": []any{"id"},
			},
			"responses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionId": map[string]any{"type": "string", "minLength": 1},
						"response":   map[string]any{"type": "string"},
					},
					"required": []any{"questionId"},
				},
			},
			"results": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"rawScore": map[string]any{"type": "integer"},
				},
			},
		},
		"required": []any{"id", "assessmentId", "student", "responses"},
	},
}
