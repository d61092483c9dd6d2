package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

var schemaFiles = []string{
	"match_result.schema.json",
	"ranking_results.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]

			assert.True(t, hasType && hasSchema, "schema should declare $schema and type")
		})
	}
}

func TestMatchResultSchema_AcceptsValidDocument(t *testing.T) {
	doc := `{
		"overall_score": 0.906,
		"semantic_score": 0.82,
		"skills_score": 0.9,
		"experience_score": 1.0,
		"education_score": 1.0,
		"matched_skills": ["python", "sql"],
		"missing_skills": ["spark"],
		"bonus_skills": [],
		"skill_similarities": {"python": 1.0},
		"version": "1.0",
		"created_at": "2025-06-01T12:00:00Z"
	}`

	err := schemas.ValidateJSONBytes("match_result.schema.json", []byte(doc))

	assert.NoError(t, err)
}

func TestMatchResultSchema_RejectsOutOfRangeScore(t *testing.T) {
	doc := `{
		"overall_score": 1.5,
		"semantic_score": 0.82,
		"skills_score": 0.9,
		"experience_score": 1.0,
		"education_score": 1.0,
		"matched_skills": [],
		"missing_skills": [],
		"bonus_skills": [],
		"version": "1.0",
		"created_at": "2025-06-01T12:00:00Z"
	}`

	err := schemas.ValidateJSONBytes("match_result.schema.json", []byte(doc))

	require.Error(t, err)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestMatchResultSchema_RejectsMissingFields(t *testing.T) {
	err := schemas.ValidateJSONBytes("match_result.schema.json", []byte(`{"overall_score": 0.5}`))

	assert.Error(t, err)
}

func TestRankingResultsSchema_AcceptsValidDocument(t *testing.T) {
	doc := `[
		{
			"rank": 1,
			"candidate_id": "alice",
			"match": {
				"overall_score": 0.9,
				"semantic_score": 0.9,
				"skills_score": 0.9,
				"experience_score": 1.0,
				"education_score": 1.0,
				"matched_skills": ["python"],
				"missing_skills": [],
				"bonus_skills": [],
				"version": "1.0",
				"created_at": "2025-06-01T12:00:00Z"
			},
			"percentile": 0.8,
			"normalized_score": 1.0,
			"version": "1.0",
			"created_at": "2025-06-01T12:00:00Z"
		}
	]`

	err := schemas.ValidateJSONBytes("ranking_results.schema.json", []byte(doc))

	assert.NoError(t, err)
}

func TestRankingResultsSchema_AcceptsEmptyList(t *testing.T) {
	err := schemas.ValidateJSONBytes("ranking_results.schema.json", []byte(`[]`))

	assert.NoError(t, err)
}

func TestRankingResultsSchema_RejectsZeroRank(t *testing.T) {
	doc := `[
		{
			"rank": 0,
			"match": {
				"overall_score": 0.9,
				"semantic_score": 0.9,
				"skills_score": 0.9,
				"experience_score": 1.0,
				"education_score": 1.0,
				"matched_skills": [],
				"missing_skills": [],
				"bonus_skills": [],
				"version": "1.0",
				"created_at": "2025-06-01T12:00:00Z"
			},
			"percentile": 0.0,
			"normalized_score": 0.0,
			"version": "1.0",
			"created_at": "2025-06-01T12:00:00Z"
		}
	]`

	err := schemas.ValidateJSONBytes("ranking_results.schema.json", []byte(doc))

	assert.Error(t, err)
}
