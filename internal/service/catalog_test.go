package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBranchFilterMatchesBothSchemas(t *testing.T) {
	filter := branchFilter("CSE")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, bson.A{
		bson.M{"branches": "CSE"},
		bson.M{"branch": "CSE"},
	}, or)
}

func TestBuildFileFilter(t *testing.T) {
	t.Run("no parameters means no constraints", func(t *testing.T) {
		assert.Empty(t, buildFileFilter("", "", "", ""))
	})

	t.Run("each parameter adds its constraint", func(t *testing.T) {
		filter := buildFileFilter("CSE", "R18", "notes", "data")

		assert.Equal(t, "R18", filter["regulation"])
		assert.Equal(t, "notes", filter["type"])
		assert.Contains(t, filter, "$or")

		re, ok := filter["subjectName"].(primitive.Regex)
		require.True(t, ok)
		assert.Equal(t, "data", re.Pattern)
		assert.Equal(t, "i", re.Options)
	})

	t.Run("subject with regex metacharacters is quoted", func(t *testing.T) {
		filter := buildFileFilter("", "", "", "c++ (advanced)")

		re, ok := filter["subjectName"].(primitive.Regex)
		require.True(t, ok)
		assert.Equal(t, `c\+\+ \(advanced\)`, re.Pattern)
	})

	t.Run("only the given parameters appear", func(t *testing.T) {
		filter := buildFileFilter("", "R16", "", "")

		assert.Equal(t, bson.M{"regulation": "R16"}, filter)
	})
}
