package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedBranches(t *testing.T) {
	tests := []struct {
		name string
		file File
		want []string
	}{
		{
			name: "multi-branch record",
			file: File{Branches: []string{"CSE", "IT"}},
			want: []string{"CSE", "IT"},
		},
		{
			name: "legacy single-branch record",
			file: File{Branch: "ECE"},
			want: []string{"ECE"},
		},
		{
			name: "array wins when both are set",
			file: File{Branches: []string{"CSE"}, Branch: "ECE"},
			want: []string{"CSE"},
		},
		{
			name: "untagged record",
			file: File{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.file.NormalizedBranches())
		})
	}
}

func TestBranchLabel(t *testing.T) {
	assert.Equal(t, "CSE, IT", (&File{Branches: []string{"CSE", "IT"}}).BranchLabel())
	assert.Equal(t, "ECE", (&File{Branch: "ECE"}).BranchLabel())
	assert.Equal(t, "All", (&File{}).BranchLabel())
}
