package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Request
		wantErr error
	}{
		{
			name:    "too few fields",
			input:   "DBMS | CSE | R18",
			wantErr: ErrBadRequestFormat,
		},
		{
			name:  "four fields without description",
			input: "DBMS | CSE | R18 | notes",
			want: &Request{
				Subject:    "DBMS",
				Branch:     "CSE",
				Regulation: "R18",
				Type:       "notes",
			},
		},
		{
			name:  "five fields with description",
			input: "Machine Learning | AIML | R18 | notes | need full notes",
			want: &Request{
				Subject:     "Machine Learning",
				Branch:      "AIML",
				Regulation:  "R18",
				Type:        "notes",
				Description: "need full notes",
			},
		},
		{
			name:  "whitespace is trimmed per field",
			input: "  DBMS|CSE  |  R18|paper  ",
			want: &Request{
				Subject:    "DBMS",
				Branch:     "CSE",
				Regulation: "R18",
				Type:       "paper",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
