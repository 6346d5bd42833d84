package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/study-room/studybot/internal/config"
	"github.com/study-room/studybot/internal/domain"
)

func TestBranchSelectKeyboardMarksSelection(t *testing.T) {
	d := domain.NewUploadDialog("file-1", "ds.pdf")
	require.NoError(t, d.SetSubject("Data Structures"))
	d.ToggleBranch("CSE")
	d.ToggleBranch("IT")

	kb := BranchSelectKeyboard(d)

	var labels []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}

	assert.Contains(t, labels, "✅ CSE")
	assert.Contains(t, labels, "✅ IT")
	assert.Contains(t, labels, "ECE")
	assert.NotContains(t, labels, "✅ ECE")

	// Last two rows are the bulk actions and the confirm button.
	n := len(kb.InlineKeyboard)
	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, CallbackSelectAll, kb.InlineKeyboard[n-2][0].CallbackData)
	assert.Equal(t, CallbackClearAll, kb.InlineKeyboard[n-2][1].CallbackData)
	assert.Equal(t, CallbackConfirmBranches, kb.InlineKeyboard[n-1][0].CallbackData)
}

func TestBrowseBranchKeyboardCoversUniverse(t *testing.T) {
	kb := BrowseBranchKeyboard()

	var data []string
	for _, row := range kb.InlineKeyboard {
		assert.LessOrEqual(t, len(row), config.BranchButtonsPerRow)
		for _, btn := range row {
			data = append(data, btn.CallbackData)
		}
	}

	require.Len(t, data, len(config.Branches))
	for _, code := range config.Branches {
		assert.Contains(t, data, CallbackBrowseBranch+code)
	}
}
