package dialog

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/study-room/studybot/internal/domain"
)

func TestPutReplacesExistingDialog(t *testing.T) {
	s := NewMemoryStore()

	s.Put(1, domain.NewSearchDialog(domain.FileTypeNotes))
	s.Put(1, domain.NewUploadDialog("file-1", "ds.pdf"))

	d, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, domain.DialogUpload, d.Kind)
}

func TestRemove(t *testing.T) {
	s := NewMemoryStore()

	s.Put(1, domain.NewRequestDialog())
	s.Remove(1)

	_, ok := s.Get(1)
	assert.False(t, ok)

	// Removing an absent chat is a no-op.
	s.Remove(2)
}

func TestUpdateReportsMissingDialog(t *testing.T) {
	s := NewMemoryStore()

	called := false
	ok := s.Update(1, func(*domain.Dialog) { called = true })
	assert.False(t, ok)
	assert.False(t, called)
}

func TestChatsAreIndependent(t *testing.T) {
	s := NewMemoryStore()

	s.Put(1, domain.NewSearchDialog(domain.FileTypeNotes))
	s.Put(2, domain.NewSearchDialog(domain.FileTypePaper))
	s.Remove(1)

	_, ok := s.Get(1)
	assert.False(t, ok)
	d, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, domain.FileTypePaper, d.SearchType)
}

func TestCompleteConsumesFinishedDialog(t *testing.T) {
	s := NewMemoryStore()
	s.Put(1, domain.NewUploadDialog("file-1", "ds.pdf"))

	ok := s.Complete(1, func(*domain.Dialog) bool { return false })
	require.True(t, ok)
	_, present := s.Get(1)
	assert.True(t, present, "an unfinished dialog stays in the store")

	ok = s.Complete(1, func(*domain.Dialog) bool { return true })
	require.True(t, ok)
	_, present = s.Get(1)
	assert.False(t, present, "a finished dialog is removed")

	called := false
	ok = s.Complete(1, func(*domain.Dialog) bool { called = true; return true })
	assert.False(t, ok)
	assert.False(t, called)
}

func TestConcurrentCompletionObservedOnce(t *testing.T) {
	s := NewMemoryStore()
	s.Put(1, domain.NewUploadDialog("file-1", "ds.pdf"))

	// Simulates two text replies racing past the final upload step: only one
	// may observe the terminal state and trigger the save.
	var finished int32
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Complete(1, func(*domain.Dialog) bool { return true }) {
				atomic.AddInt32(&finished, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, finished)
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	s := NewMemoryStore()
	d := domain.NewUploadDialog("file-1", "ds.pdf")
	require.NoError(t, d.SetSubject("Data Structures"))
	s.Put(1, d)

	const iterations = 100
	var wg sync.WaitGroup
	wg.Add(2)
	for g := 0; g < 2; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				s.Update(1, func(d *domain.Dialog) {
					d.ToggleBranch("CSE")
				})
			}
		}()
	}
	wg.Wait()

	// An even number of toggles must land back on the empty selection.
	got, ok := s.Get(1)
	require.True(t, ok)
	assert.False(t, got.HasBranch("CSE"))
}
