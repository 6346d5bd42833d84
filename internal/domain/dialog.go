package domain

import (
	"strings"
	"time"
)

// DialogKind identifies which multi-turn flow a chat is in the middle of.
type DialogKind string

const (
	DialogSearch  DialogKind = "search"
	DialogRequest DialogKind = "request"
	DialogUpload  DialogKind = "upload"
)

// UploadStep is the position of an upload dialog within its guided flow.
type UploadStep string

const (
	StepSubject    UploadStep = "subject"
	StepBranches   UploadStep = "branches"
	StepRegulation UploadStep = "regulation"
	StepType       UploadStep = "type"
	StepDone       UploadStep = "done"
)

// Dialog is the in-flight conversation state for one chat. A chat has at most
// one dialog at a time; starting a new one discards the old. The zero fields
// of the union are unused for kinds that do not need them.
type Dialog struct {
	Kind DialogKind

	// Search
	SearchType FileType

	// Upload
	Step       UploadStep
	FileID     string
	FileName   string
	Subject    string
	Selected   []string
	Regulation string
	Type       string
}

func NewSearchDialog(t FileType) *Dialog {
	return &Dialog{Kind: DialogSearch, SearchType: t}
}

func NewRequestDialog() *Dialog {
	return &Dialog{Kind: DialogRequest}
}

// NewUploadDialog captures the received document reference and starts the
// guided upload at the subject step.
func NewUploadDialog(fileID, fileName string) *Dialog {
	return &Dialog{
		Kind:     DialogUpload,
		Step:     StepSubject,
		FileID:   fileID,
		FileName: fileName,
	}
}

// InBranchSelection reports whether the dialog is sitting in the branch
// multi-select sub-dialog.
func (d *Dialog) InBranchSelection() bool {
	return d.Kind == DialogUpload && d.Step == StepBranches
}

// SetSubject records the subject and advances to branch selection.
func (d *Dialog) SetSubject(text string) error {
	if d.Kind != DialogUpload || d.Step != StepSubject {
		return ErrWrongDialogStep
	}
	d.Subject = strings.TrimSpace(text)
	d.Step = StepBranches
	return nil
}

// ToggleBranch flips membership of code in the selection and reports whether
// the code is selected afterwards. Toggling twice restores the prior set.
func (d *Dialog) ToggleBranch(code string) bool {
	for i, b := range d.Selected {
		if b == code {
			d.Selected = append(d.Selected[:i], d.Selected[i+1:]...)
			return false
		}
	}
	d.Selected = append(d.Selected, code)
	return true
}

// SelectAllBranches replaces the selection with the full branch universe.
func (d *Dialog) SelectAllBranches(universe []string) {
	d.Selected = append([]string(nil), universe...)
}

func (d *Dialog) ClearBranches() {
	d.Selected = nil
}

func (d *Dialog) HasBranch(code string) bool {
	for _, b := range d.Selected {
		if b == code {
			return true
		}
	}
	return false
}

// SelectionLabel renders the current selection for the sub-dialog message.
func (d *Dialog) SelectionLabel() string {
	if len(d.Selected) == 0 {
		return "None"
	}
	return strings.Join(d.Selected, ", ")
}

// ConfirmBranches advances past the branch sub-dialog. An empty selection is
// rejected and leaves the dialog where it is.
func (d *Dialog) ConfirmBranches() error {
	if !d.InBranchSelection() {
		return ErrWrongDialogStep
	}
	if len(d.Selected) == 0 {
		return ErrNoBranchesSelected
	}
	d.Step = StepRegulation
	return nil
}

// SetRegulation records the regulation and advances to the type step.
// Casing is normalized when the record is assembled, not here, so the admin
// sees their own input echoed back while the dialog is still open.
func (d *Dialog) SetRegulation(text string) error {
	if d.Kind != DialogUpload || d.Step != StepRegulation {
		return ErrWrongDialogStep
	}
	d.Regulation = strings.TrimSpace(text)
	d.Step = StepType
	return nil
}

// SetType records the material type and completes the guided flow.
func (d *Dialog) SetType(text string) error {
	if d.Kind != DialogUpload || d.Step != StepType {
		return ErrWrongDialogStep
	}
	d.Type = strings.TrimSpace(text)
	d.Step = StepDone
	return nil
}

// File assembles the catalog record from a completed upload dialog.
// Regulation is stored upper-cased and type lower-cased.
func (d *Dialog) File(uploadedBy int64) *File {
	return &File{
		FileName:   d.FileName,
		FileID:     d.FileID,
		Subject:    d.Subject,
		Branches:   append([]string(nil), d.Selected...),
		Regulation: strings.ToUpper(d.Regulation),
		Type:       FileType(strings.ToLower(d.Type)),
		UploadDate: time.Now(),
		UploadedBy: uploadedBy,
	}
}
