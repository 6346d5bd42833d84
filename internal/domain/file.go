package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileType distinguishes study notes from previous question papers.
type FileType string

const (
	FileTypeNotes FileType = "notes"
	FileTypePaper FileType = "paper"
)

// File is a catalog record for one uploaded study material. Records written
// before the multi-branch change carry a single Branch string instead of the
// Branches array; readers must accept both shapes.
type File struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FileName   string             `bson:"fileName" json:"fileName"`
	FileID     string             `bson:"fileId" json:"fileId"`
	Subject    string             `bson:"subjectName" json:"subjectName"`
	Branches   []string           `bson:"branches,omitempty" json:"branches"`
	Branch     string             `bson:"branch,omitempty" json:"branch,omitempty"` // legacy single-branch field
	Regulation string             `bson:"regulation" json:"regulation"`
	Type       FileType           `bson:"type" json:"type"`
	UploadDate time.Time          `bson:"uploadDate" json:"uploadDate"`
	UploadedBy int64              `bson:"uploadedBy" json:"uploadedBy"`
	Downloads  int64              `bson:"downloads" json:"downloads"`
}

// NormalizedBranches returns the branch tag set regardless of which schema
// generation the record was written with.
func (f *File) NormalizedBranches() []string {
	if len(f.Branches) > 0 {
		return f.Branches
	}
	if f.Branch != "" {
		return []string{f.Branch}
	}
	return nil
}

// BranchLabel renders the branch tags for display, falling back to "All"
// for records with no tag at all.
func (f *File) BranchLabel() string {
	branches := f.NormalizedBranches()
	if len(branches) == 0 {
		return "All"
	}
	return strings.Join(branches, ", ")
}
