package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestRejected  RequestStatus = "rejected"
)

// Request is a student's petition for a material that is not in the catalog.
// Status transitions past pending are an admin concern handled outside the bot.
type Request struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      int64              `bson:"userId" json:"userId"`
	Username    string             `bson:"username" json:"username"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	Subject     string             `bson:"subjectName" json:"subjectName"`
	Branch      string             `bson:"branch" json:"branch"`
	Regulation  string             `bson:"regulation" json:"regulation"`
	Type        string             `bson:"type" json:"type"`
	Description string             `bson:"description" json:"description"`
	RequestDate time.Time          `bson:"requestDate" json:"requestDate"`
	Status      RequestStatus      `bson:"status" json:"status"`
}

// ParseRequest parses the pipe-delimited request form
// "Subject | Branch | Regulation | Type | Description". The description is
// optional; fewer than four fields is a format error.
func ParseRequest(text string) (*Request, error) {
	parts := strings.Split(text, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 4 {
		return nil, ErrBadRequestFormat
	}

	description := ""
	if len(parts) > 4 {
		description = parts[4]
	}

	return &Request{
		Subject:     parts[0],
		Branch:      parts[1],
		Regulation:  parts[2],
		Type:        parts[3],
		Description: description,
	}, nil
}
