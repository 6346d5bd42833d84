package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a catalog record for anyone who has ever messaged the bot.
// It is upserted on every inbound event from that identity.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TelegramID    int64              `bson:"userId" json:"userId"`
	Username      string             `bson:"username" json:"username"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	JoinDate      time.Time          `bson:"joinDate" json:"joinDate"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	LastActive    time.Time          `bson:"lastActive" json:"lastActive"`
	DownloadCount int64              `bson:"downloadCount" json:"downloadCount"`
}

func (u *User) DisplayName() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return "Unknown"
}
