package domain

import "time"

// JournalUserID is the subject of every session. The journal has exactly one user.
const JournalUserID = "1"

// JournalUserName is the display name returned with the session.
const JournalUserName = "User"

// Session is an issued, signed session token.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
