package model

type SessionAction string

const (
	DefaultAction   SessionAction = ""
	ExpectingAuthor SessionAction = "expecting_author"
	ExpectingEmail  SessionAction = "expecting_email"
)

type Session struct {
	Action    SessionAction
	BookTitle string
	Author    string
}
