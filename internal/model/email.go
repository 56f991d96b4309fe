package model

// EmailDispatch is a single outbound email. It is built from a ContactMessage,
// sent once and then discarded.
type EmailDispatch struct {
	To      string
	Subject string
	HTML    string
	Text    string
	ReplyTo string // optional
}
