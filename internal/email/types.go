package email

// Email is a plain-text outbound message.
type Email struct {
	To      []string
	Subject string
	Body    string
}
