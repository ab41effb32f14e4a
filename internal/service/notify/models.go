package notify

// Message confirmation message addressed to the parent.
type Message struct {
	To      string
	Subject string
	Body    string
}
