package models

// Account is a registered user. The password is stored and compared in
// plaintext to preserve the original demo behavior; a real deployment swaps
// this for a salted-hash comparison behind the same auth interface.
type Account struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	DOB       string
}

// Message labels. Every message in the shared mailbox carries exactly one.
const (
	LabelInbox = "inbox"
	LabelSent  = "sent"
)

// Message is a single entry in the shared mailbox. IDs are unique within the
// mailbox at all times.
type Message struct {
	ID        int    `json:"id"`
	From      string `json:"from"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Label     string `json:"label"`
	Read      bool   `json:"read"`
	Starred   bool   `json:"starred"`
	Timestamp string `json:"timestamp,omitempty"`
}

// MailboxCounts is the aggregate view over the whole mailbox.
// Unread counts messages that are not read and not labeled sent.
type MailboxCounts struct {
	Total   int `json:"total"`
	Unread  int `json:"unread"`
	Inbox   int `json:"inbox"`
	Sent    int `json:"sent"`
	Starred int `json:"starred"`
}

// OutboundEmail is the payload handed to a delivery transport when a user
// sends mail. Delivery is best-effort and never blocks recording the message.
type OutboundEmail struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
