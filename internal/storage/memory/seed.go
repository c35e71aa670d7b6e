package memory

import "github.com/ka-tch/webmail/internal/models"

// Seed loads the demo inbox used for local development and manual testing.
func (m *Mailbox) Seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, []models.Message{
		{ID: 1, From: "alice@ka-tch.com", Subject: "Welcome!", Body: "Hello and welcome to Ka-tch Mail! We're excited to have you on board. This is your new home for all communications.", Label: models.LabelInbox, Read: false, Starred: true, Timestamp: "2026-01-08T09:00:00Z"},
		{ID: 2, From: "bob@outlook.com", Subject: "Meeting Tomorrow", Body: "Hey! Let's meet tomorrow at 3pm to discuss the project. Looking forward to it!", Label: models.LabelInbox, Read: false, Starred: false, Timestamp: "2026-01-08T08:30:00Z"},
		{ID: 3, From: "carol@company.org", Subject: "(No Subject)", Body: "", Label: models.LabelInbox, Read: true, Starred: false, Timestamp: "2026-01-07T14:20:00Z"},
		{ID: 4, From: "dave@ka-tch.com", Subject: "Quarterly Report Review", Body: "Please review the attached quarterly report and provide your feedback by EOD Friday.", Label: models.LabelInbox, Read: false, Starred: true, Timestamp: "2026-01-07T11:00:00Z"},
		{ID: 5, From: "eve@sub.example.com", Subject: "Special chars !@#$%^&*()_+", Body: "Body with special characters: <>&\"'", Label: models.LabelInbox, Read: true, Starred: false, Timestamp: "2026-01-06T16:45:00Z"},
		{ID: 6, From: "frank@my-email.net", Subject: "Unicode: 你好, мир, 😀", Body: "Testing unicode in body: こんにちは世界", Label: models.LabelInbox, Read: true, Starred: false, Timestamp: "2026-01-06T10:30:00Z"},
		{ID: 7, From: "grace@anotherdomain.co.uk", Subject: "Project Update", Body: "The project is on track. All milestones have been met so far.", Label: models.LabelInbox, Read: false, Starred: false, Timestamp: "2026-01-05T09:15:00Z"},
		{ID: 8, From: "hank@ka-tch.com", Subject: "Weekly Newsletter", Body: "This week's highlights include new features, team updates, and upcoming events. Stay tuned for more exciting news!", Label: models.LabelInbox, Read: true, Starred: false, Timestamp: "2026-01-04T08:00:00Z"},
		{ID: 9, From: "ivan@demo-example.com", Subject: "Security Alert", Body: "We noticed a new login from your account. If this was you, no action is needed.", Label: models.LabelInbox, Read: false, Starred: true, Timestamp: "2026-01-03T22:30:00Z"},
		{ID: 10, From: "judy@example.com", Subject: "Re: Meeting", Body: "See you at 10am.\n\nBest,\nJudy", Label: models.LabelInbox, Read: true, Starred: false, Timestamp: "2026-01-03T15:00:00Z"},
	}...)
}
