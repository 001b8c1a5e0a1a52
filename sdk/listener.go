package sdk

// LiveChatListener receives asynchronous notification when a live chat
// channel receives a message or notice. All callbacks fire from the
// connection's reader goroutine, in frame order.
type LiveChatListener interface {
	// Message is called when a user message is received from the channel.
	Message(message string)
	// Info is called when an informational notice is received.
	Info(message string)
	// Error is called when an error notice is received.
	Error(message string)
	// Closed is called when the connection is closed.
	Closed()
	// UpdateUsers is called with the comma separated list of users currently
	// in the channel.
	UpdateUsers(usersCSV string)
	// UpdateUsersXML is called with the channel's user list as an HTML
	// fragment.
	UpdateUsersXML(usersXML string)
}

// LiveChatAdapter is a no-op LiveChatListener for embedding, so listeners
// only implement the callbacks they care about.
type LiveChatAdapter struct{}

func (LiveChatAdapter) Message(message string)      {}
func (LiveChatAdapter) Info(message string)         {}
func (LiveChatAdapter) Error(message string)        {}
func (LiveChatAdapter) Closed()                     {}
func (LiveChatAdapter) UpdateUsers(usersCSV string) {}
func (LiveChatAdapter) UpdateUsersXML(users string) {}
