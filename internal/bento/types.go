package bento

// SubscriberImport is one entry of a subscriber create/upsert or bulk import.
type SubscriberImport struct {
	Email      string
	FirstName  string
	LastName   string
	Fields     map[string]any
	Tags       []string
	RemoveTags []string
}

// CommandName identifies a subscriber command on the platform's commands
// endpoint. A single delegated call may carry several commands.
type CommandName string

const (
	CommandAddTag      CommandName = "add_tag"
	CommandRemoveTag   CommandName = "remove_tag"
	CommandAddField    CommandName = "add_field"
	CommandRemoveField CommandName = "remove_field"
	CommandSubscribe   CommandName = "subscribe"
	CommandUnsubscribe CommandName = "unsubscribe"
)

// Command is one subscriber command. Query carries the command payload: a tag
// name for tag commands, a {key, value} object for field commands, nil for
// subscribe/unsubscribe.
type Command struct {
	Command CommandName
	Email   string
	Query   any
}

// Event is one tracked event. Purchases are events of type "$purchase" with
// the order details nested under Details.
type Event struct {
	Email   string
	Type    string
	Fields  map[string]any
	Details map[string]any
}

// Contact is a sender or recipient identity.
type Contact struct {
	Name  string
	Email string
}

// Broadcast is the input for broadcast creation.
type Broadcast struct {
	Name             string
	Subject          string
	Content          string
	Type             string
	From             Contact
	InclusiveTags    []string
	ExclusiveTags    []string
	SegmentID        string
	BatchSizePerHour int
}

// Email is one transactional email.
type Email struct {
	To               string
	From             string
	Subject          string
	HTMLBody         string
	Transactional    bool
	Personalizations map[string]any
}
