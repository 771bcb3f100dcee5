package shared

// Task types
const (
	TypeInstagramSync = "instagram:sync"
)

// Queues and their worker priority weights
const (
	QueueFeed    = "feed"
	QueueDefault = "default"
)

var QueueWeights = map[string]int{
	QueueFeed:    10,
	QueueDefault: 5,
}
