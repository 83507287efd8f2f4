package services

// EventPublisher publishes activity events to a message broker. Publishing
// is always best-effort; a nil publisher disables it entirely.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}
