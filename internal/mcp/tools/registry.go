package tools

// All returns every tool handler the server exposes. Registration order is
// stable so tool listings are deterministic.
func All() []Handler {
	var handlers []Handler
	handlers = append(handlers, SubscriberTools()...)
	handlers = append(handlers, CommandTools()...)
	handlers = append(handlers, TagTools()...)
	handlers = append(handlers, FieldTools()...)
	handlers = append(handlers, EventTools()...)
	handlers = append(handlers, EmailTools()...)
	handlers = append(handlers, BroadcastTools()...)
	handlers = append(handlers, ImportTools()...)
	handlers = append(handlers, StatsTools()...)
	handlers = append(handlers, ContentTools()...)
	handlers = append(handlers, FormTools()...)
	handlers = append(handlers, ExperimentalTools()...)
	return handlers
}
