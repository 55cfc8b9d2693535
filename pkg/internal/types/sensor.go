package types

// Sensor observes tagging activity. Callbacks are registered up front and
// invoked by components as records move through; a Sensor never mutates the
// records it observes.
type Sensor interface {
	RegisterOnStart(...func(ComponentMetadata))
	InvokeOnStart(ComponentMetadata)

	RegisterOnTagApplied(...func(ComponentMetadata, Record, Tag))
	InvokeOnTagApplied(ComponentMetadata, Record, Tag)

	RegisterOnFailure(...func(ComponentMetadata, Record, error))
	InvokeOnFailure(ComponentMetadata, Record, error)

	RegisterOnStop(...func(ComponentMetadata))
	InvokeOnStop(ComponentMetadata)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
