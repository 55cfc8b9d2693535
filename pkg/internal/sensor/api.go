package sensor

import "github.com/joeydtaylor/wiremarker/pkg/internal/types"

// RegisterOnStart registers start callbacks.
func (s *Sensor) RegisterOnStart(cb ...func(types.ComponentMetadata)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onStart = append(s.onStart, cb...)
}

// InvokeOnStart runs registered start callbacks.
func (s *Sensor) InvokeOnStart(cm types.ComponentMetadata) {
	for _, cb := range s.snapshotOnStart() {
		cb(cm)
	}
	s.NotifyLoggers(types.DebugLevel, "Sensor observed start",
		"component", s.componentMetadata,
		"event", "InvokeOnStart",
		"source", cm,
	)
}

// RegisterOnTagApplied registers tag-applied callbacks.
func (s *Sensor) RegisterOnTagApplied(cb ...func(types.ComponentMetadata, types.Record, types.Tag)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onTagApplied = append(s.onTagApplied, cb...)
}

// InvokeOnTagApplied runs registered tag-applied callbacks.
func (s *Sensor) InvokeOnTagApplied(cm types.ComponentMetadata, rec types.Record, tag types.Tag) {
	for _, cb := range s.snapshotOnTagApplied() {
		cb(cm, rec, tag)
	}
}

// RegisterOnFailure registers failure callbacks.
func (s *Sensor) RegisterOnFailure(cb ...func(types.ComponentMetadata, types.Record, error)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onFailure = append(s.onFailure, cb...)
}

// InvokeOnFailure runs registered failure callbacks.
func (s *Sensor) InvokeOnFailure(cm types.ComponentMetadata, rec types.Record, err error) {
	for _, cb := range s.snapshotOnFailure() {
		cb(cm, rec, err)
	}
}

// RegisterOnStop registers stop callbacks.
func (s *Sensor) RegisterOnStop(cb ...func(types.ComponentMetadata)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onStop = append(s.onStop, cb...)
}

// InvokeOnStop runs registered stop callbacks.
func (s *Sensor) InvokeOnStop(cm types.ComponentMetadata) {
	for _, cb := range s.snapshotOnStop() {
		cb(cm)
	}
}

func (s *Sensor) snapshotOnStart() []func(types.ComponentMetadata) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata), len(s.onStart))
	copy(out, s.onStart)
	return out
}

func (s *Sensor) snapshotOnTagApplied() []func(types.ComponentMetadata, types.Record, types.Tag) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, types.Record, types.Tag), len(s.onTagApplied))
	copy(out, s.onTagApplied)
	return out
}

func (s *Sensor) snapshotOnFailure() []func(types.ComponentMetadata, types.Record, error) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, types.Record, error), len(s.onFailure))
	copy(out, s.onFailure)
	return out
}

func (s *Sensor) snapshotOnStop() []func(types.ComponentMetadata) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata), len(s.onStop))
	copy(out, s.onStop)
	return out
}
