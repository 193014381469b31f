// Package events provides the record change notifications published by the
// services after every successful create, update and delete.
//
// Services emit events without knowing which handlers will process them; the
// server registers an audit logger and the record-count metrics updater.
//
// The primary components are:
// - RecordChangedEvent: describes one mutation of one record
// - EventHandler: interface for components that react to changes
// - EventEmitter: interface for components that publish changes
package events
