package store

// AsyncStatus tracks the observable phase of a slice's asynchronous task.
type AsyncStatus string

const (
	StatusIdle    AsyncStatus = "idle"
	StatusLoading AsyncStatus = "loading"
	StatusSuccess AsyncStatus = "success"
	StatusFailed  AsyncStatus = "failed"
)
