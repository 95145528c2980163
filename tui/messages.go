package tui

// GridLoadedMsg is sent when the grid file has been rendered
type GridLoadedMsg struct {
	Output string
}

// LoadFailedMsg is sent when loading or parsing the grid file fails
type LoadFailedMsg struct {
	Err error
}

// ReloadMsg is sent when the watched file changes on disk
type ReloadMsg struct{}

// WatchErrorMsg is sent when the file watcher reports an error
type WatchErrorMsg struct {
	Err error
}
