package tui

// browserErrMsg reports a failed attempt to open the paper link.
type browserErrMsg struct {
	err error
}
