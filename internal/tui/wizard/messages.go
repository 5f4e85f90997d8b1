package wizard

// TabExitForwardMsg is sent by a step when Tab is pressed on its last
// input, handing focus to the host's button bar.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent by a step when Shift+Tab is pressed on its
// first input, handing focus to the host's button bar from the end.
type TabExitBackwardMsg struct{}
