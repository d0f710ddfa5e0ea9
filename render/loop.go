package render

// State of the frame loop.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Closing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// State reports Closing once the window has been asked to close.
func (c *Context) State() State {
	if c.Window.ShouldClose() {
		return Closing
	}
	return Running
}

type Stats struct {
	Frames int // Number of frames presented.
}

// Run draws p once per iteration until the window is asked to close, either
// by the exit key or by the platform. The close flag is only checked between
// frames, so the frame in flight always completes.
func (c *Context) Run(p *Pipeline) Stats {
	var st Stats
	bg := c.cfg.ClearColor
	for c.State() == Running {
		c.processInput()

		c.Device.ClearColor(bg[0], bg[1], bg[2], bg[3])
		c.Device.Clear()
		p.Draw()

		c.Window.SwapBuffers()
		c.Platform.PollEvents()
		st.Frames++
	}
	c.log.Debug("frame loop done", "frames", st.Frames)
	return st
}

func (c *Context) processInput() {
	if c.Window.KeyPressed(KeyEscape) {
		c.Window.SetShouldClose(true)
	}
}
