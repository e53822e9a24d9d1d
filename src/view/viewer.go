package view

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
//Refresh is passed to the Evolver as the per generation notification
type Viewer interface {
	Refresh()
	Start()
}

var (
	_ Viewer = (*ConsoleUI)(nil)
	_ Viewer = (*ConsoleOut)(nil)
)
