package gpiotest

//MockPin records the level a gpio.OutputPin was driven to
type MockPin struct {
	IsOutput bool
	IsHigh   bool
	Writes   int
}

func (p *MockPin) Output() { p.IsOutput = true }

func (p *MockPin) High() {
	p.IsHigh = true
	p.Writes++
}

func (p *MockPin) Low() {
	p.IsHigh = false
	p.Writes++
}
