package view

import (
	"fmt"

	"github.com/zeozeozeo/restdiv/divider"
)

// Steps through a traced divide
type Viewer struct {
	Dividend, Divisor uint32
	Mode              divider.Mode
	Steps             []divider.Step
	Result            divider.Result
	Cursor            int // Index into Steps
	DrawData          *DrawData
}

// Traces `dividend` / `divisor` and returns a viewer at the first step
func NewViewer(dividend, divisor uint32, mode divider.Mode) (*Viewer, error) {
	steps, res, err := divider.Trace(dividend, divisor, mode)
	if err != nil {
		return nil, err
	}
	return &Viewer{
		Dividend: dividend,
		Divisor:  divisor,
		Mode:     mode,
		Steps:    steps,
		Result:   res,
		DrawData: NewDrawData(),
	}, nil
}

func (v *Viewer) Step() divider.Step {
	return v.Steps[v.Cursor]
}

// Moves to the next step. Returns false at the last step
func (v *Viewer) Next() bool {
	if v.Cursor+1 >= len(v.Steps) {
		return false
	}
	v.Cursor++
	return true
}

// Moves to the previous step. Returns false at the first step
func (v *Viewer) Prev() bool {
	if v.Cursor == 0 {
		return false
	}
	v.Cursor--
	return true
}

// Returns true on the last step
func (v *Viewer) Done() bool {
	return v.Cursor == len(v.Steps)-1
}

// Rebuilds the vertex buffer for the current step: the register before
// and after the operation
func (v *Viewer) Build() {
	v.DrawData.Reset()
	step := v.Step()
	DrawRegister(v.DrawData, step.Before, 48, false)
	DrawRegister(v.DrawData, step.After, 96, step.Op != divider.OP_RESTORE)
}

// Text shown above the registers
func (v *Viewer) Caption() string {
	step := v.Step()
	s := fmt.Sprintf("%s / %s (%s)  step %d/%d: %s\n",
		divider.FormatOperand(v.Dividend, v.Mode), divider.FormatOperand(v.Divisor, v.Mode), v.Mode,
		v.Cursor+1, len(v.Steps), step.Op)
	s += fmt.Sprintf("P=%08x A=%08x -> P=%08x A=%08x", step.Before.P(), step.Before.A(), step.After.P(), step.After.A())
	if v.Done() {
		s += fmt.Sprintf("\n\n\n\n\n\n\nquotient %s  remainder %s",
			divider.FormatOperand(v.Result.Quotient, v.Mode), divider.FormatOperand(v.Result.Remainder, v.Mode))
	}
	return s
}
