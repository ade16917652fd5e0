package divider

import "fmt"

// Operation performed on P during a step
type Operation int

const (
	OP_SUBTRACT Operation = 0 // Shift, then subtract the divisor from P
	OP_ADD      Operation = 1 // Shift, then add the divisor to P
	OP_RESTORE  Operation = 2 // Final correction of a negative remainder
)

func (op Operation) String() string {
	switch op {
	case OP_SUBTRACT:
		return "sub"
	case OP_ADD:
		return "add"
	case OP_RESTORE:
		return "restore"
	default:
		return "?"
	}
}

// A single cycle of the divide loop
type Step struct {
	Index       int       // Iteration, WIDTH for the restore step
	Op          Operation // What was done to P
	Before      Register  // Register pair at the start of the step
	After       Register  // Register pair at the end of the step
	QuotientBit uint32    // Quotient bit shifted in (0 for OP_RESTORE)
}

func (step Step) String() string {
	return fmt.Sprintf(
		"%2d %-7s P=%08x A=%08x -> P=%08x A=%08x neg=%t",
		step.Index, step.Op,
		step.Before.P(), step.Before.A(),
		step.After.P(), step.After.A(),
		step.After.Negative(),
	)
}

// Divides like Divide and also returns every step of the loop. The restore
// step is only present when the final partial remainder was negative
func Trace(dividend, divisor uint32, mode Mode) ([]Step, Result, error) {
	steps := make([]Step, 0, WIDTH+1)
	res, err := run(dividend, divisor, mode, func(step Step) {
		steps = append(steps, step)
	})
	if err != nil {
		return nil, Result{}, err
	}
	return steps, res, nil
}
