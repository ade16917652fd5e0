package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/zeozeozeo/restdiv/divider"
	"github.com/zeozeozeo/restdiv/logger"
	"golang.org/x/sync/errgroup"
)

// Value is an operand as written in a batch file: a JSON/YAML number or a
// string such as "0xffffffff" or "-121".
type Value string

// UnmarshalJSON accepts both numbers and strings.
func (v *Value) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = Value(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Errorf("operand %s is neither a number nor a string", b)
	}
	*v = Value(n.String())
	return nil
}

// Expect is the optional expected outcome of a case.
type Expect struct {
	Quotient  *Value `json:"quotient,omitempty"`
	Remainder *Value `json:"remainder,omitempty"`
	Error     string `json:"error,omitempty"` // "division-by-zero" or "overflow"
}

// Case is one (dividend, divisor, mode) triple.
type Case struct {
	Name     string  `json:"name"`
	Dividend Value   `json:"dividend"`
	Divisor  Value   `json:"divisor"`
	Mode     string  `json:"mode"`
	Expect   *Expect `json:"expect,omitempty"`
}

// File is the layout of a batch file.
type File struct {
	Mode  string `json:"mode"` // default for cases without a mode
	Cases []Case `json:"cases"`
}

// Outcome is the result of running one case.
type Outcome struct {
	Case   Case
	Mode   divider.Mode
	Result divider.Result
	Err    error  // divider error, if any
	Ran    bool   // the operands parsed and the divide was executed
	Failed bool   // the outcome did not match the expectation
	Detail string // why it failed
}

// Summary of a batch run.
type Summary struct {
	RunID    string
	Outcomes []Outcome
	Passed   int
	Failed   int
}

// ReadFile parses a YAML or JSON batch file.
func ReadFile(fileName string) (*File, error) {
	data, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading batch file %v", fileName)
	}
	f, err := Parse(data)
	return f, errors.Wrapf(err, "batch file %v", fileName)
}

// Parse parses YAML or JSON batch data.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling batch")
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Mode == "" {
			c.Mode = f.Mode
		}
		if c.Mode == "" {
			c.Mode = divider.MODE_SIGNED.String()
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return f, nil
}

// Run executes all cases using up to workers goroutines.
// Outcomes come back in file order. Cases that cannot be parsed are reported as
// failures rather than aborting the batch; only context cancellation stops the run early.
func Run(ctx context.Context, log logger.Logger, f *File, workers int) (*Summary, error) {
	if workers < 1 {
		workers = 1
	}
	s := &Summary{RunID: xid.New().String(), Outcomes: make([]Outcome, len(f.Cases))}
	log = log.WithField("run", s.RunID)
	log.Info("starting batch of ", len(f.Cases), " cases with ", workers, " workers")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range f.Cases {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.Outcomes[i] = runCase(f.Cases[i])
			o := &s.Outcomes[i]
			if o.Failed {
				log.WithField("case", o.Case.Name).Warn("case failed: ", o.Detail)
			} else {
				log.WithField("case", o.Case.Name).Debug("case passed")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "batch %v interrupted", s.RunID)
	}

	for _, o := range s.Outcomes {
		if o.Failed {
			s.Failed++
		} else {
			s.Passed++
		}
	}
	log.Info("batch complete: ", s.Passed, " passed, ", s.Failed, " failed")
	return s, nil
}

func runCase(c Case) Outcome {
	o := Outcome{Case: c}
	fail := func(format string, a ...interface{}) Outcome {
		o.Failed = true
		o.Detail = fmt.Sprintf(format, a...)
		return o
	}

	mode, err := divider.ParseMode(c.Mode)
	if err != nil {
		return fail("%v", err)
	}
	o.Mode = mode
	a, err := divider.ParseOperand(string(c.Dividend), mode)
	if err != nil {
		return fail("dividend: %v", err)
	}
	b, err := divider.ParseOperand(string(c.Divisor), mode)
	if err != nil {
		return fail("divisor: %v", err)
	}

	o.Result, o.Err = divider.Divide(a, b, mode)
	o.Ran = true
	kind := divider.ErrorKind(o.Err)
	if o.Err != nil && kind == "" {
		return fail("%v", o.Err)
	}

	if c.Expect == nil {
		// no expectation: the only acceptable errors are the real special cases
		if o.Err == nil {
			if err := divider.Verify(a, b, mode, o.Result); err != nil {
				return fail("%v", err)
			}
		}
		return o
	}

	if c.Expect.Error != "" || o.Err != nil {
		if kind != c.Expect.Error {
			return fail("expected error %q, got %q", c.Expect.Error, kind)
		}
		return o
	}
	if q := c.Expect.Quotient; q != nil {
		want, err := divider.ParseOperand(string(*q), mode)
		if err != nil {
			return fail("expected quotient: %v", err)
		}
		if want != o.Result.Quotient {
			return fail("expected quotient %s, got %s",
				divider.FormatOperand(want, mode), divider.FormatOperand(o.Result.Quotient, mode))
		}
	}
	if r := c.Expect.Remainder; r != nil {
		want, err := divider.ParseOperand(string(*r), mode)
		if err != nil {
			return fail("expected remainder: %v", err)
		}
		if want != o.Result.Remainder {
			return fail("expected remainder %s, got %s",
				divider.FormatOperand(want, mode), divider.FormatOperand(o.Result.Remainder, mode))
		}
	}
	return o
}

// Format renders an outcome as one line.
func (o Outcome) Format() string {
	status := "ok"
	if o.Failed {
		status = "FAIL"
	}
	var got string
	switch {
	case !o.Ran:
		got = "-"
	case o.Err != nil:
		got = divider.ErrorKind(o.Err)
	default:
		got = "q=" + divider.FormatOperand(o.Result.Quotient, o.Mode) +
			" r=" + divider.FormatOperand(o.Result.Remainder, o.Mode)
	}
	line := fmt.Sprintf("%-4s %-20s %s / %s (%s): %s", status, strconv.Quote(o.Case.Name),
		o.Case.Dividend, o.Case.Divisor, o.Mode, got)
	if o.Failed {
		line += ": " + o.Detail
	}
	return line
}
