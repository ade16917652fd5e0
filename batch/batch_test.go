package batch

import (
	"context"
	"io/ioutil"
	"strings"
	"testing"

	gm "github.com/onsi/gomega"
	"github.com/zeozeozeo/restdiv/logger"
)

const scenarios = `
mode: signed
cases:
  - name: exact
    dividend: 120
    divisor: 10
    expect: {quotient: 12, remainder: 0}
  - name: remainder
    dividend: 121
    divisor: 10
    expect: {quotient: 12, remainder: 1}
  - name: negative dividend
    dividend: -121
    divisor: 10
    expect: {quotient: -12, remainder: -1}
  - name: negative divisor
    dividend: 121
    divisor: -10
    expect: {quotient: -12, remainder: 1}
  - name: zero
    dividend: 120
    divisor: 0
    expect: {error: division-by-zero}
  - name: overflow
    dividend: -2147483648
    divisor: -1
    expect: {error: overflow}
  - name: unsigned big
    mode: unsigned
    dividend: "0xffffffff"
    divisor: "0x80000001"
    expect: {quotient: 1, remainder: "0x7ffffffe"}
  - dividend: 7
    divisor: 2
`

func testLogger(t *testing.T) logger.Logger {
	l, err := logger.NewLogger("batch-test", "error")
	if err != nil {
		t.Fatal(err)
	}
	l.SetOutput(ioutil.Discard)
	return l
}

func TestParse(t *testing.T) {
	g := gm.NewGomegaWithT(t)
	f, err := Parse([]byte(scenarios))
	g.Expect(err).NotTo(gm.HaveOccurred())
	g.Expect(f.Cases).To(gm.HaveLen(8))
	g.Expect(f.Cases[0].Mode).To(gm.Equal("signed"))
	g.Expect(f.Cases[6].Mode).To(gm.Equal("unsigned"))
	g.Expect(string(f.Cases[6].Dividend)).To(gm.Equal("0xffffffff"))
	g.Expect(string(f.Cases[2].Dividend)).To(gm.Equal("-121"))
	g.Expect(f.Cases[7].Name).To(gm.Equal("case-8"))
	g.Expect(f.Cases[7].Expect).To(gm.BeNil())
}

func TestParseJSON(t *testing.T) {
	g := gm.NewGomegaWithT(t)
	f, err := Parse([]byte(`{"cases": [{"dividend": 121, "divisor": "0xa", "mode": "unsigned"}]}`))
	g.Expect(err).NotTo(gm.HaveOccurred())
	g.Expect(f.Cases).To(gm.HaveLen(1))
	g.Expect(string(f.Cases[0].Divisor)).To(gm.Equal("0xa"))
}

func TestRunScenarios(t *testing.T) {
	g := gm.NewGomegaWithT(t)
	f, err := Parse([]byte(scenarios))
	g.Expect(err).NotTo(gm.HaveOccurred())

	s, err := Run(context.Background(), testLogger(t), f, 3)
	g.Expect(err).NotTo(gm.HaveOccurred())
	for _, o := range s.Outcomes {
		g.Expect(o.Failed).To(gm.BeFalse(), o.Format())
	}
	g.Expect(s.Passed).To(gm.Equal(8))
	g.Expect(s.Failed).To(gm.BeZero())
	g.Expect(s.RunID).NotTo(gm.BeEmpty())
	g.Expect(s.Outcomes[1].Case.Name).To(gm.Equal("remainder"))
}

func TestRunFailures(t *testing.T) {
	g := gm.NewGomegaWithT(t)
	f, err := Parse([]byte(`
cases:
  - {name: wrong quotient, dividend: 121, divisor: 10, expect: {quotient: 13}}
  - {name: missing error, dividend: 121, divisor: 10, expect: {error: overflow}}
  - {name: unexpected error, dividend: 1, divisor: 0, expect: {quotient: 0}}
  - {name: bad operand, dividend: ten, divisor: 10}
  - {name: bad mode, dividend: 1, divisor: 1, mode: float}
  - {name: zero without expectation, dividend: 1, divisor: 0}
`))
	g.Expect(err).NotTo(gm.HaveOccurred())

	s, err := Run(context.Background(), testLogger(t), f, 1)
	g.Expect(err).NotTo(gm.HaveOccurred())
	g.Expect(s.Failed).To(gm.Equal(5))
	g.Expect(s.Passed).To(gm.Equal(1))
	g.Expect(s.Outcomes[0].Detail).To(gm.ContainSubstring("expected quotient 13, got 12"))
	g.Expect(s.Outcomes[3].Ran).To(gm.BeFalse())
	g.Expect(s.Outcomes[3].Format()).To(gm.HavePrefix("FAIL"))
	g.Expect(s.Outcomes[5].Format()).To(gm.ContainSubstring("division-by-zero"))
}

func TestRunCancelled(t *testing.T) {
	g := gm.NewGomegaWithT(t)
	f, err := Parse([]byte(scenarios))
	g.Expect(err).NotTo(gm.HaveOccurred())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, testLogger(t), f, 2)
	g.Expect(err).To(gm.HaveOccurred())
	g.Expect(strings.Contains(err.Error(), "interrupted")).To(gm.BeTrue())
}
