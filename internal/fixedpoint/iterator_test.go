package fixedpoint_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dottie/internal/config"
	"github.com/san-kum/dottie/internal/cosine"
	"github.com/san-kum/dottie/internal/fixedpoint"
)

var progressLine = regexp.MustCompile(`^cos\((-?\d+\.(\d+))\)$`)

type recordingSleeper struct {
	calls []time.Duration
}

func (r *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	r.calls = append(r.calls, d)
	return ctx.Err()
}

type stepCounter struct {
	steps  []int
	values []float64
}

func (c *stepCounter) OnStep(step int, x float64) {
	c.steps = append(c.steps, step)
	c.values = append(c.values, x)
}

type lastValue struct {
	resets int
	value  float64
}

func (l *lastValue) Name() string                { return "last" }
func (l *lastValue) Observe(step int, x float64) { l.value = x }
func (l *lastValue) Value() float64              { return l.value }
func (l *lastValue) Reset()                      { l.resets++; l.value = math.NaN() }

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

// splitOutput separates the in-place progress lines from the trailer.
func splitOutput(out string) ([]string, string) {
	parts := strings.Split(out, "\r")
	return parts[:len(parts)-1], parts[len(parts)-1]
}

var _ = Describe("Iterator", func() {
	var (
		out     *bytes.Buffer
		sleeper *recordingSleeper
		ctx     context.Context
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		sleeper = &recordingSleeper{}
		ctx = context.Background()
	})

	newIterator := func(cfg fixedpoint.Config) *fixedpoint.Iterator {
		return fixedpoint.New(cfg, out).WithSleeper(sleeper.sleep)
	}

	DescribeTable("reaches the Dottie number",
		func(start float64) {
			result, err := newIterator(config.DefaultConfig()).Run(ctx, start)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Converged).To(BeTrue())
			Expect(result.Final).To(Equal(cosine.Dottie))
			Expect(cosine.Cos(result.Final)).To(Equal(result.Final))
			Expect(result.Steps).To(BeNumerically("<", 10000))
		},
		Entry("zero", 0.0),
		Entry("one", 1.0),
		Entry("negative", -5.0),
		Entry("large", 100.0),
		Entry("fraction", 0.25),
		Entry("huge", 1e8),
		Entry("tiny", 1e-300),
	)

	It("takes the same number of steps as the reference run from zero", func() {
		result, err := newIterator(config.DefaultConfig()).Run(ctx, 0)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Steps).To(Equal(93))
	})

	It("prints every intermediate value in place with 20 decimals", func() {
		result, err := newIterator(config.DefaultConfig()).Run(ctx, 0)
		Expect(err).NotTo(HaveOccurred())

		lines, trailer := splitOutput(out.String())
		Expect(lines).To(HaveLen(result.Steps - 1))
		for _, line := range lines {
			m := progressLine.FindStringSubmatch(line)
			Expect(m).NotTo(BeNil(), "line %q", line)
			Expect(m[2]).To(HaveLen(20))
		}
		Expect(lines[0]).To(Equal("cos(1.00000000000000000000)"))
		Expect(trailer).To(Equal("\n\nFixed Point Reached!\n\n"))
	})

	It("settles the printed values near 0.7390851332151607", func() {
		_, err := newIterator(config.DefaultConfig()).Run(ctx, 0)
		Expect(err).NotTo(HaveOccurred())

		lines, _ := splitOutput(out.String())
		last := progressLine.FindStringSubmatch(lines[len(lines)-1])
		v, err := strconv.ParseFloat(last[1], 64)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 0.7390851332151607, 1e-15))
	})

	It("moves closer to the fixed point as iterations accumulate", func() {
		cfg := config.DefaultConfig()
		cfg.Record = true
		result, err := newIterator(cfg).Run(ctx, -5)
		Expect(err).NotTo(HaveOccurred())

		traj := result.Trajectory
		Expect(traj).To(HaveLen(result.Steps + 1))
		Expect(traj[0]).To(Equal(-5.0))
		for i := 1; i < len(traj); i++ {
			Expect(traj[i]).To(Equal(cosine.Cos(traj[i-1])))
		}
		early := math.Abs(traj[5] - cosine.Dottie)
		late := math.Abs(traj[40] - cosine.Dottie)
		Expect(late).To(BeNumerically("<", early))
	})

	It("pauses for the configured interval after every step", func() {
		result, err := newIterator(config.DefaultConfig()).Run(ctx, 1)
		Expect(err).NotTo(HaveOccurred())

		Expect(sleeper.calls).To(HaveLen(result.Steps))
		for _, d := range sleeper.calls {
			Expect(d).To(Equal(45 * time.Millisecond))
		}
	})

	It("paces real time at roughly 45ms per step", func() {
		start := 0.7390851332151
		began := time.Now()
		result, err := fixedpoint.New(config.DefaultConfig(), out).Run(ctx, start)
		elapsed := time.Since(began)
		Expect(err).NotTo(HaveOccurred())

		floor := time.Duration(result.Steps) * 45 * time.Millisecond
		Expect(elapsed).To(BeNumerically(">=", floor))
		Expect(elapsed).To(BeNumerically("<", 2*floor+time.Second))
		Expect(result.Elapsed).To(BeNumerically(">=", floor))
	})

	It("skips pacing when the interval is zero", func() {
		_, err := newIterator(config.TraceConfig()).Run(ctx, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(sleeper.calls).To(BeEmpty())
	})

	It("stops after one step when started on the fixed point", func() {
		result, err := newIterator(config.DefaultConfig()).Run(ctx, cosine.Dottie)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Steps).To(Equal(1))
		Expect(out.String()).To(Equal("\n\nFixed Point Reached!\n\n"))
	})

	It("feeds observers and metrics on every step", func() {
		counter := &stepCounter{}
		metric := &lastValue{}
		it := newIterator(config.DefaultConfig())
		it.AddObserver(counter)
		it.AddMetric(metric)

		result, err := it.Run(ctx, 2)
		Expect(err).NotTo(HaveOccurred())

		Expect(counter.steps).To(HaveLen(result.Steps))
		Expect(counter.steps[0]).To(Equal(1))
		Expect(counter.values[len(counter.values)-1]).To(Equal(result.Final))
		Expect(metric.resets).To(Equal(1))
		Expect(result.Metrics).To(HaveKeyWithValue("last", cosine.Dottie))
	})

	Context("with a step limit", func() {
		It("gives up with ErrNoConvergence", func() {
			cfg := config.DefaultConfig()
			cfg.Limit = 5
			result, err := newIterator(cfg).Run(ctx, 0)

			Expect(errors.Is(err, fixedpoint.ErrNoConvergence)).To(BeTrue())
			var stepErr *fixedpoint.StepError
			Expect(errors.As(err, &stepErr)).To(BeTrue())
			Expect(stepErr.Step).To(Equal(5))
			Expect(result.Steps).To(Equal(5))
			Expect(result.Converged).To(BeFalse())

			lines, trailer := splitOutput(out.String())
			Expect(lines).To(HaveLen(5))
			Expect(trailer).To(BeEmpty())
		})
	})

	Context("when canceled", func() {
		It("returns before the first step if the context is already done", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()

			result, err := newIterator(config.DefaultConfig()).Run(canceled, 0)

			Expect(errors.Is(err, fixedpoint.ErrCanceled)).To(BeTrue())
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(result.Steps).To(BeZero())
			Expect(out.String()).To(BeEmpty())
		})

		It("stops during the pause", func() {
			running, cancel := context.WithCancel(ctx)
			defer cancel()

			calls := 0
			it := fixedpoint.New(config.DefaultConfig(), out).WithSleeper(func(ctx context.Context, d time.Duration) error {
				calls++
				if calls == 3 {
					cancel()
				}
				return ctx.Err()
			})

			result, err := it.Run(running, 0)

			Expect(errors.Is(err, fixedpoint.ErrCanceled)).To(BeTrue())
			Expect(result.Steps).To(Equal(3))
			lines, _ := splitOutput(out.String())
			Expect(lines).To(HaveLen(2))
		})

		It("interrupts the real sleeper promptly", func() {
			cfg := config.DefaultConfig()
			cfg.Interval = time.Hour
			running, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
			defer cancel()

			began := time.Now()
			_, err := fixedpoint.New(cfg, out).Run(running, 0)

			Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())
			Expect(time.Since(began)).To(BeNumerically("<", 5*time.Second))
		})
	})

	It("rejects non-finite starting values without printing", func() {
		for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := newIterator(config.DefaultConfig()).Run(ctx, x)

			var inErr *fixedpoint.InputError
			Expect(errors.As(err, &inErr)).To(BeTrue())
			Expect(errors.Is(err, fixedpoint.ErrNotFinite)).To(BeTrue())
		}
		Expect(out.String()).To(BeEmpty())
		Expect(sleeper.calls).To(BeEmpty())
	})

	It("rejects invalid configs", func() {
		for _, cfg := range []fixedpoint.Config{
			{Interval: -time.Millisecond},
			{Precision: -1},
			{Limit: -1},
		} {
			_, err := newIterator(cfg).Run(ctx, 0)
			Expect(errors.Is(err, fixedpoint.ErrInvalidConfig)).To(BeTrue())
		}
	})

	It("reports write failures", func() {
		it := fixedpoint.New(config.DefaultConfig(), failingWriter{}).WithSleeper(sleeper.sleep)
		_, err := it.Run(ctx, 0)

		Expect(err).To(MatchError(ContainSubstring("disk full")))
	})
})
