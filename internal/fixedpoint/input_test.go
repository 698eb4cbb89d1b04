package fixedpoint_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dottie/internal/fixedpoint"
)

var _ = Describe("ParseStart", func() {
	DescribeTable("accepts numbers",
		func(text string, expected float64) {
			v, err := fixedpoint.ParseStart(text)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(expected))
		},
		Entry("integer", "42", 42.0),
		Entry("zero", "0", 0.0),
		Entry("negative", "-5", -5.0),
		Entry("decimal", "3.25", 3.25),
		Entry("exponent", "1e3", 1000.0),
		Entry("padded", "  100\n", 100.0),
		Entry("leading plus", "+7", 7.0),
		Entry("underflow", "1e-400", 0.0),
	)

	DescribeTable("rejects everything else",
		func(text string, cause error) {
			_, err := fixedpoint.ParseStart(text)

			var inErr *fixedpoint.InputError
			Expect(errors.As(err, &inErr)).To(BeTrue())
			Expect(errors.Is(err, cause)).To(BeTrue())
		},
		Entry("word", "abc", fixedpoint.ErrNotANumber),
		Entry("trailing junk", "12abc", fixedpoint.ErrNotANumber),
		Entry("two numbers", "1 2", fixedpoint.ErrNotANumber),
		Entry("empty", "", fixedpoint.ErrEmptyInput),
		Entry("blank", "   \n", fixedpoint.ErrEmptyInput),
		Entry("nan", "NaN", fixedpoint.ErrNotFinite),
		Entry("inf", "-Inf", fixedpoint.ErrNotFinite),
		Entry("overflow", "1e400", fixedpoint.ErrNotFinite),
	)

	It("quotes the offending text", func() {
		_, err := fixedpoint.ParseStart("abc")
		Expect(err).To(MatchError(`invalid input "abc": fixedpoint: not a number`))
	})
})

var _ = Describe("ReadStart", func() {
	It("reads the first line only", func() {
		v, err := fixedpoint.ReadStart(strings.NewReader("-5\n100\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(-5.0))
	})

	It("accepts a final line without newline", func() {
		v, err := fixedpoint.ReadStart(strings.NewReader("0.5"))
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(0.5))
	})

	It("treats immediate end of input as empty", func() {
		_, err := fixedpoint.ReadStart(strings.NewReader(""))
		Expect(errors.Is(err, fixedpoint.ErrEmptyInput)).To(BeTrue())
	})

	It("fails on non-numeric text", func() {
		_, err := fixedpoint.ReadStart(strings.NewReader("abc\n"))
		Expect(errors.Is(err, fixedpoint.ErrNotANumber)).To(BeTrue())
	})
})

var _ = Describe("ReadStartContext", func() {
	It("returns the parsed value", func() {
		v, err := fixedpoint.ReadStartContext(context.Background(), strings.NewReader("100\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(100.0))
	})

	It("passes input errors through", func() {
		_, err := fixedpoint.ReadStartContext(context.Background(), strings.NewReader("abc\n"))
		var inputErr *fixedpoint.InputError
		Expect(errors.As(err, &inputErr)).To(BeTrue())
	})

	It("unblocks when canceled while waiting for input", func() {
		pr, pw := io.Pipe()
		defer pw.Close()

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(20*time.Millisecond, cancel)

		_, err := fixedpoint.ReadStartContext(ctx, pr)
		Expect(errors.Is(err, fixedpoint.ErrCanceled)).To(BeTrue())
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	It("does not read when already canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fixedpoint.ReadStartContext(ctx, strings.NewReader("0\n"))
		Expect(errors.Is(err, fixedpoint.ErrCanceled)).To(BeTrue())
	})
})
