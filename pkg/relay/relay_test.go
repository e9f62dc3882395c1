package relay_test

import (
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"periph.io/x/periph/conn/gpio"

	"github.com/xanderflood/relayctl/pkg/relay"
)

var _ = Describe("Parse", func() {
	It("sets exactly the requested bits", func() {
		m, err := relay.Parse([]string{"1", "3", "8"})
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(relay.Mask(0x85)))
		Expect(m.String()).To(Equal("0x85"))
		Expect(m.Relays()).To(Equal([]int{1, 3, 8}))
	})

	It("returns an empty mask for no tokens", func() {
		m, err := relay.Parse(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(relay.Mask(0)))
	})

	It("is idempotent for repeated relays", func() {
		once, err := relay.Parse([]string{"4"})
		Expect(err).NotTo(HaveOccurred())
		twice, err := relay.Parse([]string{"4", "4"})
		Expect(err).NotTo(HaveOccurred())
		Expect(twice).To(Equal(once))
	})

	It("does not depend on token order", func() {
		all := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
		r := rand.New(rand.NewSource(1))
		for i := 0; i < 50; i++ {
			subset := []string{}
			var want relay.Mask
			for j, tok := range all {
				if r.Intn(2) == 1 {
					subset = append(subset, tok)
					want |= 1 << uint(j)
				}
			}
			r.Shuffle(len(subset), func(a, b int) { subset[a], subset[b] = subset[b], subset[a] })

			m, err := relay.Parse(subset)
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(want), "tokens %v", subset)
		}
	})

	It("stops at the first bad token and returns no mask", func() {
		m, err := relay.Parse([]string{"1", "2", "abc", "9"})
		Expect(m).To(Equal(relay.Mask(0)))

		var invalid *relay.InvalidTokenError
		Expect(errors.As(err, &invalid)).To(BeTrue())
		Expect(invalid.Token).To(Equal("abc"))
	})

	DescribeTable("rejects invalid tokens",
		func(tok string) {
			_, err := relay.Parse([]string{tok})
			var invalid *relay.InvalidTokenError
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(errors.Is(err, relay.ErrInvalidArgument)).To(BeTrue())
			Expect(err.Error()).To(Equal("unknown argument '" + tok + "'"))
		},
		Entry("zero", "0"),
		Entry("signed zero", "-0"),
		Entry("letters", "abc"),
		Entry("empty", ""),
		Entry("flag-like", "-x"),
	)

	DescribeTable("rejects out-of-range relays",
		func(tok string, value int64) {
			_, err := relay.Parse([]string{tok})
			var oor *relay.OutOfRangeError
			Expect(errors.As(err, &oor)).To(BeTrue())
			Expect(oor.Value).To(Equal(value))
			Expect(oor.Min).To(Equal(relay.Min))
			Expect(oor.Max).To(Equal(relay.Max))
			Expect(errors.Is(err, relay.ErrInvalidArgument)).To(BeTrue())
		},
		Entry("nine", "9", int64(9)),
		Entry("negative", "-1", int64(-1)),
		Entry("large", "100", int64(100)),
		Entry("saturated", "99999999999999999999", int64(9223372036854775807)),
		Entry("saturated negative", "-99999999999999999999", int64(-9223372036854775808)),
	)

	It("reports the bounds in the message", func() {
		_, err := relay.Parse([]string{"9"})
		Expect(err).To(MatchError("out-of-bounds argument '9' (expected between 1 and 8)"))
	})

	DescribeTable("reads numbers like strtol",
		func(tok string, n int) {
			got, err := relay.ParseRelay(tok)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(n))
		},
		Entry("plain", "5", 5),
		Entry("plus sign", "+2", 2),
		Entry("leading space", "  7", 7),
		Entry("trailing garbage", "3abc", 3),
		Entry("leading zeros", "008", 8),
	)
})

var _ = Describe("Mask", func() {
	It("exposes relays as periph output pins", func() {
		var m relay.Mask
		p := m.Pin(2)
		Expect(p.Name()).To(Equal("RELAY2"))
		Expect(p.Number()).To(Equal(2))

		Expect(p.Out(gpio.High)).To(Succeed())
		Expect(m).To(Equal(relay.Mask(0x02)))
		Expect(m.Level(2)).To(Equal(gpio.High))
		Expect(p.Function()).To(Equal("Out/High"))

		Expect(p.Out(gpio.Low)).To(Succeed())
		Expect(m).To(Equal(relay.Mask(0)))
		Expect(m.Level(2)).To(Equal(gpio.Low))
	})

	It("refuses pins outside the bank", func() {
		var m relay.Mask
		Expect(errors.Is(m.Pin(0).Out(gpio.High), relay.ErrInvalidArgument)).To(BeTrue())
		Expect(errors.Is(m.Pin(9).Out(gpio.High), relay.ErrInvalidArgument)).To(BeTrue())
		Expect(m).To(Equal(relay.Mask(0)))
	})

	It("does not support PWM", func() {
		var m relay.Mask
		Expect(m.Pin(1).PWM(gpio.DutyMax, 0)).NotTo(Succeed())
	})

	It("reports no relay outside the bank", func() {
		m := relay.Mask(0xff)
		Expect(m.Has(0)).To(BeFalse())
		Expect(m.Has(9)).To(BeFalse())
		Expect(m.Relays()).To(HaveLen(8))
	})
})
