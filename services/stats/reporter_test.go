package stats_test

import (
	"github.com/auralisbot/auralis/core/usage"
	"github.com/auralisbot/auralis/services/stats"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reporter", func() {
	It("reports ledger aggregates", func() {
		ledger := usage.NewLedger[int64]()
		ledger.Increment(1)
		ledger.Increment(1)
		ledger.Increment(2)

		r, err := stats.NewReporter(ledger, 15, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(r.Report()).To(Equal(usage.Stats{Users: 2, Messages: 3}))

		ledger.Increment(3)
		Expect(r.Report()).To(Equal(usage.Stats{Users: 3, Messages: 4}))
	})

	It("rejects an invalid schedule", func() {
		_, err := stats.NewReporter(usage.NewLedger[int64](), 15, "every now and then")
		Expect(err).To(HaveOccurred())
	})

	It("starts and stops", func() {
		r, err := stats.NewReporter(usage.NewLedger[int64](), 15, "@every 1h")
		Expect(err).ToNot(HaveOccurred())
		r.Start()
		r.Stop()
	})
})
