package usage_test

import (
	"sync"

	"github.com/auralisbot/auralis/core/usage"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ledger", func() {
	var ledger *usage.Ledger[int64]

	BeforeEach(func() {
		ledger = usage.NewLedger[int64]()
	})

	It("should report zero for unknown users", func() {
		Expect(ledger.Count(42)).To(BeZero())
		Expect(ledger.Stats()).To(Equal(usage.Stats{}))
	})

	It("should return N on the N-th increment", func() {
		for i := 1; i <= 20; i++ {
			Expect(ledger.Increment(42)).To(Equal(i))
		}
		Expect(ledger.Count(42)).To(Equal(20))
	})

	It("should keep users isolated", func() {
		ledger.Increment(1)
		ledger.Increment(1)
		Expect(ledger.Increment(2)).To(Equal(1))
		Expect(ledger.Count(1)).To(Equal(2))
		Expect(ledger.Stats()).To(Equal(usage.Stats{Users: 2, Messages: 3}))
	})

	It("should not lose concurrent increments for the same user", func() {
		var wg sync.WaitGroup
		seen := make([]int, 100)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				seen[i] = ledger.Increment(7)
			}(i)
		}
		wg.Wait()

		Expect(ledger.Count(7)).To(Equal(100))
		// every count from 1 to 100 handed out exactly once
		Expect(seen).To(ConsistOf(func() []any {
			out := []any{}
			for i := 1; i <= 100; i++ {
				out = append(out, i)
			}
			return out
		}()...))
	})

	It("should handle different key types", func() {
		byName := usage.NewLedger[string]()
		byInt := usage.NewLedger[int]()

		Expect(byName.Increment("alice")).To(Equal(1))
		Expect(byInt.Increment(1)).To(Equal(1))
		Expect(byInt.Increment(1)).To(Equal(2))
	})
})
