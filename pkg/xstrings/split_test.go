package xstrings_test

import (
	"unicode/utf8"

	"github.com/auralisbot/auralis/pkg/xstrings"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SplitParagraph", func() {
	DescribeTable("splitting",
		func(text string, maxLen int, expected []string) {
			Expect(xstrings.SplitParagraph(text, maxLen)).To(Equal(expected))
		},
		Entry("short text stays whole", "Short text", 20, []string{"Short text"}),
		Entry("splits on words",
			"This is a longer text that needs to be split into chunks.", 10,
			[]string{"This is a", "longer", "text that", "needs to", "be split", "into", "chunks."}),
		Entry("keeps newlines with the previous chunk", "line1\n\nline2", 10, []string{"line1\n\n", "line2"}),
		Entry("keeps a long word whole", "supercalifragilisticexpialidocious", 10, []string{"supercalifragilisticexpialidocious"}),
		Entry("empty string", "", 10, []string{""}),
		Entry("non-positive length", "abc def", 0, []string{"abc def"}),
	)

	It("never cuts through a multi-byte rune", func() {
		text := "😴😴😴😴 perché è già così 🧘🧘🧘 — più calma"
		chunks := xstrings.SplitParagraph(text, 8)
		Expect(len(chunks)).To(BeNumerically(">", 1))
		for _, c := range chunks {
			Expect(utf8.ValidString(c)).To(BeTrue(), c)
		}
	})

	It("counts length in runes", func() {
		chunks := xstrings.SplitParagraph("èèèè àààà", 4)
		Expect(chunks).To(Equal([]string{"èèèè", "àààà"}))
	})
})
