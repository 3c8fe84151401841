package intent_test

import (
	"github.com/auralisbot/auralis/core/intent"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func phraseOf(name string) string {
	for _, r := range intent.DefaultRules {
		if r.Name == name {
			return r.Phrase
		}
	}
	return ""
}

var _ = Describe("Classifier", func() {
	var classifier *intent.Classifier

	BeforeEach(func() {
		classifier = intent.Default()
	})

	DescribeTable("resolves quick intents",
		func(input, intent string) {
			Expect(classifier.Classify(input)).To(Equal(phraseOf(intent)))
			r, ok := classifier.Match(input)
			Expect(ok).To(BeTrue())
			Expect(r.Name).To(Equal(intent))
		},
		Entry("sleep by keyword", "non riesco a prendere sonno", intent.IntentSleep),
		Entry("sleep by verb", "dormire male stanotte", intent.IntentSleep),
		Entry("sleep button", "😴 Routine per dormire", intent.IntentSleep),
		Entry("breathing by pattern", "come si fa la 4-7-8?", intent.IntentBreathing),
		Entry("breathing button", "💨 Respirazione 4-7-8", intent.IntentBreathing),
		Entry("de-stress button", "🧘 2-minute de-stress", intent.IntentDestress),
		Entry("stress upper case", "Sono molto STRESSATO", intent.IntentDestress),
		Entry("pomodoro button", "⏱️ Pomodoro 25'", intent.IntentPomodoro),
		Entry("habit button", "💡 Abitudine micro-passo", intent.IntentHabit),
		Entry("check-in without stress", "facciamo un check-in", intent.IntentCheckIn),
	)

	It("lets the earlier rule win when several match", func() {
		r, ok := classifier.Match("📋 Check-in stress")
		Expect(ok).To(BeTrue())
		Expect(r.Name).To(Equal(intent.IntentDestress))
	})

	It("passes unmatched text through verbatim", func() {
		Expect(classifier.Classify("ciao come stai")).To(Equal("ciao come stai"))
		Expect(classifier.Classify("  Ciao!  ")).To(Equal("  Ciao!  "))
		_, ok := classifier.Match("ciao come stai")
		Expect(ok).To(BeFalse())
	})

	It("does not match empty input", func() {
		Expect(classifier.Classify("")).To(BeEmpty())
		_, ok := classifier.Match("   ")
		Expect(ok).To(BeFalse())
	})

	It("supports custom tables", func() {
		c := intent.NewClassifier(intent.Rule{Name: "greet", Triggers: []string{"HELLO"}, Phrase: "Say hi"})
		Expect(c.Classify("hello there")).To(Equal("Say hi"))
		Expect(c.Classify("dormire")).To(Equal("dormire"))
	})
})
