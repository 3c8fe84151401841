package intent

const (
	IntentDestress  = "destress"
	IntentSleep     = "sleep"
	IntentBreathing = "breathing"
	IntentCheckIn   = "checkin"
	IntentPomodoro  = "pomodoro"
	IntentHabit     = "habit"
)

// DefaultRules is the quick intent table. Order matters: a message that
// mentions both "stress" and "check-in" resolves to IntentDestress.
var DefaultRules = []Rule{
	{
		Name:     IntentDestress,
		Triggers: []string{"2-minute", "de-stress", "stress"},
		Phrase:   "Suggerisci un esercizio de-stress di 2 minuti da fare ora.",
	},
	{
		Name:     IntentSleep,
		Triggers: []string{"routine per dormire", "dormire", "sonno"},
		Phrase:   "Proponi una routine semplice pre-sonno di 10 minuti da fare stasera.",
	},
	{
		Name:     IntentBreathing,
		Triggers: []string{"4-7-8", "respirazione"},
		Phrase:   "Guida l'utente nella respirazione 4-7-8 passo passo per 4 cicli.",
	},
	{
		Name:     IntentCheckIn,
		Triggers: []string{"check-in"},
		Phrase:   "Fai un check-in stress in 3 domande brevi e suggerisci 1 azione pratica.",
	},
	{
		Name:     IntentPomodoro,
		Triggers: []string{"pomodoro", "25"},
		Phrase:   "Spiega rapidamente la tecnica del Pomodoro con 1 ciclo da 25 minuti e 1 pausa da 5.",
	},
	{
		Name:     IntentHabit,
		Triggers: []string{"abitudine", "micro"},
		Phrase:   "Aiuta a scegliere un micro-passo per costruire un'abitudine salutare.",
	},
}
