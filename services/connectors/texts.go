package connectors

import (
	"fmt"
	"html"
)

const (
	welcomeText = "Ciao! Sono <b>AuraLis</b> 🌿 il tuo compagno digitale.\n" +
		"Posso aiutarti con <b>stress</b>, <b>sonno</b> e <b>benessere quotidiano</b>.\n\n" +
		"Scegli una prova rapida qui sotto o scrivimi liberamente.\n" +
		"<i>Info generali, non è un consulto medico. In emergenza chiama il 144.</i>"

	menuText     = "Scegli una prova rapida 👇"
	feedbackText = "Grazie! Apri il modulo per dirci cosa ne pensi:"

	waitlistButton = "🔓 Ottieni accesso esteso"
	feedbackButton = "📝 Lascia un feedback"
)

var quickSuggestions = [][]string{
	{"🧘 2-minute de-stress", "😴 Routine per dormire", "💨 Respirazione 4-7-8"},
	{"📋 Check-in stress", "⏱️ Pomodoro 25'", "💡 Abitudine micro-passo"},
}

func infoText(waitlistURL, feedbackURL string) string {
	return fmt.Sprintf("AuraLis è un <i>compagno digitale</i> che suggerisce pratiche semplici per stress, sonno e benessere."+
		" Versione <b>beta</b> pubblica limitata a scopo di test.\n\n"+
		"🔗 Scopri di più / iscriviti: %s\n"+
		"📝 Feedback: %s\n\n"+
		"<i>Info generali, non è un consulto medico. In emergenza 144.</i>",
		html.EscapeString(waitlistURL), html.EscapeString(feedbackURL))
}
