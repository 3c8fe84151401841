package connectors

import (
	"github.com/go-telegram/bot/models"
)

func quickKeyboard() *models.ReplyKeyboardMarkup {
	rows := make([][]models.KeyboardButton, 0, len(quickSuggestions))
	for _, row := range quickSuggestions {
		buttons := make([]models.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, models.KeyboardButton{Text: label})
		}
		rows = append(rows, buttons)
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:        rows,
		ResizeKeyboard:  true,
		OneTimeKeyboard: false,
	}
}

func (t *Telegram) ctaKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: waitlistButton, URL: t.waitlistURL}},
			{{Text: feedbackButton, URL: t.feedbackURL}},
		},
	}
}
