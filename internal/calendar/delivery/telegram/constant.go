package telegram

import pkgTelegram "calendar-assistant/pkg/telegram"

const (
	defaultEventsLimit = 10
	defaultBotName     = "mixa"

	cmdStart      = "start"
	cmdHelp       = "help"
	cmdEvents     = "events"
	cmdWhatIsName = "whatisname"

	msgStart = "I'm a bot, please talk to me!"
	msgHelp  = "Tell me what to do with your calendar, for example:\n" +
		"- Lunch with Anna on Friday at 13:00\n" +
		"- Move the dentist to next Tuesday 10:00\n" +
		"- Cancel the team sync tomorrow\n\n" +
		"Voice messages work too. /events shows what is coming up."
	msgProcessingFailed = "Something went wrong while handling your request. Please try again."
	msgVoiceDownload    = "I could not download that voice message. Please try again."
)

// Commands is the command menu registered with Telegram.
func Commands() []pkgTelegram.Command {
	return []pkgTelegram.Command{
		{Name: cmdStart, Description: "Say hello"},
		{Name: cmdHelp, Description: "How to talk to me"},
		{Name: cmdEvents, Description: "Show upcoming events"},
		{Name: cmdWhatIsName, Description: "Ask my name"},
	}
}
