package slack

// HelpMessage is returned for any command text that routes nowhere.
func HelpMessage() Message {
	body := "*Attendance commands*\n" +
		"`/tpeo register First_Name Last_Name` — register yourself in the attendance system\n" +
		"`/tpeo checkin <event abbreviation>` — check into an event while it's open\n" +
		"Check-in opens any time before the event and closes 10 minutes after it starts."
	return NewMessage("", body, TypeEphemeral)
}
