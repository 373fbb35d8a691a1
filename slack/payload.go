package slack

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tpeo/attendbot/errors"
)

// CommandPayload is the slice of the slash-command form this service
// consumes.
type CommandPayload struct {
	UserName   string
	TeamID     string
	TeamDomain string
	Text       string
}

// mention markup like <@U123> or <@U123|display.name>; the pipe is
// rewritten first so display names with dots still match.
var mentionPattern = regexp.MustCompile(`<@[\w\.]+%?[\w\.]+>`)

// ParsePayload decodes the url-encoded slash-command body.
func ParsePayload(body string) (*CommandPayload, error) {
	form, err := url.ParseQuery(body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeMalformedInput,
			"unparseable command payload", err)
	}
	return &CommandPayload{
		UserName:   form.Get("user_name"),
		TeamID:     form.Get("team_id"),
		TeamDomain: form.Get("team_domain"),
		Text:       form.Get("text"),
	}, nil
}

// CleanText strips user-mention markup from command text and trims it.
// Case is preserved: registration extracts the display name from the
// original-case text.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "|", "%")
	text = mentionPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
