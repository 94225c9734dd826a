package dal

// MentionLevel controls which @mentions trigger a notification for a
// subscriber. The hover level only reacts to mentions rendered with an
// avatar hover card, which is how the [[*user]] syntax shows up.
type MentionLevel string

const (
	MentionDisabled MentionLevel = "disabled"
	MentionHover    MentionLevel = "avatarhover"
	MentionAll      MentionLevel = "all"
)

func ParseMentionLevel(s string) (MentionLevel, bool) {
	switch MentionLevel(s) {
	case MentionDisabled, MentionHover, MentionAll:
		return MentionLevel(s), true
	}
	return MentionHover, false
}

type Subscriber struct {
	UserId       int
	Username     string
	Email        string
	PushUrls     []string
	Timezone     string
	MentionLevel MentionLevel
	EnablePM     bool
	EnableEmail  bool
	EnablePush   bool
}
