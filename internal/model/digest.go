package model

import (
	"time"

	"github.com/krishang118/Butler-Briefing-Automation/pkg/mailbox"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/news"
	"github.com/krishang118/Butler-Briefing-Automation/pkg/weather"
)

// Digest is the aggregate of everything fetched for one run. Sources
// that failed contribute empty fields; the digest itself is always
// valid input for composition.
type Digest struct {
	Headlines []news.Headline
	Weather   *weather.Snapshot
	Inbox     []mailbox.Message
	FetchedAt time.Time
}

func (d Digest) Empty() bool {
	return len(d.Headlines) == 0 && d.Weather == nil && len(d.Inbox) == 0
}
