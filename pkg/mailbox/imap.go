package mailbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

const snippetMaxChars = 150

// Message is one unread inbox message, reduced to what the digest needs.
type Message struct {
	Sender  string
	Subject string
	Snippet string
}

// Client reads unread messages from an IMAP inbox. Each FetchUnread call
// opens a fresh connection and closes it before returning.
type Client struct {
	addr     string
	username string
	password string
}

func NewClient(addr, username, password string) *Client {
	return &Client{
		addr:     addr,
		username: username,
		password: password,
	}
}

// FetchUnread returns up to limit of the most recent unread messages
// received since the given time.
func (c *Client) FetchUnread(ctx context.Context, since time.Time, limit int) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	conn, err := imapclient.DialTLS(c.addr, nil)
	if err != nil {
		return nil, fmt.Errorf("imap dial %s: %w", c.addr, err)
	}
	defer conn.Close()

	if err := conn.Login(c.username, c.password).Wait(); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}
	defer conn.Logout()

	if _, err := conn.Select("INBOX", &imap.SelectOptions{ReadOnly: true}).Wait(); err != nil {
		return nil, fmt.Errorf("imap select inbox: %w", err)
	}

	criteria := &imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
		Since:   since,
	}
	found, err := conn.Search(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("imap search unseen: %w", err)
	}

	nums := found.AllSeqNums()
	if len(nums) == 0 {
		return nil, nil
	}
	if limit > 0 && len(nums) > limit {
		nums = nums[len(nums)-limit:]
	}

	var seqSet imap.SeqSet
	seqSet.AddNum(nums...)

	textSection := &imap.FetchItemBodySection{Specifier: imap.PartSpecifierText, Peek: true}
	fetched, err := conn.Fetch(seqSet, &imap.FetchOptions{
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{textSection},
	}).Collect()
	if err != nil {
		return nil, fmt.Errorf("imap fetch: %w", err)
	}

	messages := make([]Message, 0, len(fetched))
	for _, msg := range fetched {
		if msg.Envelope == nil {
			continue
		}
		messages = append(messages, Message{
			Sender:  formatSender(msg.Envelope.From),
			Subject: msg.Envelope.Subject,
			Snippet: snippet(string(msg.FindBodySection(textSection)), snippetMaxChars),
		})
	}

	return messages, nil
}

func formatSender(from []imap.Address) string {
	if len(from) == 0 {
		return "Unknown"
	}
	addr := from[0]
	if addr.Name != "" {
		return fmt.Sprintf("%s <%s>", addr.Name, addr.Addr())
	}
	return addr.Addr()
}

// snippet folds all whitespace runs into single spaces and truncates.
func snippet(body string, max int) string {
	folded := strings.Join(strings.Fields(body), " ")
	if folded == "" {
		return "No content preview available"
	}
	if len(folded) > max {
		folded = folded[:max] + "..."
	}
	return folded
}
