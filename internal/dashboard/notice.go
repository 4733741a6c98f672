package dashboard

import (
	"sync"
	"time"
)

// NoticeKind distinguishes success banners from error banners.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient dashboard banner.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// NoticeBoard holds at most one active notice. A new notice replaces the
// current one; an expired notice is gone regardless of kind.
type NoticeBoard struct {
	mu      sync.Mutex
	ttl     time.Duration
	current Notice
	expires time.Time
	now     func() time.Time
}

// NewNoticeBoard constructs a board with the given notice lifetime.
func NewNoticeBoard(ttl time.Duration) *NoticeBoard {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &NoticeBoard{ttl: ttl, now: time.Now}
}

// Publish installs a notice, replacing whatever was showing.
func (b *NoticeBoard) Publish(kind NoticeKind, message string) {
	b.mu.Lock()
	b.current = Notice{Kind: kind, Message: message}
	b.expires = b.now().Add(b.ttl)
	b.mu.Unlock()
}

// Current returns the active notice, if any.
func (b *NoticeBoard) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expires.IsZero() || b.now().After(b.expires) {
		return Notice{}, false
	}
	return b.current, true
}
