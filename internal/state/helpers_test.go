package state

import (
	"fmt"

	"github.com/payam49er/avatarhub/internal/catalog"
	"github.com/payam49er/avatarhub/internal/model"
)

// loaderCall records one fetch request issued by the reducer.
type loaderCall struct {
	kind       string // "avatars", "groups", "detail"
	seq        int
	req        catalog.ListAvatarsRequest
	publicOnly bool
	avatarID   string
}

// recordingLoader captures fetches instead of performing them, so tests
// can drive the async half of the machine by hand.
type recordingLoader struct {
	calls []loaderCall
}

func (l *recordingLoader) LoadAvatars(seq int, req catalog.ListAvatarsRequest) {
	l.calls = append(l.calls, loaderCall{kind: "avatars", seq: seq, req: req})
}

func (l *recordingLoader) LoadGroups(seq int, publicOnly bool) {
	l.calls = append(l.calls, loaderCall{kind: "groups", seq: seq, publicOnly: publicOnly})
}

func (l *recordingLoader) LoadDetail(seq int, avatarID string) {
	l.calls = append(l.calls, loaderCall{kind: "detail", seq: seq, avatarID: avatarID})
}

func (l *recordingLoader) callsOf(kind string) []loaderCall {
	var out []loaderCall
	for _, c := range l.calls {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func (l *recordingLoader) last() loaderCall {
	return l.calls[len(l.calls)-1]
}

// testAvatars builds n records alternating gender, every third premium.
func testAvatars(n int) []model.AvatarRecord {
	avatars := make([]model.AvatarRecord, 0, n)
	for i := 0; i < n; i++ {
		gender := model.GenderMale
		if i%2 == 1 {
			gender = model.GenderFemale
		}
		avatars = append(avatars, model.AvatarRecord{
			ID:      fmt.Sprintf("av-%02d", i),
			Name:    fmt.Sprintf("Avatar %02d", i),
			Gender:  gender,
			Premium: i%3 == 0,
		})
	}
	return avatars
}

// newLoadedState is a state as it looks after a successful page-1 fetch
// of a 53-item collection.
func newLoadedState() *GalleryState {
	s := NewGalleryState(20)
	s.ScreenWidth = 80
	s.ScreenHeight = 24
	s.Avatars = testAvatars(20)
	s.Page = model.NewPageInfo(1, 20, 53)
	s.avatarSeq = 1
	return s
}
