package state

import (
	"testing"

	"github.com/payam49er/avatarhub/internal/model"
)

func TestShowDetailsFetchesLazily(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()

	_, _ = reducer.Reduce(s, ShowDetailsAction{AvatarID: "av-03"})

	if !s.Detail.Open || !s.Detail.Loading {
		t.Fatal("detail view should open in the loading state")
	}
	if loader.last().kind != "detail" || loader.last().avatarID != "av-03" {
		t.Fatalf("expected a detail fetch for av-03, got %+v", loader.last())
	}

	detail := model.AvatarDetail{AvatarRecord: model.AvatarRecord{ID: "av-03", Name: "Avatar 03"}}
	_, _ = reducer.Reduce(s, DetailLoadedAction{Seq: loader.last().seq, AvatarID: "av-03", Detail: detail})

	if s.Detail.Loading {
		t.Error("loading flag should clear once the detail arrives")
	}
	if s.Detail.Detail == nil || s.Detail.Detail.ID != "av-03" {
		t.Error("fetched detail should be attached to the open view")
	}
}

func TestCloseDiscardsInFlightDetail(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()

	_, _ = reducer.Reduce(s, ShowDetailsAction{AvatarID: "av-03"})
	seq := loader.last().seq
	_, _ = reducer.Reduce(s, CloseDetailsAction{})

	// The fetch resolves after the view closed.
	detail := model.AvatarDetail{AvatarRecord: model.AvatarRecord{ID: "av-03"}}
	_, _ = reducer.Reduce(s, DetailLoadedAction{Seq: seq, AvatarID: "av-03", Detail: detail})

	if s.Detail.Open || s.Detail.Detail != nil {
		t.Fatal("a detail resolving after close must be discarded")
	}
}

func TestReopeningSupersedesOlderDetail(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()

	_, _ = reducer.Reduce(s, ShowDetailsAction{AvatarID: "av-01"})
	firstSeq := loader.last().seq
	_, _ = reducer.Reduce(s, CloseDetailsAction{})
	_, _ = reducer.Reduce(s, ShowDetailsAction{AvatarID: "av-02"})
	secondSeq := loader.last().seq

	// The old fetch resolves late; only the new one may apply.
	_, _ = reducer.Reduce(s, DetailLoadedAction{
		Seq: firstSeq, AvatarID: "av-01",
		Detail: model.AvatarDetail{AvatarRecord: model.AvatarRecord{ID: "av-01"}},
	})
	if s.Detail.Detail != nil {
		t.Fatal("stale detail must not attach to the newer view")
	}

	_, _ = reducer.Reduce(s, DetailLoadedAction{
		Seq: secondSeq, AvatarID: "av-02",
		Detail: model.AvatarDetail{AvatarRecord: model.AvatarRecord{ID: "av-02"}},
	})
	if s.Detail.Detail == nil || s.Detail.Detail.ID != "av-02" {
		t.Fatal("the current view's detail should apply")
	}
}

func TestOpenSelectedAvatarOpensDetails(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()
	s.SelectedAvatar = 2

	_, _ = reducer.Reduce(s, OpenSelectedAction{})

	visible := s.VisibleAvatars()
	if !s.Detail.Open || s.Detail.AvatarID != visible[2].ID {
		t.Fatalf("expected detail for %q, got %+v", visible[2].ID, s.Detail)
	}
}
