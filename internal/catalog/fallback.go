package catalog

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/payam49er/avatarhub/internal/model"
)

// idNamespace seeds uuid.NewSHA1 so fallback identifiers are stable
// across processes and platforms.
var idNamespace = uuid.MustParse("b6a4f7a2-30c9-4d8e-9a41-5cf2d1d0a7e3")

// groupWindowSize is how many pool avatars a fallback group spans.
const groupWindowSize = 12

type poolEntry struct {
	name    string
	gender  model.Gender
	premium bool
	typ     string
	tags    []string
}

// fallbackPool is the fixed candidate set the substitute listing pages
// through. Order matters: group windows are sliced by position.
var fallbackPool = []poolEntry{
	{"Amelia", model.GenderFemale, true, "studio", []string{"business", "presenter"}},
	{"Brandon", model.GenderMale, false, "studio", []string{"casual"}},
	{"Carmen", model.GenderFemale, false, "lite", []string{"casual", "outdoor"}},
	{"Derek", model.GenderMale, true, "studio", []string{"business"}},
	{"Elena", model.GenderFemale, true, "studio", []string{"news", "presenter"}},
	{"Felix", model.GenderMale, false, "lite", []string{"casual"}},
	{"Gabriela", model.GenderFemale, false, "studio", []string{"education"}},
	{"Hassan", model.GenderMale, true, "studio", []string{"business", "formal"}},
	{"Ingrid", model.GenderFemale, false, "lite", []string{"outdoor"}},
	{"Jamal", model.GenderMale, false, "studio", []string{"sports"}},
	{"Keiko", model.GenderFemale, true, "studio", []string{"news"}},
	{"Lucas", model.GenderMale, false, "lite", []string{"casual", "young"}},
	{"Maya", model.GenderFemale, false, "studio", []string{"education", "presenter"}},
	{"Nikolai", model.GenderMale, true, "studio", []string{"formal"}},
	{"Olivia", model.GenderFemale, true, "studio", []string{"business"}},
	{"Pablo", model.GenderMale, false, "lite", []string{"outdoor"}},
	{"Qiang", model.GenderMale, false, "studio", []string{"tech"}},
	{"Rosa", model.GenderFemale, false, "lite", []string{"casual"}},
	{"Stefan", model.GenderMale, true, "studio", []string{"news", "formal"}},
	{"Tara", model.GenderFemale, false, "studio", []string{"sports"}},
	{"Umar", model.GenderMale, false, "lite", []string{"casual"}},
	{"Valentina", model.GenderFemale, true, "studio", []string{"fashion"}},
	{"Wei", model.GenderMale, false, "studio", []string{"tech", "presenter"}},
	{"Ximena", model.GenderFemale, false, "lite", []string{"young"}},
	{"Yusuf", model.GenderMale, true, "studio", []string{"business"}},
	{"Zoe", model.GenderFemale, false, "studio", []string{"education"}},
	{"Andre", model.GenderMale, false, "lite", []string{"sports"}},
	{"Bianca", model.GenderFemale, true, "studio", []string{"news"}},
	{"Carlos", model.GenderMale, false, "studio", []string{"casual"}},
	{"Daria", model.GenderFemale, false, "lite", []string{"outdoor", "young"}},
	{"Emil", model.GenderMale, true, "studio", []string{"formal"}},
	{"Fatima", model.GenderFemale, false, "studio", []string{"education"}},
	{"Giorgio", model.GenderMale, false, "lite", []string{"fashion"}},
	{"Hana", model.GenderFemale, true, "studio", []string{"business", "presenter"}},
	{"Ivan", model.GenderMale, false, "studio", []string{"tech"}},
	{"Jasmine", model.GenderFemale, false, "lite", []string{"casual"}},
	{"Kofi", model.GenderMale, true, "studio", []string{"news"}},
	{"Leila", model.GenderFemale, false, "studio", []string{"formal"}},
	{"Marco", model.GenderMale, false, "lite", []string{"sports", "outdoor"}},
	{"Nadia", model.GenderFemale, true, "studio", []string{"business"}},
	{"Oscar", model.GenderMale, false, "studio", []string{"education"}},
	{"Priya", model.GenderFemale, false, "lite", []string{"tech", "young"}},
	{"Quinn", model.GenderMale, true, "studio", []string{"casual"}},
	{"Renata", model.GenderFemale, false, "studio", []string{"fashion"}},
	{"Sergei", model.GenderMale, false, "lite", []string{"formal"}},
	{"Tomoko", model.GenderFemale, true, "studio", []string{"news", "presenter"}},
	{"Ulrich", model.GenderMale, false, "studio", []string{"business"}},
	{"Vera", model.GenderFemale, false, "lite", []string{"outdoor"}},
	{"Walter", model.GenderMale, true, "studio", []string{"education"}},
	{"Xia", model.GenderFemale, false, "studio", []string{"tech"}},
	{"Yara", model.GenderFemale, true, "lite", []string{"sports"}},
	{"Zachary", model.GenderMale, false, "studio", []string{"casual", "presenter"}},
	{"Astrid", model.GenderFemale, false, "studio", []string{"formal", "news"}},
}

type fallbackGroup struct {
	title       string
	description string
	public      bool
}

var fallbackGroups = []fallbackGroup{
	{"Business Presenters", "Formal studio avatars for corporate videos", true},
	{"Casual Everyday", "Relaxed looks for informal content", true},
	{"News Desk", "Anchor-style avatars with neutral delivery", true},
	{"Education", "Teachers and explainers", true},
	{"Outdoor & Sports", "Active avatars shot outside the studio", false},
	{"Fashion Studio", "Editorial looks and styled sets", false},
}

// FallbackSource serves the deterministic substitute dataset. It
// implements Source and never returns an error, which also makes it the
// backing store for offline mode.
type FallbackSource struct{}

// NewFallbackSource returns the shared substitute dataset.
func NewFallbackSource() *FallbackSource {
	return &FallbackSource{}
}

func fallbackAvatarID(name string) string {
	return uuid.NewSHA1(idNamespace, []byte("avatar:"+name)).String()
}

func fallbackGroupID(title string) string {
	return uuid.NewSHA1(idNamespace, []byte("group:"+title)).String()
}

func fallbackRecord(e poolEntry) model.AvatarRecord {
	id := fallbackAvatarID(e.name)
	return model.AvatarRecord{
		ID:              id,
		Name:            e.name,
		Gender:          e.gender,
		Premium:         e.premium,
		PreviewImageURL: fmt.Sprintf("https://static.avatarhub.local/previews/%s.jpg", id),
		PreviewVideoURL: fmt.Sprintf("https://static.avatarhub.local/previews/%s.mp4", id),
		Type:            e.typ,
		Tags:            append([]string(nil), e.tags...),
		DefaultVoiceID:  fallbackVoices[hashString(id)%uint64(len(fallbackVoices))].ID,
	}
}

// groupWindow narrows the pool to a deterministic slice derived from the
// group's ordinal position. Unknown group ids fall back to the full pool
// so a stale filter still yields a browsable listing.
func groupWindow(groupID string) []poolEntry {
	if groupID == "" {
		return fallbackPool
	}
	for ord, g := range fallbackGroups {
		if fallbackGroupID(g.title) != groupID {
			continue
		}
		start := (ord * groupWindowSize) % len(fallbackPool)
		end := start + groupWindowSize
		if end > len(fallbackPool) {
			end = len(fallbackPool)
		}
		return fallbackPool[start:end]
	}
	return fallbackPool
}

// ListAvatars pages through the fixed pool, applying the same
// group-slicing policy as the live path. The error result is always nil.
func (s *FallbackSource) ListAvatars(_ context.Context, req ListAvatarsRequest) (AvatarPage, error) {
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	window := groupWindow(req.GroupID)
	info := model.NewPageInfo(req.Page, pageSize, len(window))

	start := (info.Page - 1) * pageSize
	end := start + pageSize
	if end > len(window) {
		end = len(window)
	}

	avatars := make([]model.AvatarRecord, 0, end-start)
	for _, e := range window[start:end] {
		avatars = append(avatars, fallbackRecord(e))
	}
	return AvatarPage{Avatars: avatars, Info: info}, nil
}

// ListGroups returns the fixed substitute group set.
func (s *FallbackSource) ListGroups(_ context.Context, publicOnly bool) (GroupList, error) {
	groups := make([]model.GroupRecord, 0, len(fallbackGroups))
	for ord, g := range fallbackGroups {
		if publicOnly && !g.public {
			continue
		}
		id := fallbackGroupID(g.title)
		start := (ord * groupWindowSize) % len(fallbackPool)
		end := start + groupWindowSize
		if end > len(fallbackPool) {
			end = len(fallbackPool)
		}
		groups = append(groups, model.GroupRecord{
			ID:              id,
			Title:           g.title,
			Description:     g.description,
			NumAvatars:      end - start,
			Public:          g.public,
			PreviewImageURL: fmt.Sprintf("https://static.avatarhub.local/groups/%s.jpg", id),
			CreatedAt:       fallbackEpoch,
			UpdatedAt:       fallbackEpoch,
		})
	}
	return GroupList{Groups: groups, Total: len(groups)}, nil
}

// fallbackEpoch keeps substitute timestamps fixed so two consecutive
// fallback responses are byte-identical.
var fallbackEpoch = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

var fallbackStatuses = []string{"active", "active", "active", "in_review"}

var fallbackLanguages = [][]string{
	{"en"},
	{"en", "es"},
	{"en", "fr", "de"},
	{"en", "ja"},
	{"en", "es", "pt"},
}

var fallbackDescriptions = []string{
	"A versatile presenter suited for product walkthroughs and announcements.",
	"Warm, conversational delivery that works well for tutorials.",
	"Crisp and formal, at home in corporate updates and reports.",
	"Energetic on-camera presence for social clips.",
}

var fallbackVoices = []model.VoiceOption{
	{ID: "voice-en-amber", Name: "Amber", Language: "en", Gender: model.GenderFemale},
	{ID: "voice-en-cole", Name: "Cole", Language: "en", Gender: model.GenderMale},
	{ID: "voice-es-lucia", Name: "Lucía", Language: "es", Gender: model.GenderFemale},
	{ID: "voice-de-jonas", Name: "Jonas", Language: "de", Gender: model.GenderMale},
	{ID: "voice-ja-rin", Name: "Rin", Language: "ja", Gender: model.GenderFemale},
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// AvatarDetail synthesizes a detail record seeded from the requested id,
// so repeated calls for the same id are stable. Ids from the pool keep
// their listing fields; unknown ids get a plausible record.
func (s *FallbackSource) AvatarDetail(_ context.Context, avatarID string) (model.AvatarDetail, error) {
	record, known := poolRecordByID(avatarID)
	if !known {
		seed := hashString(avatarID)
		e := fallbackPool[seed%uint64(len(fallbackPool))]
		record = fallbackRecord(e)
		record.ID = avatarID
	}

	seed := hashString(record.ID)
	voiceCount := 2 + int(seed%2)
	voices := make([]model.VoiceOption, 0, voiceCount)
	for i := 0; i < voiceCount; i++ {
		voices = append(voices, fallbackVoices[(seed+uint64(i))%uint64(len(fallbackVoices))])
	}

	return model.AvatarDetail{
		AvatarRecord:         record,
		Description:          fallbackDescriptions[seed%uint64(len(fallbackDescriptions))],
		Status:               fallbackStatuses[seed%uint64(len(fallbackStatuses))],
		Languages:            append([]string(nil), fallbackLanguages[seed%uint64(len(fallbackLanguages))]...),
		Voices:               voices,
		VideoCount:           int(seed % 500),
		TotalDurationSeconds: float64(seed%36000) / 10,
		CreatedAt:            fallbackEpoch,
		UpdatedAt:            fallbackEpoch,
	}, nil
}

func poolRecordByID(id string) (model.AvatarRecord, bool) {
	for _, e := range fallbackPool {
		if fallbackAvatarID(e.name) == id {
			return fallbackRecord(e), true
		}
	}
	return model.AvatarRecord{}, false
}
