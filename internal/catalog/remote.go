package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/payam49er/avatarhub/internal/model"
)

const (
	defaultTimeout = 15 * time.Second

	avatarsPath     = "/v2/avatars"
	groupListPath   = "/v2/avatar_group.list"
	avatarDetailFmt = "/v2/avatar/%s/details"
)

// RemoteSource implements Source against the live catalog API. Every
// response body is an envelope {"error": ..., "data": {...}}; a non-null
// error field is a failure even when the HTTP status is 200.
type RemoteSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRemoteSource builds a RemoteSource for the given API base URL. The
// key is sent as the X-Api-Key header on every request.
func NewRemoteSource(baseURL, apiKey string) *RemoteSource {
	return &RemoteSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

type envelope struct {
	Error json.RawMessage `json:"error"`
	Data  json.RawMessage `json:"data"`
}

type remoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type avatarListData struct {
	Avatars    []model.AvatarRecord `json:"avatars"`
	Count      int                  `json:"count"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

type groupListData struct {
	Groups []model.GroupRecord `json:"groups"`
	Count  int                 `json:"count"`
	Total  int                 `json:"total"`
}

// ListAvatars fetches one page of avatars, optionally scoped to a group.
func (s *RemoteSource) ListAvatars(ctx context.Context, req ListAvatarsRequest) (AvatarPage, error) {
	if req.Page < 1 {
		return AvatarPage{}, fmt.Errorf("catalog: page must be >= 1, got %d", req.Page)
	}
	if req.PageSize < 1 {
		return AvatarPage{}, fmt.Errorf("catalog: page size must be > 0, got %d", req.PageSize)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("page_size", strconv.Itoa(req.PageSize))
	if req.GroupID != "" {
		q.Set("avatar_group_id", req.GroupID)
	}

	var data avatarListData
	if err := s.get(ctx, avatarsPath, q, &data); err != nil {
		return AvatarPage{}, err
	}

	avatars := data.Avatars
	for i := range avatars {
		avatars[i].Name = norm.NFC.String(avatars[i].Name)
	}

	info := model.NewPageInfo(data.Page, req.PageSize, data.Total)
	if data.TotalPages > 0 {
		info.TotalPages = data.TotalPages
	}
	return AvatarPage{Avatars: avatars, Info: info}, nil
}

// ListGroups fetches the group listing.
func (s *RemoteSource) ListGroups(ctx context.Context, publicOnly bool) (GroupList, error) {
	q := url.Values{}
	if publicOnly {
		q.Set("include_public_only", "true")
	}

	var data groupListData
	if err := s.get(ctx, groupListPath, q, &data); err != nil {
		return GroupList{}, err
	}

	for i := range data.Groups {
		data.Groups[i].Title = norm.NFC.String(data.Groups[i].Title)
	}

	total := data.Total
	if total == 0 {
		total = len(data.Groups)
	}
	return GroupList{Groups: data.Groups, Total: total}, nil
}

// AvatarDetail fetches the detail record for one avatar.
func (s *RemoteSource) AvatarDetail(ctx context.Context, avatarID string) (model.AvatarDetail, error) {
	if avatarID == "" {
		return model.AvatarDetail{}, fmt.Errorf("catalog: empty avatar id")
	}

	path := fmt.Sprintf(avatarDetailFmt, url.PathEscape(avatarID))
	var detail model.AvatarDetail
	if err := s.get(ctx, path, nil, &detail); err != nil {
		return model.AvatarDetail{}, err
	}
	detail.Name = norm.NFC.String(detail.Name)
	return detail, nil
}

// get performs one GET round trip, unwraps the envelope, and decodes the
// data payload into out.
func (s *RemoteSource) get(ctx context.Context, path string, q url.Values, out any) error {
	u := s.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog: %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("catalog: %s: read body: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("catalog: %s: decode envelope: %w", path, err)
	}
	if msg, failed := envelopeError(env.Error); failed {
		return fmt.Errorf("%w: %s", ErrLogicalFailure, msg)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("catalog: %s: envelope has no data", path)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("catalog: %s: decode data: %w", path, err)
	}
	return nil
}

// envelopeError interprets the envelope's error field. Absent or JSON
// null means success; anything else is a logical failure.
func envelopeError(raw json.RawMessage) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", false
	}

	var re remoteError
	if err := json.Unmarshal(raw, &re); err == nil && re.Message != "" {
		if re.Code != "" {
			return re.Code + ": " + re.Message, true
		}
		return re.Message, true
	}

	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil && plain != "" {
		return plain, true
	}
	return trimmed, true
}
