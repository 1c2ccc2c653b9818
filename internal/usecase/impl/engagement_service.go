package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"menfes/config"
	"menfes/internal/domain/entity"
	"menfes/internal/errors"
	"menfes/internal/usecase"
	"menfes/internal/view"

	"github.com/PuerkitoBio/goquery"
)

const copiedLinkMessage = "Link disalin ke papan klip"

type engagementService struct {
	baseURL  string
	client   *http.Client
	identity usecase.IdentityUsecase
	prefs    usecase.PrefsUsecase
	toasts   usecase.ToastUsecase
	doc      *view.Document
	logger   *slog.Logger
}

// NewEngagementService creates the like/share gesture handler.
func NewEngagementService(
	cfg *config.Config,
	client *http.Client,
	identity usecase.IdentityUsecase,
	prefs usecase.PrefsUsecase,
	toasts usecase.ToastUsecase,
	doc *view.Document,
	logger *slog.Logger,
) usecase.EngagementUsecase {
	return &engagementService{
		baseURL:  cfg.Board.BaseURL,
		client:   client,
		identity: identity,
		prefs:    prefs,
		toasts:   toasts,
		doc:      doc,
		logger:   logger,
	}
}

func (s *engagementService) Like(ctx context.Context, postID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/like_post/"+postID, nil)
	if err != nil {
		return errors.Wrap(err, "build like request")
	}
	req.Header.Set("X-UID", s.identity.Current())

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "like post")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("like post returned %s", resp.Status)
	}

	var out struct {
		OK    bool  `json:"ok"`
		Likes int64 `json:"likes"`
		Liked bool  `json:"liked"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return errors.Wrap(err, "decode like response")
	}
	if !out.OK {
		return nil
	}

	// The server's answer is authoritative; the mirrored count and button
	// state follow it rather than guessing a toggle locally.
	s.doc.Update(func(doc *goquery.Document) {
		btn := doc.Find(fmt.Sprintf(`.btn-like[data-id=%q]`, postID)).First()
		if btn.Length() == 0 {
			return
		}
		btn.Find(".like-count").SetText(strconv.FormatInt(out.Likes, 10))
		if out.Liked {
			btn.AddClass("liked")
		} else {
			btn.RemoveClass("liked")
		}
	})

	return nil
}

// Share confirms the copy immediately; the owner-notification ping is fire
// and forget.
func (s *engagementService) Share(ctx context.Context, postID, link string) error {
	s.toasts.Enqueue(entity.NotificationRequest{
		Kind:    entity.KindShare,
		Message: copiedLinkMessage,
	})

	body, err := json.Marshal(map[string]string{"link": link})
	if err != nil {
		return errors.Wrap(err, "encode share ping")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/share_post/"+postID, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build share request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-UID", s.identity.Current())
	req.Header.Set("X-Name", s.prefs.DisplayName(ctx))

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("notify share", slog.String("post_id", postID), slog.Any("error", err))

		return nil
	}
	resp.Body.Close()

	return nil
}
