package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"authmsg/internal/domain/entities"
	"authmsg/internal/domain/messages"
	"authmsg/internal/domain/resolver"
	"authmsg/internal/ports/input"
	"authmsg/internal/ports/output"
)

var _ input.LocalizeUseCase = (*LocalizeService)(nil)

// LocalizeService binds the resolver to the translator catalogs and keeps
// track of messages that fell back untranslated.
type LocalizeService struct {
	resolver   *resolver.Resolver
	translator output.Translator
	unmatched  output.UnmatchedRepository
	notifier   output.UnmatchedNotifier
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalizeService wires the use case. unmatched and notifier may be nil,
// in which case fallbacks are not recorded or reported.
func NewLocalizeService(
	r *resolver.Resolver,
	translator output.Translator,
	unmatched output.UnmatchedRepository,
	notifier output.UnmatchedNotifier,
	logger *slog.Logger,
) *LocalizeService {
	if r == nil {
		r = resolver.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalizeService{
		resolver:   r,
		translator: translator,
		unmatched:  unmatched,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// localeCatalog exposes one locale of the translator as a resolver.Catalog.
type localeCatalog struct {
	t      output.T
	locale string
}

func (c localeCatalog) Message(id messages.ID) string {
	return c.t.T(c.locale, string(id), nil)
}

func (s *LocalizeService) NegotiateLocale(preferences ...string) string {
	return s.translator.Match(preferences...)
}

func (s *LocalizeService) Localize(ctx context.Context, locale, raw string) input.Localized {
	locale = s.translator.Match(locale)
	msg, matched := s.lookup(ctx, locale, raw)
	return input.Localized{Locale: locale, Message: msg, Matched: matched}
}

// LocalizeFields localizes the first message of every field.
func (s *LocalizeService) LocalizeFields(ctx context.Context, locale string, fields map[string][]string) (string, map[string]string) {
	locale = s.translator.Match(locale)
	return locale, s.localizeFirst(ctx, locale, fields)
}

func (s *LocalizeService) LocalizeAPIError(ctx context.Context, locale string, body []byte) (input.LocalizedError, error) {
	apiErr, err := resolver.ParseAPIError(body)
	if err != nil {
		return input.LocalizedError{}, fmt.Errorf("localize api error: %w", err)
	}
	locale = s.translator.Match(locale)
	msg, _ := s.lookup(ctx, locale, apiErr.Message)
	return input.LocalizedError{
		Locale:  locale,
		Message: msg,
		Errors:  s.localizeFirst(ctx, locale, apiErr.Errors),
	}, nil
}

func (s *LocalizeService) localizeFirst(ctx context.Context, locale string, fields map[string][]string) map[string]string {
	out, unmatched := resolver.LookupFieldErrors(s.resolver, resolver.FirstErrors(fields), localeCatalog{t: s.translator, locale: locale})
	for _, raw := range unmatched {
		s.recordUnmatched(ctx, locale, raw)
	}
	return out
}

func (s *LocalizeService) lookup(ctx context.Context, locale, raw string) (string, bool) {
	msg, matched := s.resolver.Lookup(raw, localeCatalog{t: s.translator, locale: locale})
	if !matched {
		s.recordUnmatched(ctx, locale, raw)
	}
	return msg, matched
}

// recordUnmatched never fails the caller: storage and notification errors
// are only logged.
func (s *LocalizeService) recordUnmatched(ctx context.Context, locale, raw string) {
	if s.unmatched == nil {
		return
	}
	canonical := resolver.Normalize(raw)
	if canonical == "" {
		return
	}
	now := s.now()
	msg := &entities.UnmatchedMessage{
		Raw:         strings.TrimSpace(raw),
		Canonical:   canonical,
		Locale:      locale,
		Hits:        1,
		FirstSeenAt: now,
		LastSeenAt:  now,
	}
	firstSeen, err := s.unmatched.Record(ctx, msg)
	if err != nil {
		s.logger.Error("record unmatched message", "canonical", canonical, "err", err)
		return
	}
	s.logger.Debug("unmatched message", "canonical", canonical, "hits", msg.Hits, "first_seen", firstSeen)
	if !firstSeen || s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyUnmatched(ctx, *msg); err != nil {
		s.logger.Warn("notify unmatched message", "canonical", canonical, "err", err)
	}
}
