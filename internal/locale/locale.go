// Package locale renders user-facing text in the configured language.
package locale

import (
	"embed"
	"fmt"
	"path"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// buddhistEraOffset converts Gregorian years to the Thai solar calendar.
const buddhistEraOffset = 543

// Message ids shared with callers.
const (
	MsgNoTrips      = "no_trips"
	MsgCurrent      = "current"
	MsgNote         = "note"
	MsgDone         = "done"
	MsgSelectTrip   = "select_trip"
	MsgExportSaved  = "export_saved"
	MsgExportFailed = "export_failed"
	MsgResetDone    = "reset_done"
)

// Locale localizes strings for a single language.
type Locale struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

var bundle = newBundle()

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.Thai)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFS.ReadDir("messages")
	if err != nil {
		panic(fmt.Sprintf("locale: reading embedded messages: %v", err))
	}
	for _, e := range entries {
		name := path.Join("messages", e.Name())
		data, err := messageFS.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("locale: reading %s: %v", name, err))
		}
		if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
			panic(fmt.Sprintf("locale: parsing %s: %v", name, err))
		}
	}
	return b
}

// New returns a Locale for lang ("th" or "en"). Unknown languages fall back
// to Thai.
func New(lang string) *Locale {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Thai
	}
	base, _ := tag.Base()
	if base.String() != "en" {
		tag = language.Thai
	} else {
		tag = language.English
	}
	return &Locale{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}
}

// Tag returns the active language.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// T localizes a plain message.
func (l *Locale) T(id string) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id})
}

// Tf localizes a message with template data.
func (l *Locale) Tf(id string, data map[string]any) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

func (l *Locale) localize(cfg *i18n.LocalizeConfig) string {
	s, err := l.localizer.Localize(cfg)
	if err != nil {
		return cfg.MessageID
	}
	return s
}

// DurationText formats a minute count. Zero yields the empty string.
func (l *Locale) DurationText(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	hours, mins := minutes/60, minutes%60
	switch {
	case hours == 0:
		return l.minutesText(mins)
	case mins == 0:
		return l.hoursText(hours)
	default:
		return l.hoursText(hours) + " " + l.minutesText(mins)
	}
}

func (l *Locale) hoursText(n int) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    "duration_hours",
		TemplateData: map[string]any{"Hours": n},
		PluralCount:  n,
	})
}

func (l *Locale) minutesText(n int) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    "duration_minutes",
		TemplateData: map[string]any{"Minutes": n},
		PluralCount:  n,
	})
}

// LongDate formats a date with weekday and month names. Thai dates use the
// Buddhist era.
func (l *Locale) LongDate(d time.Time) string {
	year := d.Year()
	if l.tag == language.Thai {
		year += buddhistEraOffset
	}
	return l.Tf("long_date", map[string]any{
		"Weekday": l.T(fmt.Sprintf("weekday_%d", int(d.Weekday()))),
		"Day":     d.Day(),
		"Month":   l.T(fmt.Sprintf("month_%d", int(d.Month()))),
		"Year":    year,
	})
}
