package trips

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/tripboard/internal/models"
)

//go:embed data/trips.json
var bundled []byte

// ErrUnknownFormat is returned for trip files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown trip document format")

// idNamespace seeds ids for trips that do not declare one.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/julianstephens/tripboard"))

// entryDoc is the union of a flat agenda item and a day agenda. Which one a
// document meant is decided by the trip's agendaKind tag, or by probing the
// first entry when the tag is absent.
type entryDoc struct {
	Time     string              `json:"time" yaml:"time" toml:"time"`
	Activity string              `json:"activity" yaml:"activity" toml:"activity"`
	Location string              `json:"location" yaml:"location" toml:"location"`
	Note     string              `json:"note" yaml:"note" toml:"note"`
	Date     string              `json:"date" yaml:"date" toml:"date"`
	Items    []models.AgendaItem `json:"items" yaml:"items" toml:"items"`
}

type tripDoc struct {
	ID         string     `json:"id" yaml:"id" toml:"id"`
	Title      string     `json:"title" yaml:"title" toml:"title"`
	Date       string     `json:"date" yaml:"date" toml:"date"`
	StartDate  string     `json:"startDate" yaml:"startDate" toml:"startDate"`
	EndDate    string     `json:"endDate" yaml:"endDate" toml:"endDate"`
	IsVisible  bool       `json:"isVisible" yaml:"isVisible" toml:"isVisible"`
	AgendaKind string     `json:"agendaKind" yaml:"agendaKind" toml:"agendaKind"`
	Agenda     []entryDoc `json:"agenda" yaml:"agenda" toml:"agenda"`
}

type document struct {
	Trips []tripDoc `json:"trips" yaml:"trips" toml:"trips"`
}

// Bundled returns the trip collection compiled into the binary.
func Bundled() (models.TripCollection, error) {
	return Decode(bundled, ".json")
}

// Load reads the trip document at path, or the bundled one when path is empty.
func Load(path string) (models.TripCollection, error) {
	if path == "" {
		return Bundled()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return models.TripCollection{}, fmt.Errorf("failed to read trips: %w", err)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses a trip document; ext selects the format (".json", ".yaml",
// ".yml" or ".toml").
func Decode(data []byte, ext string) (models.TripCollection, error) {
	var doc document
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		return models.TripCollection{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return models.TripCollection{}, fmt.Errorf("failed to parse trips: %w", err)
	}

	out := models.TripCollection{Trips: make([]models.Trip, 0, len(doc.Trips))}
	for _, td := range doc.Trips {
		out.Trips = append(out.Trips, td.toTrip())
	}
	return out, nil
}

func (td tripDoc) toTrip() models.Trip {
	t := models.Trip{
		ID:        td.ID,
		Title:     td.Title,
		Date:      td.Date,
		StartDate: td.StartDate,
		EndDate:   td.EndDate,
		IsVisible: td.IsVisible,
	}
	if t.ID == "" {
		t.ID = StableID(td.Title)
	}

	switch agendaKind(td) {
	case models.AgendaMultiDay:
		t.Agenda.Kind = models.AgendaMultiDay
		for _, e := range td.Agenda {
			t.Agenda.Days = append(t.Agenda.Days, models.DayAgenda{Date: e.Date, Items: e.Items})
		}
	default:
		t.Agenda.Kind = models.AgendaSingleDay
		for _, e := range td.Agenda {
			t.Agenda.Items = append(t.Agenda.Items, models.AgendaItem{
				Time:     e.Time,
				Activity: e.Activity,
				Location: e.Location,
				Note:     e.Note,
			})
		}
	}
	return t
}

func agendaKind(td tripDoc) models.AgendaKind {
	switch models.AgendaKind(strings.ToLower(td.AgendaKind)) {
	case models.AgendaSingleDay:
		return models.AgendaSingleDay
	case models.AgendaMultiDay:
		return models.AgendaMultiDay
	}
	// Untagged legacy documents: a flat agenda's entries carry a time.
	if len(td.Agenda) > 0 && td.Agenda[0].Time == "" && (td.Agenda[0].Date != "" || td.Agenda[0].Items != nil) {
		return models.AgendaMultiDay
	}
	return models.AgendaSingleDay
}

// StableID derives a deterministic id from a trip title.
func StableID(title string) string {
	return uuid.NewSHA1(idNamespace, []byte(title)).String()
}

// Visible returns the trips flagged visible, preserving order.
func Visible(all []models.Trip) []models.Trip {
	out := make([]models.Trip, 0, len(all))
	for _, t := range all {
		if t.IsVisible {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the trip with the given id.
func Find(all []models.Trip, id string) (models.Trip, bool) {
	for _, t := range all {
		if t.ID == id {
			return t, true
		}
	}
	return models.Trip{}, false
}
