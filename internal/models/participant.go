package models

import (
	"encoding/json"
	"strings"
)

// Participant is one submitted survey record. The named fields cover what
// the intake form collects today; Extra carries any additional
// client-supplied key/value pairs verbatim so the API stays tolerant of
// form changes that ship ahead of the server.
type Participant struct {
	ID                  int
	Name                string
	CongressionalOffice string
	AudienceProfile     string
	PrimaryConcern      string
	Adjectives          []string
	Priorities          []string
	SelectedTraits      []string
	Timestamp           string
	Extra               map[string]any
}

// Known field names on the wire. Everything else lands in Extra.
const (
	fieldID        = "id"
	fieldName      = "name"
	fieldOffice    = "congressionalOffice"
	fieldProfile   = "audienceProfile"
	fieldConcern   = "primaryConcern"
	fieldAdjective = "adjectives"
	fieldPriority  = "priorities"
	fieldTraits    = "selectedTraits"
	fieldTimestamp = "timestamp"
)

// FromMap builds a Participant from an arbitrary decoded JSON object.
// Known keys of the expected type are lifted into struct fields; known
// keys of the wrong type stay in Extra untouched rather than being
// rejected. Client-supplied id and timestamp are dropped: the store owns
// both.
func FromMap(fields map[string]any) *Participant {
	p := &Participant{}
	for k, v := range fields {
		switch k {
		case fieldID, fieldTimestamp:
			continue
		case fieldName:
			if s, ok := v.(string); ok {
				p.Name = s
				continue
			}
		case fieldOffice:
			if s, ok := v.(string); ok {
				p.CongressionalOffice = s
				continue
			}
		case fieldProfile:
			if s, ok := v.(string); ok {
				p.AudienceProfile = s
				continue
			}
		case fieldConcern:
			if s, ok := v.(string); ok {
				p.PrimaryConcern = s
				continue
			}
		case fieldAdjective:
			if ss, ok := asStringSlice(v); ok {
				p.Adjectives = ss
				continue
			}
		case fieldPriority:
			if ss, ok := asStringSlice(v); ok {
				p.Priorities = ss
				continue
			}
		case fieldTraits:
			if ss, ok := asStringSlice(v); ok {
				p.SelectedTraits = ss
				continue
			}
		}
		if p.Extra == nil {
			p.Extra = map[string]any{}
		}
		p.Extra[k] = v
	}
	return p
}

// OfficeKey returns the grouping key of the congressional office field:
// the text before the first '|', or the whole value when no '|' is
// present. An empty field has no key.
func (p *Participant) OfficeKey() (string, bool) {
	if p.CongressionalOffice == "" {
		return "", false
	}
	key, _, _ := strings.Cut(p.CongressionalOffice, "|")
	return key, true
}

// OfficeName returns the human-readable office name: the text after the
// first '|', or the whole value when no '|' is present. Records without
// an office render as "Unknown".
func (p *Participant) OfficeName() string {
	if p.CongressionalOffice == "" {
		return "Unknown"
	}
	if _, name, found := strings.Cut(p.CongressionalOffice, "|"); found {
		return name
	}
	return p.CongressionalOffice
}

// SearchText is the lowercased haystack used by substring search. Absent
// fields contribute nothing.
func (p *Participant) SearchText() string {
	return strings.ToLower(p.Name + " " + p.CongressionalOffice + " " + p.AudienceProfile)
}

// MarshalJSON flattens the record into a single JSON object: extras first,
// then the named fields. Optional fields are omitted when unset so the
// output mirrors what the client submitted.
func (p *Participant) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+9)
	for k, v := range p.Extra {
		out[k] = v
	}
	out[fieldID] = p.ID
	if p.Name != "" {
		out[fieldName] = p.Name
	}
	if p.CongressionalOffice != "" {
		out[fieldOffice] = p.CongressionalOffice
	}
	if p.AudienceProfile != "" {
		out[fieldProfile] = p.AudienceProfile
	}
	if p.PrimaryConcern != "" {
		out[fieldConcern] = p.PrimaryConcern
	}
	if p.Adjectives != nil {
		out[fieldAdjective] = p.Adjectives
	}
	if p.Priorities != nil {
		out[fieldPriority] = p.Priorities
	}
	if p.SelectedTraits != nil {
		out[fieldTraits] = p.SelectedTraits
	}
	out[fieldTimestamp] = p.Timestamp
	return json.Marshal(out)
}

// UnmarshalJSON accepts the flat wire format produced by MarshalJSON.
// Unlike FromMap it keeps id and timestamp, so stored records round-trip.
func (p *Participant) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	id := 0
	if n, ok := fields[fieldID].(float64); ok {
		id = int(n)
		delete(fields, fieldID)
	}
	ts := ""
	if s, ok := fields[fieldTimestamp].(string); ok {
		ts = s
		delete(fields, fieldTimestamp)
	}
	*p = *FromMap(fields)
	p.ID = id
	p.Timestamp = ts
	return nil
}

func asStringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
