package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alces-flight/flightdocs"
)

// payload is a JSON:API top-level document.
type payload struct {
	Data     []resource
	Included []resource

	included map[string]resource
}

type resource struct {
	ID            string                  `json:"id"`
	Type          string                  `json:"type"`
	Attributes    attributes              `json:"attributes"`
	Relationships map[string]relationship `json:"relationships"`
	Links         map[string]link         `json:"links"`
}

// attributes covers every attribute read from documents and their
// containers. The API has used both dashed and underscored names.
type attributes struct {
	Filename          string `json:"filename"`
	ContentType       string `json:"content-type"`
	ContentTypeLegacy string `json:"content_type"`
	Name              string `json:"name"`
	DisplayID         string `json:"display-id"`
	DisplayIDLegacy   string `json:"display_id"`
}

func (a attributes) contentType() string {
	if a.ContentType != "" {
		return a.ContentType
	}
	return a.ContentTypeLegacy
}

func (a attributes) displayID() string {
	if a.DisplayID != "" {
		return a.DisplayID
	}
	return a.DisplayIDLegacy
}

type identifier struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// relationship holds resource linkage, which may be a single identifier,
// a list of identifiers or null.
type relationship struct {
	Data []identifier
}

func (r *relationship) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	data := bytes.TrimSpace(raw.Data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		r.Data = nil
	case data[0] == '[':
		return json.Unmarshal(data, &r.Data)
	default:
		var id identifier
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		r.Data = []identifier{id}
	}
	return nil
}

// link is a JSON:API link, either a bare URL or an object with an href.
type link string

func (l *link) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = link(s)
		return nil
	}
	var obj struct {
		Href string `json:"href"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*l = link(obj.Href)
	return nil
}

func decodePayload(body []byte) (*payload, error) {
	var raw struct {
		Data     json.RawMessage `json:"data"`
		Included []resource      `json:"included"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode API response: %w", err)
	}

	p := &payload{Included: raw.Included}
	data := bytes.TrimSpace(raw.Data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
	case data[0] == '[':
		if err := json.Unmarshal(data, &p.Data); err != nil {
			return nil, fmt.Errorf("failed to decode API response: %w", err)
		}
	default:
		var res resource
		if err := json.Unmarshal(data, &res); err != nil {
			return nil, fmt.Errorf("failed to decode API response: %w", err)
		}
		p.Data = []resource{res}
	}

	p.included = make(map[string]resource, len(p.Included))
	for _, res := range p.Included {
		p.included[res.Type+"/"+res.ID] = res
	}
	return p, nil
}

// records converts the primary data to records. Resources without a
// download link are skipped since they cannot be fetched or merged.
func (p *payload) records() []*flightdocs.Record {
	records := make([]*flightdocs.Record, 0, len(p.Data))
	for _, res := range p.Data {
		download := string(res.Links["download"])
		if download == "" {
			continue
		}
		records = append(records, &flightdocs.Record{
			ID:          res.ID,
			DownloadURL: download,
			Filename:    res.Attributes.Filename,
			ContentType: res.Attributes.contentType(),
			Location:    p.location(res),
		})
	}
	return records
}

// location describes where a document is attached. Documents without
// containers belong to their owning record. With several containers the
// outermost is dropped and the rest form a breadcrumb.
func (p *payload) location(doc resource) string {
	containers := doc.Relationships["containers"].Data
	if len(containers) == 0 {
		owners := doc.Relationships["record"].Data
		if len(owners) == 0 {
			return "Global"
		}
		return p.name(owners[0])
	}

	names := make([]string, 0, len(containers))
	for _, id := range containers {
		names = append(names, p.name(id))
	}
	if len(names) > 1 {
		return strings.Join(names[1:], " / ")
	}
	return names[0]
}

// name returns the display name of a related resource.
func (p *payload) name(id identifier) string {
	res, ok := p.included[id.Type+"/"+id.ID]
	switch id.Type {
	case "globals":
		return "Global"
	case "cases":
		displayID := id.ID
		if ok && res.Attributes.displayID() != "" {
			displayID = res.Attributes.displayID()
		}
		return "Case " + displayID
	}
	if ok && res.Attributes.Name != "" {
		return res.Attributes.Name
	}
	return strings.TrimSuffix(id.Type, "s") + " " + id.ID
}
