package report

import (
	"encoding/json"
	"io"

	"pairup/internal/pairing"
)

// Document is the machine-readable form of a result.
type Document struct {
	Algorithm     string           `json:"algorithm"`
	Members       int              `json:"members"`
	TotalRequests int              `json:"total_requests"`
	Perfect       bool             `json:"perfect"`
	Pairs         []DocumentPair   `json:"pairs"`
	Singles       []DocumentSingle `json:"singles"`
	Warnings      []string         `json:"warnings,omitempty"`
}

// DocumentPair is one pair with its slot column and label.
type DocumentPair struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Slot int    `json:"slot"`
	Time string `json:"time"`
}

// DocumentSingle is a member left with open requests.
type DocumentSingle struct {
	Name      string `json:"name"`
	Remaining int    `json:"remaining"`
}

// NewDocument converts result into a Document.
func NewDocument(result *pairing.Result) Document {
	roster := result.Roster()
	doc := Document{
		Algorithm:     result.Algorithm,
		Members:       result.Members,
		TotalRequests: result.TotalRequests,
		Perfect:       result.Perfect(),
		Pairs:         make([]DocumentPair, 0, len(result.Pairs)),
		Singles:       make([]DocumentSingle, 0, len(result.Singles)),
	}
	for _, p := range result.Pairs {
		a, b := result.PairNames(p)
		doc.Pairs = append(doc.Pairs, DocumentPair{A: a, B: b, Slot: p.Slot, Time: roster.SlotLabel(p.Slot)})
	}
	for _, s := range result.Singles {
		doc.Singles = append(doc.Singles, DocumentSingle{Name: roster.Name(s.Member), Remaining: s.Remaining})
	}
	if roster != nil {
		doc.Warnings = append(doc.Warnings, roster.Warnings...)
	}
	return doc
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
