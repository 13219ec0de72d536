// Package parse extracts flight details from pasted confirmation text.
//
// The extraction is heuristic. Airlines format confirmation emails
// however they like, so every field is best effort and the caller gets
// a list of which fields actually matched. Junk input yields an empty
// draft, never an error.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// FlightDraft holds whatever could be pulled out of confirmation text.
type FlightDraft struct {
	Airline       string
	FlightNumber  string
	FromAirport   string
	ToAirport     string
	DepartureTime string
	ArrivalTime   string
	Cost          float64

	// MatchedFields names the fields above that were found in the
	// text, e.g. ["flight_number", "cost"].
	MatchedFields []string
}

var (
	// Two-letter IATA carrier code plus flight number, e.g. "UA 1542"
	// or "DL842". Word boundary keeps postal codes out.
	flightNumberRe = regexp.MustCompile(`\b([A-Z]{2})\s?(\d{1,4})\b`)

	// "Airline: United Airlines" or "Carrier: Delta" style labels.
	airlineRe = regexp.MustCompile(`(?i:airline|carrier|operated by)[ \t]*:?[ \t]+([A-Z][A-Za-z]*(?:[ \t]+[A-Z][A-Za-z]*){0,3})`)

	// Route as airport codes, "SFO -> LAX", "SFO - LAX", "SFO to LAX".
	routeRe = regexp.MustCompile(`\b([A-Z]{3})\s*(?:->|→|-|–|to)\s*([A-Z]{3})\b`)

	// Labelled departure/arrival times. Accepts "10:35 AM", "22:15".
	departureRe = regexp.MustCompile(`(?i)(?:depart(?:s|ure)?|dep)\s*:?\s+(\d{1,2}:\d{2}\s*(?:[AP]M)?)`)
	arrivalRe   = regexp.MustCompile(`(?i)(?:arriv(?:es|al)?|arr)\s*:?\s+(\d{1,2}:\d{2}\s*(?:[AP]M)?)`)

	// Money, labelled or bare: "Total: $431.20", "USD 250", "$89".
	costRe = regexp.MustCompile(`(?i)(?:total|price|fare|amount|cost)\s*:?\s*(?:USD|\$)?\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)|(?:USD|\$)\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
)

// knownAirlines maps IATA carrier codes to display names so a bare
// "UA 1542" still yields an airline.
var knownAirlines = map[string]string{
	"AA": "American Airlines",
	"AC": "Air Canada",
	"AF": "Air France",
	"AS": "Alaska Airlines",
	"BA": "British Airways",
	"B6": "JetBlue",
	"DL": "Delta Air Lines",
	"EK": "Emirates",
	"IB": "Iberia",
	"KL": "KLM",
	"LH": "Lufthansa",
	"NK": "Spirit Airlines",
	"QF": "Qantas",
	"TK": "Turkish Airlines",
	"UA": "United Airlines",
	"WN": "Southwest Airlines",
}

// Confirmation parses pasted flight-confirmation text into a draft.
func Confirmation(text string) FlightDraft {
	draft := FlightDraft{}
	if strings.TrimSpace(text) == "" {
		return draft
	}

	if m := flightNumberRe.FindStringSubmatch(text); m != nil {
		draft.FlightNumber = m[1] + m[2]
		draft.MatchedFields = append(draft.MatchedFields, "flight_number")
		if name, ok := knownAirlines[m[1]]; ok && draft.Airline == "" {
			draft.Airline = name
		}
	}

	// An explicit airline label wins over the carrier-code lookup.
	if m := airlineRe.FindStringSubmatch(text); m != nil {
		draft.Airline = strings.TrimSpace(m[1])
	}
	if draft.Airline != "" {
		draft.MatchedFields = append(draft.MatchedFields, "airline")
	}

	if m := routeRe.FindStringSubmatch(text); m != nil {
		draft.FromAirport = m[1]
		draft.ToAirport = m[2]
		draft.MatchedFields = append(draft.MatchedFields, "route")
	}

	if m := departureRe.FindStringSubmatch(text); m != nil {
		draft.DepartureTime = normalizeClock(m[1])
		draft.MatchedFields = append(draft.MatchedFields, "departure_time")
	}

	if m := arrivalRe.FindStringSubmatch(text); m != nil {
		draft.ArrivalTime = normalizeClock(m[1])
		draft.MatchedFields = append(draft.MatchedFields, "arrival_time")
	}

	if m := costRe.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if cost, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64); err == nil {
			draft.Cost = cost
			draft.MatchedFields = append(draft.MatchedFields, "cost")
		}
	}

	return draft
}

// normalizeClock collapses whitespace and uppercases the AM/PM suffix.
func normalizeClock(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
