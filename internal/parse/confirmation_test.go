package parse

import (
	"strings"
	"testing"
)

func TestConfirmation_FullEmail(t *testing.T) {
	t.Parallel()

	text := `Your booking is confirmed!
Airline: United Airlines
Flight UA 1542
SFO -> LAX
Departs: 10:35 AM
Arrives: 12:10 PM
Total: $431.20
Confirmation code: X9K2LQ`

	draft := Confirmation(text)

	if draft.Airline != "United Airlines" {
		t.Errorf("airline = %q, want United Airlines", draft.Airline)
	}
	if draft.FlightNumber != "UA1542" {
		t.Errorf("flight number = %q, want UA1542", draft.FlightNumber)
	}
	if draft.FromAirport != "SFO" || draft.ToAirport != "LAX" {
		t.Errorf("route = %s-%s, want SFO-LAX", draft.FromAirport, draft.ToAirport)
	}
	if draft.DepartureTime != "10:35 AM" {
		t.Errorf("departure = %q, want 10:35 AM", draft.DepartureTime)
	}
	if draft.ArrivalTime != "12:10 PM" {
		t.Errorf("arrival = %q, want 12:10 PM", draft.ArrivalTime)
	}
	if draft.Cost != 431.20 {
		t.Errorf("cost = %v, want 431.20", draft.Cost)
	}
	if len(draft.MatchedFields) != 6 {
		t.Errorf("matched fields = %v, want 6 entries", draft.MatchedFields)
	}
}

func TestConfirmation_CarrierCodeImpliesAirline(t *testing.T) {
	t.Parallel()

	draft := Confirmation("Flight DL842 JFK to ATL, fare USD 250")

	if draft.Airline != "Delta Air Lines" {
		t.Errorf("airline = %q, want Delta Air Lines", draft.Airline)
	}
	if draft.FlightNumber != "DL842" {
		t.Errorf("flight number = %q, want DL842", draft.FlightNumber)
	}
	if draft.FromAirport != "JFK" || draft.ToAirport != "ATL" {
		t.Errorf("route = %s-%s, want JFK-ATL", draft.FromAirport, draft.ToAirport)
	}
	if draft.Cost != 250 {
		t.Errorf("cost = %v, want 250", draft.Cost)
	}
}

func TestConfirmation_ExplicitAirlineWinsOverCode(t *testing.T) {
	t.Parallel()

	draft := Confirmation("Operated by Skywest\nFlight UA 5320")

	if draft.Airline != "Skywest" {
		t.Errorf("airline = %q, want Skywest", draft.Airline)
	}
}

func TestConfirmation_ThousandsSeparatorInCost(t *testing.T) {
	t.Parallel()

	draft := Confirmation("Total: $1,284.50 for flight BA 284")

	if draft.Cost != 1284.50 {
		t.Errorf("cost = %v, want 1284.50", draft.Cost)
	}
}

func TestConfirmation_TwentyFourHourClock(t *testing.T) {
	t.Parallel()

	draft := Confirmation("LH 454\nDeparture: 22:15\nArrival: 8:05")

	if draft.DepartureTime != "22:15" {
		t.Errorf("departure = %q, want 22:15", draft.DepartureTime)
	}
	if draft.ArrivalTime != "8:05" {
		t.Errorf("arrival = %q, want 8:05", draft.ArrivalTime)
	}
}

func TestConfirmation_JunkInputYieldsEmptyDraft(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "see you at the beach!!", "lorem ipsum dolor sit amet"} {
		draft := Confirmation(text)
		if len(draft.MatchedFields) != 0 {
			t.Errorf("Confirmation(%q) matched %v, want nothing", text, draft.MatchedFields)
		}
		if draft.Cost != 0 || draft.FlightNumber != "" || draft.Airline != "" {
			t.Errorf("Confirmation(%q) = %+v, want zero draft", text, draft)
		}
	}
}

func TestConfirmation_PartialMatchListsOnlyFoundFields(t *testing.T) {
	t.Parallel()

	draft := Confirmation("Can't wait! We land at LAX, cost: $89")

	joined := strings.Join(draft.MatchedFields, ",")
	if strings.Contains(joined, "route") {
		t.Errorf("matched %v, single airport should not count as a route", draft.MatchedFields)
	}
	if !strings.Contains(joined, "cost") {
		t.Errorf("matched %v, want cost", draft.MatchedFields)
	}
	if draft.Cost != 89 {
		t.Errorf("cost = %v, want 89", draft.Cost)
	}
}
