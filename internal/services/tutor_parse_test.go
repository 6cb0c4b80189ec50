package services

import (
	"testing"
	"time"
)

func TestStripCodeFences(t *testing.T) {
	in := "```json\n{\"skill\": \"Go\"}\n```"
	if got := stripCodeFences(in); got != `{"skill": "Go"}` {
		t.Fatalf("unexpected result: %q", got)
	}
	if got := stripCodeFences(`{"skill": "Go"}`); got != `{"skill": "Go"}` {
		t.Fatalf("unfenced input changed: %q", got)
	}
}

func TestExtractJSONObject(t *testing.T) {
	in := "Sure, here is your schedule:\n{\"0\": \"2026-09-02\"}\nGood luck!"
	got, ok := extractJSONObject(in)
	if !ok {
		t.Fatalf("expected to find a JSON object")
	}
	if got != `{"0": "2026-09-02"}` {
		t.Fatalf("unexpected extraction: %q", got)
	}

	if _, ok := extractJSONObject("no json here"); ok {
		t.Fatalf("expected no JSON object in plain text")
	}
}

func TestFallbackSchedule(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	// 5 h/week gives 2 topics per week.
	got := fallbackSchedule(4, 5, today)
	want := map[string]string{
		"0": "2026-09-02",
		"1": "2026-09-02",
		"2": "2026-09-09",
		"3": "2026-09-09",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("key %s: expected %s, got %s", k, v, got[k])
		}
	}

	// Below 2.5 h/week the rate floors at one topic per week.
	got = fallbackSchedule(2, 1, today)
	if got["0"] != "2026-09-02" || got["1"] != "2026-09-09" {
		t.Fatalf("unexpected low-rate schedule: %v", got)
	}
}
