package game

import (
	"testing"
)

func TestCatalogShape(t *testing.T) {
	if got := ChallengeCount(); got != 15 {
		t.Fatalf("ChallengeCount() = %d, want 15", got)
	}

	challenges := Challenges()
	for i, ch := range challenges {
		if ch.ID != i+1 {
			t.Errorf("challenge at position %d has id %d", i, ch.ID)
		}
	}
}

func TestCatalogKeyChain(t *testing.T) {
	prevReward := ""
	for _, ch := range Challenges() {
		if ch.ID == 1 {
			if ch.RequiredKey != "" {
				t.Errorf("station 1 must not require a key, got %q", ch.RequiredKey)
			}
		} else if ch.RequiredKey != prevReward {
			t.Errorf("station %d requires %q, previous station rewards %q", ch.ID, ch.RequiredKey, prevReward)
		}
		if ch.KeyReward == "" {
			t.Errorf("station %d has no key reward", ch.ID)
		}
		prevReward = ch.KeyReward
	}
}

func TestMaxPoints(t *testing.T) {
	want := map[int]int{
		1: 5, 2: 7, 3: 4, 4: 6, 5: 8, 6: 5, 7: 8, 8: 5,
		9: 6, 10: 9, 11: 8, 12: 6, 13: 7, 14: 5, 15: 11,
	}
	for id, points := range want {
		if got := MaxPoints(id); got != points {
			t.Errorf("MaxPoints(%d) = %d, want %d", id, got, points)
		}
	}
	if got := MaxPoints(99); got != 0 {
		t.Errorf("MaxPoints(99) = %d, want 0", got)
	}
}

func TestQuizPointsSumToStationCeiling(t *testing.T) {
	for _, ch := range Challenges() {
		if ch.Type != ChallengeTypeQuiz {
			continue
		}
		sum := 0
		for _, q := range ch.Quiz {
			sum += q.Points
		}
		if sum != ch.Points {
			t.Errorf("station %d: question points sum to %d, ceiling is %d", ch.ID, sum, ch.Points)
		}
	}
}

func TestWithoutAnswersStripsSolutions(t *testing.T) {
	quiz, _ := GetChallenge(1)
	sanitized := quiz.WithoutAnswers()
	for _, q := range sanitized.Quiz {
		if q.CorrectAnswer != "" {
			t.Errorf("question %s still carries its correct answer", q.ID)
		}
	}
	// the catalog copy must stay intact
	if quiz.Quiz[0].CorrectAnswer != "b" {
		t.Error("sanitizing mutated the catalog entry")
	}

	ordering, _ := GetChallenge(2)
	if got := ordering.WithoutAnswers(); got.Ordering.CorrectOrder != nil {
		t.Error("ordering payload still carries the correct order")
	}
	if ordering.Ordering.CorrectOrder == nil {
		t.Error("sanitizing mutated the catalog ordering entry")
	}
}

func TestGetChallengeUnknownID(t *testing.T) {
	if _, ok := GetChallenge(0); ok {
		t.Error("GetChallenge(0) must report not found")
	}
	if _, ok := GetChallenge(16); ok {
		t.Error("GetChallenge(16) must report not found")
	}
}
