// game/engine.go - Unlock and scoring rules
//
// Pure functions over the catalog and a user's earned keys. No state is
// held here, so everything is safe to call from any number of request
// handlers.
package game

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Fraction of questions that must be answered correctly to pass a quiz
// station. The comparison is against the correct-answer count, rounded
// up, not against the score.
const quizPassFraction = 0.7

// KeySet is the set of unlock keys a user has earned. Keys are opaque
// identifiers; membership is all that matters. Serialization to the
// stored JSON text happens only at the persistence boundary.
type KeySet map[string]struct{}

// NewKeySet builds a set from a list of keys, ignoring empty entries.
func NewKeySet(keys ...string) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks.Add(k)
	}
	return ks
}

// ParseKeySet decodes the JSON array form used in the user_progress row.
func ParseKeySet(raw string) (KeySet, error) {
	if raw == "" {
		return KeySet{}, nil
	}
	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, fmt.Errorf("invalid earned keys payload: %w", err)
	}
	return NewKeySet(keys...), nil
}

func (ks KeySet) Has(key string) bool {
	_, ok := ks[key]
	return ok
}

// Add inserts a key. Empty keys and keys already present are no-ops, so
// granting the same reward twice leaves the set unchanged.
func (ks KeySet) Add(key string) {
	if key == "" {
		return
	}
	ks[key] = struct{}{}
}

// List returns the keys sorted for stable output. Insertion order is not
// meaningful for unlock decisions.
func (ks KeySet) List() []string {
	out := make([]string, 0, len(ks))
	for k := range ks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Encode serializes the set to the JSON array form stored in the
// user_progress row.
func (ks KeySet) Encode() string {
	data, err := json.Marshal(ks.List())
	if err != nil {
		return "[]"
	}
	return string(data)
}

// CanAccess reports whether a user holding the given keys may enter a
// station. Station 1 is always open; every later station requires its
// predecessor's key reward. Unknown ids are never accessible.
func CanAccess(challengeID int, keys KeySet) bool {
	ch, ok := GetChallenge(challengeID)
	if !ok {
		return false
	}
	if ch.ID == 1 {
		return true
	}
	return keys.Has(ch.RequiredKey)
}

// NextLockedChallenge scans the catalog in ascending id order and returns
// the first station the user cannot enter yet. ok is false when every
// station is accessible, i.e. the room is fully cleared.
func NextLockedChallenge(keys KeySet) (id int, ok bool) {
	for _, ch := range Challenges() {
		if !CanAccess(ch.ID, keys) {
			return ch.ID, true
		}
	}
	return 0, false
}

// QuizScore is the outcome of grading a quiz submission.
type QuizScore struct {
	Score          int  `json:"score"`
	CorrectCount   int  `json:"correct_answers"`
	TotalQuestions int  `json:"total_questions"`
	Passed         bool `json:"passed"`
}

// ScoreQuiz grades the submitted answers of a quiz station. Answers map
// question id to the chosen option id; missing or wrong answers simply
// score nothing. Non-quiz stations have no per-question correctness on
// the server and cannot be graded here.
func ScoreQuiz(ch *Challenge, answers map[string]string) (QuizScore, error) {
	if ch.Type != ChallengeTypeQuiz {
		return QuizScore{}, fmt.Errorf("challenge %d is %q, not a quiz", ch.ID, ch.Type)
	}

	result := QuizScore{TotalQuestions: len(ch.Quiz)}
	for _, q := range ch.Quiz {
		if answers[q.ID] == q.CorrectAnswer {
			result.Score += q.Points
			result.CorrectCount++
		}
	}

	needed := int(math.Ceil(quizPassFraction * float64(result.TotalQuestions)))
	result.Passed = result.CorrectCount >= needed
	return result, nil
}
