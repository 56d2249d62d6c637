package models

import (
	"testing"

	"escaperoom/game"
)

func TestApplyCompletionGrantsKeyAndAdvances(t *testing.T) {
	ch, ok := game.GetChallenge(1)
	if !ok {
		t.Fatal("station 1 missing from catalog")
	}

	progress := UserProgress{UserID: 1, CurrentChallengeID: 1, EarnedKeys: "[]"}
	progress.ApplyCompletion(ch, 5, 80)

	if !progress.Keys().Has(ch.KeyReward) {
		t.Errorf("key %q not granted", ch.KeyReward)
	}
	if progress.TotalScore != 5 {
		t.Errorf("TotalScore = %d, want 5", progress.TotalScore)
	}
	if progress.TotalTimeSeconds != 80 {
		t.Errorf("TotalTimeSeconds = %d, want 80", progress.TotalTimeSeconds)
	}
	if progress.CurrentChallengeID != 2 {
		t.Errorf("CurrentChallengeID = %d, want 2", progress.CurrentChallengeID)
	}
}

func TestApplyCompletionKeyGrantIdempotent(t *testing.T) {
	ch, _ := game.GetChallenge(1)

	progress := UserProgress{UserID: 1, CurrentChallengeID: 1, EarnedKeys: "[]"}
	progress.ApplyCompletion(ch, 5, 80)
	once := progress.EarnedKeys

	progress.ApplyCompletion(ch, 3, 40)
	if progress.EarnedKeys != once {
		t.Errorf("earned keys changed on repeat grant: %s -> %s", once, progress.EarnedKeys)
	}
}

func TestApplyCompletionReplayDoesNotMovePointer(t *testing.T) {
	ch1, _ := game.GetChallenge(1)
	ch2, _ := game.GetChallenge(2)

	progress := UserProgress{UserID: 1, CurrentChallengeID: 1, EarnedKeys: "[]"}
	progress.ApplyCompletion(ch1, 5, 60)
	progress.ApplyCompletion(ch2, 7, 70)

	if progress.CurrentChallengeID != 3 {
		t.Fatalf("CurrentChallengeID = %d, want 3", progress.CurrentChallengeID)
	}

	// Replaying an earlier station accumulates score/time but must not
	// move the pointer in either direction.
	progress.ApplyCompletion(ch1, 4, 50)
	if progress.CurrentChallengeID != 3 {
		t.Errorf("CurrentChallengeID = %d after replay, want 3", progress.CurrentChallengeID)
	}
	if progress.TotalScore != 16 {
		t.Errorf("TotalScore = %d, want 16", progress.TotalScore)
	}
}

func TestKeysToleratesCorruptColumn(t *testing.T) {
	progress := UserProgress{EarnedKeys: "{{{"}
	if got := progress.Keys(); len(got) != 0 {
		t.Errorf("corrupt column yielded keys: %v", got.List())
	}
}
