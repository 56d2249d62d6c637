// Validates the station catalog: contiguous ids, an intact key chain and
// quiz point totals that match the station ceilings.
package main

import (
	"fmt"
	"os"

	"escaperoom/game"
)

func main() {
	exitCode := 0
	fail := func(format string, args ...interface{}) {
		fmt.Printf(format+"\n", args...)
		exitCode = 1
	}

	challenges := game.Challenges()
	if len(challenges) == 0 {
		fmt.Println("catalog is empty")
		os.Exit(1)
	}

	rewards := make(map[string]int)
	prevReward := ""

	for i, ch := range challenges {
		wantID := i + 1
		if ch.ID != wantID {
			fail("station %d: id %d breaks the 1..N ordering", wantID, ch.ID)
		}

		if ch.ID == 1 {
			if ch.RequiredKey != "" {
				fail("station 1: must not require a key, has %q", ch.RequiredKey)
			}
		} else if ch.RequiredKey != prevReward {
			fail("station %d: requires %q, previous station rewards %q", ch.ID, ch.RequiredKey, prevReward)
		}

		if ch.KeyReward == "" {
			fail("station %d: missing key reward", ch.ID)
		}
		if other, dup := rewards[ch.KeyReward]; dup {
			fail("station %d: key reward %q already granted by station %d", ch.ID, ch.KeyReward, other)
		}
		rewards[ch.KeyReward] = ch.ID
		prevReward = ch.KeyReward

		if ch.Points <= 0 {
			fail("station %d: non-positive point ceiling %d", ch.ID, ch.Points)
		}

		if ch.Type == game.ChallengeTypeQuiz {
			sum := 0
			for _, q := range ch.Quiz {
				if q.CorrectAnswer == "" {
					fail("station %d question %s: missing correct answer", ch.ID, q.ID)
				}
				sum += q.Points
			}
			if sum != ch.Points {
				fail("station %d: question points sum to %d, station ceiling is %d", ch.ID, sum, ch.Points)
			}
		}
	}

	if exitCode == 0 {
		fmt.Printf("catalog OK: %d stations, key chain intact\n", len(challenges))
	}
	os.Exit(exitCode)
}
