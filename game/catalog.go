// game/catalog.go - Station Catalog (loaded once, read-only at runtime)
package game

// ChallengeType identifies the mini-game played at a station.
type ChallengeType string

const (
	ChallengeTypeQuiz       ChallengeType = "quiz"
	ChallengeTypeOrdering   ChallengeType = "ordering"
	ChallengeTypeMemory     ChallengeType = "memory"
	ChallengeTypeMatching   ChallengeType = "matching"
	ChallengeTypeWordSearch ChallengeType = "wordsearch"
	ChallengeTypePuzzle     ChallengeType = "puzzle"
)

// Option is one selectable answer of a quiz question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizQuestion carries its own point value; question points sum to the
// station's Points.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Points        int      `json:"points"`
}

// SceneItem is a clickable hotspot rendered on the station background.
type SceneItem struct {
	ID    string `json:"id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Icon  string `json:"icon"`
	Title string `json:"title"`
}

type OrderingItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type OrderingData struct {
	Instructions string         `json:"instructions"`
	Items        []OrderingItem `json:"items"`
	CorrectOrder []string       `json:"correct_order,omitempty"`
}

type MemoryData struct {
	Instructions string   `json:"instructions"`
	Images       []string `json:"images"`
}

type MatchPair struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type MatchingData struct {
	Instructions string      `json:"instructions"`
	Matches      []MatchPair `json:"matches"`
}

type WordSearchData struct {
	Instructions string   `json:"instructions"`
	Words        []string `json:"words"`
	GridSize     int      `json:"grid_size"`
}

type PuzzleData struct {
	Instructions string `json:"instructions"`
	Image        string `json:"image"`
	Pieces       int    `json:"pieces"`
}

// Challenge is one station of the escape room. Instances live in the
// process-wide catalog and must never be mutated after init.
type Challenge struct {
	ID         int           `json:"id"`
	Title      string        `json:"title"`
	Type       ChallengeType `json:"type"`
	TimeLimit  int           `json:"time_limit"` // seconds
	Points     int           `json:"points"`
	Background string        `json:"background"`
	RequiredKey string       `json:"required_key,omitempty"` // empty only for station 1
	KeyReward   string       `json:"key_reward"`

	Items      []SceneItem     `json:"items,omitempty"`
	Quiz       []QuizQuestion  `json:"quiz_data,omitempty"`
	Ordering   *OrderingData   `json:"ordering_data,omitempty"`
	Memory     *MemoryData     `json:"memory_data,omitempty"`
	Matching   *MatchingData   `json:"matching_data,omitempty"`
	WordSearch *WordSearchData `json:"wordsearch_data,omitempty"`
	Puzzle     *PuzzleData     `json:"puzzle_data,omitempty"`
}

var challengeIndex = make(map[int]*Challenge)

func init() {
	for i := range challenges {
		challengeIndex[challenges[i].ID] = &challenges[i]
	}
}

// GetChallenge looks up a station by id.
func GetChallenge(id int) (*Challenge, bool) {
	ch, ok := challengeIndex[id]
	return ch, ok
}

// Challenges returns all stations in ascending id order.
func Challenges() []*Challenge {
	out := make([]*Challenge, 0, len(challenges))
	for i := range challenges {
		out = append(out, &challenges[i])
	}
	return out
}

// ChallengeCount returns the number of stations in the catalog.
func ChallengeCount() int {
	return len(challenges)
}

// MaxPoints returns the point ceiling of a station, 0 for unknown ids.
func MaxPoints(id int) int {
	ch, ok := challengeIndex[id]
	if !ok {
		return 0
	}
	return ch.Points
}

// WithoutAnswers returns a copy of the challenge safe to ship to the
// client: correct answers and the correct ordering are stripped.
func (c *Challenge) WithoutAnswers() Challenge {
	out := *c

	if len(c.Quiz) > 0 {
		questions := make([]QuizQuestion, len(c.Quiz))
		copy(questions, c.Quiz)
		for i := range questions {
			questions[i].CorrectAnswer = ""
		}
		out.Quiz = questions
	}

	if c.Ordering != nil {
		ordering := *c.Ordering
		ordering.CorrectOrder = nil
		out.Ordering = &ordering
	}

	return out
}
