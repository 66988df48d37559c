package skills

import "sort"

// SkillType identifies one tracked skill index.
type SkillType string

const (
	ProblemSolving   SkillType = "problem-solving"
	CriticalThinking SkillType = "critical-thinking"
	Creativity       SkillType = "creativity"
	Endurance        SkillType = "endurance"
)

// AllSkillTypes returns the skill types in display order.
func AllSkillTypes() []SkillType {
	return []SkillType{ProblemSolving, CriticalThinking, Creativity, Endurance}
}

// Label returns a human-readable name for the skill type.
func (s SkillType) Label() string {
	switch s {
	case ProblemSolving:
		return "Problem Solving"
	case CriticalThinking:
		return "Critical Thinking"
	case Creativity:
		return "Creativity"
	case Endurance:
		return "Endurance"
	}
	return string(s)
}

// Index is one student's score (0-100) for one skill.
type Index struct {
	SkillType SkillType `json:"skillType"`
	Score     int       `json:"score"`
}

// Standing is one student's scored entry before ranking.
type Standing struct {
	StudentID string
	Name      string
	Score     int
}

// LeaderboardEntry is a ranked row for one skill's leaderboard.
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
}

// Rank orders standings by score descending (name ascending on ties for
// a stable board) and assigns 1-based ranks. Tied scores share a rank.
func Rank(standings []Standing) []LeaderboardEntry {
	ordered := make([]Standing, len(standings))
	copy(ordered, standings)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].Name < ordered[j].Name
	})

	entries := make([]LeaderboardEntry, len(ordered))
	for i, s := range ordered {
		rank := i + 1
		if i > 0 && s.Score == ordered[i-1].Score {
			rank = entries[i-1].Rank
		}
		entries[i] = LeaderboardEntry{
			Rank:      rank,
			StudentID: s.StudentID,
			Name:      s.Name,
			Score:     s.Score,
		}
	}
	return entries
}
