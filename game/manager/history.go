package manager

import (
	"sort"
	"time"

	"gridsnake/game/types"
)

// RoundRecord is one finished round (CompressionIndex 0) or a summary of
// GamesCount rounds.
type RoundRecord struct {
	ID               string              `json:"id,omitempty"`
	StartTime        time.Time           `json:"startTime"`
	EndTime          time.Time           `json:"endTime"`
	Score            int                 `json:"score"`
	Cause            types.CollisionType `json:"cause,omitempty"`
	CompressionIndex int                 `json:"compressionIndex"`
	GamesCount       int                 `json:"gamesCount"`
	AverageScore     float64             `json:"averageScore"`
	MedianScore      float64             `json:"medianScore"`
	MaxScore         int                 `json:"maxScore"`
	MinScore         int                 `json:"minScore"`
	AverageDuration  float64             `json:"averageDuration"` // seconds
	MaxDuration      float64             `json:"maxDuration"`
	MinDuration      float64             `json:"minDuration"`
}

// single fills the aggregate fields of a freshly finished round.
func (r RoundRecord) single() RoundRecord {
	d := r.EndTime.Sub(r.StartTime).Seconds()
	if d < 0 {
		d = 0
	}
	r.CompressionIndex = 0
	r.GamesCount = 1
	r.AverageScore = float64(r.Score)
	r.MedianScore = float64(r.Score)
	r.MaxScore = r.Score
	r.MinScore = r.Score
	r.AverageDuration = d
	r.MaxDuration = d
	r.MinDuration = d
	return r
}

// HistorySummary aggregates a whole score history.
type HistorySummary struct {
	GamesPlayed     int     `json:"gamesPlayed"`
	AverageScore    float64 `json:"averageScore"`
	MedianScore     float64 `json:"medianScore"`
	MaxScore        int     `json:"maxScore"`
	AverageDuration float64 `json:"averageDuration"`
	MaxDuration     float64 `json:"maxDuration"`
}

// compressHistory folds every complete run of GroupSize records on one level
// into a record of the next level. Higher levels sort first, then by start.
func compressHistory(history []RoundRecord) []RoundRecord {
	for level := 0; ; level++ {
		var records, rest []RoundRecord
		for _, r := range history {
			if r.CompressionIndex == level {
				records = append(records, r)
			} else {
				rest = append(rest, r)
			}
		}
		if len(records) < GroupSize {
			if len(records) == 0 && !hasLevelAbove(history, level) {
				break
			}
			continue
		}

		sort.SliceStable(records, func(i, j int) bool {
			return records[i].StartTime.Before(records[j].StartTime)
		})
		full := len(records) / GroupSize * GroupSize
		for i := 0; i < full; i += GroupSize {
			rest = append(rest, mergeRecords(records[i:i+GroupSize], level+1))
		}
		history = append(rest, records[full:]...)
	}

	sort.SliceStable(history, func(i, j int) bool {
		if history[i].CompressionIndex != history[j].CompressionIndex {
			return history[i].CompressionIndex > history[j].CompressionIndex
		}
		return history[i].StartTime.Before(history[j].StartTime)
	})
	return history
}

func hasLevelAbove(history []RoundRecord, level int) bool {
	for _, r := range history {
		if r.CompressionIndex > level {
			return true
		}
	}
	return false
}

func mergeRecords(group []RoundRecord, level int) RoundRecord {
	merged := RoundRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalScore, totalDuration float64
	for _, r := range group {
		if r.MaxScore > merged.MaxScore {
			merged.MaxScore = r.MaxScore
		}
		if r.MinScore < merged.MinScore {
			merged.MinScore = r.MinScore
		}
		if r.MaxDuration > merged.MaxDuration {
			merged.MaxDuration = r.MaxDuration
		}
		if r.MinDuration < merged.MinDuration {
			merged.MinDuration = r.MinDuration
		}
		if r.StartTime.Before(merged.StartTime) {
			merged.StartTime = r.StartTime
		}
		if r.EndTime.After(merged.EndTime) {
			merged.EndTime = r.EndTime
		}
		totalScore += r.AverageScore * float64(r.GamesCount)
		totalDuration += r.AverageDuration * float64(r.GamesCount)
		merged.GamesCount += r.GamesCount
	}
	merged.AverageScore = totalScore / float64(merged.GamesCount)
	merged.AverageDuration = totalDuration / float64(merged.GamesCount)
	merged.MedianScore = weightedMedian(group)
	return merged
}

// weightedMedian takes each record's median once per game it stands for.
func weightedMedian(records []RoundRecord) float64 {
	var scores []float64
	for _, r := range records {
		for i := 0; i < r.GamesCount; i++ {
			scores = append(scores, r.MedianScore)
		}
	}
	if len(scores) == 0 {
		return 0
	}
	sort.Float64s(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return (scores[mid-1] + scores[mid]) / 2
	}
	return scores[mid]
}

func summarize(history []RoundRecord) HistorySummary {
	var s HistorySummary
	if len(history) == 0 {
		return s
	}
	var totalScore, totalDuration float64
	for _, r := range history {
		s.GamesPlayed += r.GamesCount
		totalScore += r.AverageScore * float64(r.GamesCount)
		totalDuration += r.AverageDuration * float64(r.GamesCount)
		if r.MaxScore > s.MaxScore {
			s.MaxScore = r.MaxScore
		}
		if r.MaxDuration > s.MaxDuration {
			s.MaxDuration = r.MaxDuration
		}
	}
	s.AverageScore = totalScore / float64(s.GamesPlayed)
	s.AverageDuration = totalDuration / float64(s.GamesPlayed)
	s.MedianScore = weightedMedian(history)
	return s
}
