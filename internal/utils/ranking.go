package utils

import (
	"math"
	"time"
)

type RankConfig struct {
	Gravity       float64 // time decay exponent
	WeightLike    float64
	WeightComment float64
	ScaleFactor   float64
}

var DefaultRankConfig = RankConfig{
	Gravity:       1.5,
	WeightLike:    1.0,
	WeightComment: 2.0,
	ScaleFactor:   100.0,
}

// HotScore is the time-decayed engagement score used for "hot" ordering:
// log10(weighted engagement + 1) * scale / (hours + 2)^gravity.
func HotScore(createdAt time.Time, likes, comments int, now time.Time) float64 {
	return DefaultRankConfig.Score(createdAt, likes, comments, now)
}

func (cfg RankConfig) Score(createdAt time.Time, likes, comments int, now time.Time) float64 {
	hours := now.Sub(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}

	weighted := float64(likes)*cfg.WeightLike + float64(comments)*cfg.WeightComment
	if weighted < 0 {
		weighted = 0
	}

	numerator := math.Log10(weighted+1) * cfg.ScaleFactor
	decay := math.Pow(hours+2, cfg.Gravity)
	return numerator / decay
}
