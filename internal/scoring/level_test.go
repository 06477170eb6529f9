package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  ScoreLevel
	}{
		{100, LevelSehrGut},
		{81, LevelSehrGut},
		{80.9, LevelGut},
		{61, LevelGut},
		{60.9, LevelVerbesserungswuerdig},
		{41, LevelVerbesserungswuerdig},
		{40.9, LevelSchlecht},
		{0, LevelSchlecht},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %v", tt.score)
	}
}
