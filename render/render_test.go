package render

import (
	"testing"

	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fighter"
	"github.com/automoto/shinobi-duel/scenes"
	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		value, max float64
		want       float32
	}{
		{50, 100, 0.5},
		{-5, 100, 0},
		{150, 100, 1},
		{10, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Ratio(c.value, c.max))
	}
}

func TestTimerText(t *testing.T) {
	assert.Equal(t, "0:00", TimerText(0))
	assert.Equal(t, "0:09", TimerText(9.99))
	assert.Equal(t, "2:05", TimerText(125.4))
}

func TestBannerText(t *testing.T) {
	var snap scenes.DuelSnapshot
	snap.Fighters = [2]fighter.View{{Name: "naruto"}, {Name: "sasuke"}}

	snap.Match.Winner = cfg.SideB
	assert.Equal(t, "SASUKE WINS", BannerText(snap))

	snap.Match.Winner = cfg.SideNone
	assert.Equal(t, "DRAW", BannerText(snap))
}

func TestFighterBars(t *testing.T) {
	bars := fighterBars(fighter.View{Health: 40, Chakra: 100, Stamina: 0, Gauge: 50})
	assert.Len(t, bars, 4)
	assert.Equal(t, float32(0.4), Ratio(bars[0].value, bars[0].max))
	assert.Equal(t, float32(1), Ratio(bars[1].value, bars[1].max))
	assert.Equal(t, float32(0), Ratio(bars[2].value, bars[2].max))
	assert.Equal(t, float32(0.5), Ratio(bars[3].value, bars[3].max))
}
