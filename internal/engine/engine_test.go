package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/prop-scout/internal/models"
)

func newTestEngine() *Engine {
	return New(testBooks(), testEngineConfig())
}

func quote(book, market, player string, side models.Side, point float64, price int) models.Quote {
	return models.Quote{
		BookName:   book,
		BookKey:    book,
		Market:     market,
		PlayerName: player,
		Side:       side,
		Point:      point,
		Price:      price,
		Timestamp:  time.Date(2026, 1, 15, 18, 0, 0, 0, time.UTC),
	}
}

func TestAnalyzePointDiscrepancy(t *testing.T) {
	eng := newTestEngine()
	quotes := []models.Quote{
		quote("prizepicks", "player_points", "LeBron James", models.SideOver, 24.5, -115),
		quote("pinnacle", "player_points", "LeBron James", models.SideOver, 26.5, -120),
	}

	props := eng.Analyze("game1", quotes)
	require.Len(t, props, 1)

	p := props[0]
	assert.Equal(t, "game1|lebron james|player_points", p.ID)
	assert.Equal(t, models.EdgeTypeDiscrepancy, p.EdgeType)
	// Raw classifier score 90 + 2.0 = 92, boosted by round(100/10) and capped
	assert.InDelta(t, 100, p.EdgeScore, 1e-9)
	require.NotNil(t, p.RecommendedSide)
	assert.Equal(t, models.SideOver, *p.RecommendedSide)
	require.NotNil(t, p.FairValue)
	assert.InDelta(t, 26.5, *p.FairValue, 1e-9)
	require.NotNil(t, p.MaxAcceptableLine)
	assert.InDelta(t, 26.0, *p.MaxAcceptableLine, 1e-9)
	assert.Nil(t, p.MinAcceptableLine)
	assert.InDelta(t, 1.5, p.PointEdge, 1e-9)
	assert.InDelta(t, 100, p.SharpAgreement, 1e-9)
	require.NotNil(t, p.WinProbability)
	assert.InDelta(t, 57.0, *p.WinProbability, 1e-9) // clamp(50 + 2.0*3.5, 50, 75)
	assert.Contains(t, p.Guidance, "STRONG")
}

func TestAnalyzeLargeGapWithinToleranceIsStillAnEdge(t *testing.T) {
	// A 32-point gap on a passing-yardage market is within its 40-point
	// tolerance: tolerance suppresses implausible gaps, not merely large ones.
	eng := newTestEngine()
	quotes := []models.Quote{
		quote("prizepicks", "player_pass_yds", "Josh Allen", models.SideOver, 7.5, -119),
		quote("pinnacle", "player_pass_yds", "Josh Allen", models.SideOver, 39.5, -110),
	}

	props := eng.Analyze("game2", quotes)
	require.Len(t, props, 1)
	assert.Equal(t, models.EdgeTypeDiscrepancy, props[0].EdgeType)
	require.NotNil(t, props[0].RecommendedSide)
	assert.Equal(t, models.SideOver, *props[0].RecommendedSide)
}

func TestAnalyzeNoSharpQuotesDegradesCleanly(t *testing.T) {
	eng := newTestEngine()
	quotes := []models.Quote{
		quote("prizepicks", "player_points", "Zion Williamson", models.SideOver, 24.5, -119),
	}

	props := eng.Analyze("game3", quotes)
	require.Len(t, props, 1)

	p := props[0]
	assert.Equal(t, models.EdgeTypeNone, p.EdgeType)
	assert.Nil(t, p.FairValue)
	assert.Nil(t, p.RecommendedSide)
	assert.Nil(t, p.WinProbability)
	assert.Nil(t, p.MaxAcceptableLine)
	assert.Nil(t, p.MinAcceptableLine)
	assert.Equal(t, "no sharp lines available for comparison", p.Detail)
	assert.InDelta(t, 100, p.SharpAgreement, 1e-9)
}

func TestAnalyzeRecommendedSideSetIffEdge(t *testing.T) {
	eng := newTestEngine()
	quotes := []models.Quote{
		// an edge
		quote("prizepicks", "player_points", "LeBron James", models.SideOver, 24.5, -115),
		quote("pinnacle", "player_points", "LeBron James", models.SideOver, 26.5, -120),
		// no edge: identical line, fair price
		quote("prizepicks", "player_points", "Rui Hachimura", models.SideOver, 12.5, -119),
		quote("pinnacle", "player_points", "Rui Hachimura", models.SideOver, 12.5, -110),
	}

	props := eng.Analyze("game4", quotes)
	require.Len(t, props, 2)
	for _, p := range props {
		if p.EdgeType == models.EdgeTypeNone {
			assert.Nil(t, p.RecommendedSide, "%s", p.ID)
			// a cleared edge with sharp coverage still carries the estimate,
			// only the range fields require a side
			require.NotNil(t, p.FairValue, "%s", p.ID)
			assert.InDelta(t, 12.5, *p.FairValue, 1e-9)
			require.NotNil(t, p.WinProbability, "%s", p.ID)
			assert.InDelta(t, 50.0, *p.WinProbability, 1e-9)
			assert.Nil(t, p.MaxAcceptableLine, "%s", p.ID)
			assert.Nil(t, p.MinAcceptableLine, "%s", p.ID)
		} else {
			assert.NotNil(t, p.RecommendedSide, "%s", p.ID)
		}
	}
}

func TestAnalyzeUnderRecommendation(t *testing.T) {
	eng := newTestEngine()
	quotes := []models.Quote{
		quote("prizepicks", "player_points", "Ja Morant", models.SideOver, 28.5, -119),
		quote("pinnacle", "player_points", "Ja Morant", models.SideOver, 26.5, -112),
	}

	props := eng.Analyze("game5", quotes)
	require.Len(t, props, 1)

	p := props[0]
	require.NotNil(t, p.RecommendedSide)
	assert.Equal(t, models.SideUnder, *p.RecommendedSide)
	require.NotNil(t, p.MinAcceptableLine)
	assert.InDelta(t, 27.0, *p.MinAcceptableLine, 1e-9)
	assert.Nil(t, p.MaxAcceptableLine)
}

func TestAnalyzeIdempotent(t *testing.T) {
	eng := newTestEngine()
	quotes := []models.Quote{
		quote("prizepicks", "player_points", "LeBron James", models.SideOver, 24.5, -115),
		quote("pinnacle", "player_points", "LeBron James", models.SideOver, 26.5, -120),
		quote("draftkings", "player_points", "LeBron James", models.SideOver, 26.0, -108),
		quote("prizepicks", "player_rebounds", "Nikola Jokić", models.SideOver, 12.5, -119),
		quote("pinnacle", "player_rebounds", "Nikola Jokić", models.SideOver, 13.5, -115),
	}

	first := eng.Analyze("game6", quotes)
	second := eng.Analyze("game6", quotes)
	assert.Equal(t, first, second, "same immutable input must yield identical output")
}

func TestAnalyzeRankingNonIncreasing(t *testing.T) {
	eng := newTestEngine()
	quotes := []models.Quote{
		quote("prizepicks", "player_points", "Player A", models.SideOver, 24.5, -119),
		quote("pinnacle", "player_points", "Player A", models.SideOver, 26.5, -110),
		quote("prizepicks", "player_points", "Player B", models.SideOver, 26.0, -119),
		quote("pinnacle", "player_points", "Player B", models.SideOver, 26.5, -110),
		quote("prizepicks", "player_points", "Player C", models.SideOver, 26.5, -119),
		quote("pinnacle", "player_points", "Player C", models.SideOver, 26.5, -110),
	}

	props := eng.Analyze("game7", quotes)
	require.Len(t, props, 3)
	for i := 1; i < len(props); i++ {
		assert.GreaterOrEqual(t, props[i-1].EdgeScore, props[i].EdgeScore)
	}
}

func TestAnalyzeTieBreakIsDeterministic(t *testing.T) {
	eng := newTestEngine()
	quotes := []models.Quote{
		// Two identical sub-point edges: same flat score of 80 + boost
		quote("prizepicks", "player_points", "Zeta Player", models.SideOver, 26.0, -119),
		quote("pinnacle", "player_points", "Zeta Player", models.SideOver, 26.5, -110),
		quote("prizepicks", "player_points", "Alpha Player", models.SideOver, 21.0, -119),
		quote("pinnacle", "player_points", "Alpha Player", models.SideOver, 21.5, -110),
	}

	for i := 0; i < 5; i++ {
		props := eng.Analyze("game8", quotes)
		require.Len(t, props, 2)
		assert.Equal(t, "alpha player", props[0].PlayerKey, "player key breaks score ties")
		assert.Equal(t, "zeta player", props[1].PlayerKey)
	}
}
