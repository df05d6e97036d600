package analytics

import (
	"testing"

	"trackhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopOverall_ScoreFormula(t *testing.T) {
	products := []model.Product{
		{ModelName: "A", Rating: 4.0, Reviews: 1000, DiscountPct: 50, BatteryDays: 10},
		{ModelName: "B", Rating: 5.0, Reviews: 500, DiscountPct: 20, BatteryDays: 5},
	}

	ranked := topOverall(products)

	require.Len(t, ranked, 2)

	// A: 4.0*0.4 + (1000/1000)*5*0.3 + (50/100)*5*0.2 + (10/10)*5*0.1 = 4.1
	// B: 5.0*0.4 + (500/1000)*5*0.3 + (20/100)*5*0.2 + (5/10)*5*0.1  = 3.2
	assert.Equal(t, "A", ranked[0].ModelName)
	assert.InDelta(t, 4.1, float64(ranked[0].OverallScore), 1e-9)
	assert.Equal(t, "B", ranked[1].ModelName)
	assert.InDelta(t, 3.2, float64(ranked[1].OverallScore), 1e-9)
}

func TestTopOverall_ExcludesNonFiniteScores(t *testing.T) {
	products := []model.Product{
		{ModelName: "A", Rating: 4.0, Reviews: 100, DiscountPct: 10, BatteryDays: 7},
		{ModelName: "B", Rating: model.NaN(), Reviews: 200, DiscountPct: 10, BatteryDays: 7},
	}

	ranked := topOverall(products)

	require.Len(t, ranked, 1)
	assert.Equal(t, "A", ranked[0].ModelName)
}

func TestTopOverall_TruncatesToTen(t *testing.T) {
	products := make([]model.Product, 15)
	for i := range products {
		products[i] = model.Product{
			Rating:      model.Float(3.0 + float64(i)*0.1),
			Reviews:     100,
			DiscountPct: 10,
			BatteryDays: 7,
		}
	}

	ranked := topOverall(products)

	require.Len(t, ranked, rankingListSize)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, float64(ranked[i-1].OverallScore), float64(ranked[i].OverallScore))
	}
}

func TestBuildRankings(t *testing.T) {
	view := BuildRankings(viewFixture())

	require.NotEmpty(t, view.TopOverall)
	require.Len(t, view.TopValue, 4)
	assert.Equal(t, "ColorFit", view.TopValue[0].ModelName)
	require.Len(t, view.TopRated, 4)
	assert.Equal(t, "Charge 5", view.TopRated[0].ModelName)
	require.Len(t, view.TopPopular, 4)
	assert.Equal(t, "ColorFit", view.TopPopular[0].ModelName)
}

func TestBuildRankings_Empty(t *testing.T) {
	view := BuildRankings(nil)

	assert.Empty(t, view.TopOverall)
	assert.Empty(t, view.TopValue)
	assert.Empty(t, view.TopRated)
	assert.Empty(t, view.TopPopular)
}
