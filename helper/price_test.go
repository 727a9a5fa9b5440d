package helper

import (
	"testing"

	"airline_manager/model"
	"airline_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteBasePrice(t *testing.T) {
	policy := model.AirlinePricePolicy{
		FixedMarkup:    50,
		PriceForKm:     0.1,
		FeeForStopover: 20,
	}

	t.Run("truncates, never rounds", func(t *testing.T) {
		// 1234.7 km * 0.1 + 50 + 20 = 193.47
		assert.Equal(t, 193, RouteBasePrice(1234.7, 1, policy))
	})

	t.Run("no stopovers on a direct route", func(t *testing.T) {
		assert.Equal(t, 150, RouteBasePrice(1000, 0, policy))
	})

	t.Run("stopover fee per intermediate stop", func(t *testing.T) {
		direct := RouteBasePrice(1000, 0, policy)
		twoStops := RouteBasePrice(1000, 2, policy)
		assert.Equal(t, 40, twoStops-direct)
	})
}

func TestClassAdjustedPrice(t *testing.T) {
	t.Run("missing policy falls back to the base price", func(t *testing.T) {
		assert.Equal(t, 736.0, ClassAdjustedPrice(736, nil))
	})

	t.Run("multiplier then markup", func(t *testing.T) {
		policy := &model.ClassPricePolicy{PriceMultiplier: 1.5, FixedMarkup: 10}
		assert.Equal(t, 736*1.5+10, ClassAdjustedPrice(736, policy))
	})
}

func TestGetClassPricePolicy(t *testing.T) {
	f := newFixture(t)

	t.Run("nil without error when absent", func(t *testing.T) {
		policy, err := GetClassPricePolicy(f.db, "AZ", f.economy.ID)
		require.NoError(t, err)
		assert.Nil(t, policy)
	})

	t.Run("found when present", func(t *testing.T) {
		stored := model.ClassPricePolicy{
			IdClass:         f.economy.ID,
			AirlineCode:     "AZ",
			PriceMultiplier: 2,
			FixedMarkup:     5,
		}
		require.NoError(t, f.db.Create(&stored).Error)

		policy, err := GetClassPricePolicy(f.db, "AZ", f.economy.ID)
		require.NoError(t, err)
		require.NotNil(t, policy)
		assert.Equal(t, 2.0, policy.PriceMultiplier)
	})
}

func TestAddBaggageFees(t *testing.T) {
	f := newFixture(t)

	checked := model.Baggage{Name: "Checked 23kg"}
	require.NoError(t, f.db.Create(&checked).Error)
	cabin := model.Baggage{Name: "Cabin bag"}
	require.NoError(t, f.db.Create(&cabin).Error)

	rule := model.BaggageRule{
		IdBaggageType: checked.ID,
		AirlineCode:   "AZ",
		MaxWeightKg:   utils.Ptr(23),
		MaxLengthCm:   80, MaxWidthCm: 50, MaxHeightCm: 30,
		OverSizeFee: 60,
		BasePrice:   25,
		AllowExtra:  true,
	}
	require.NoError(t, f.db.Create(&rule).Error)

	noExtra := model.BaggageRule{
		IdBaggageType: cabin.ID,
		AirlineCode:   "AZ",
		MaxLengthCm:   55, MaxWidthCm: 40, MaxHeightCm: 20,
		OverSizeFee: 40,
		BasePrice:   15,
		AllowExtra:  false,
	}
	require.NoError(t, f.db.Create(&noExtra).Error)

	t.Run("adds count times base price", func(t *testing.T) {
		price, err := AddBaggageFees(f.db, 100, "AZ", []model.BaggageSelectionInput{
			{IdBaggage: checked.ID, Count: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 150.0, price)
	})

	t.Run("selection order does not change the total", func(t *testing.T) {
		sports := model.Baggage{Name: "Sports equipment"}
		require.NoError(t, f.db.Create(&sports).Error)
		sportsRule := model.BaggageRule{
			IdBaggageType: sports.ID,
			AirlineCode:   "AZ",
			MaxLengthCm:   190, MaxWidthCm: 60, MaxHeightCm: 40,
			OverSizeFee: 80,
			BasePrice:   37.5,
			AllowExtra:  true,
		}
		require.NoError(t, f.db.Create(&sportsRule).Error)

		forward, err := AddBaggageFees(f.db, 100, "AZ", []model.BaggageSelectionInput{
			{IdBaggage: checked.ID, Count: 2},
			{IdBaggage: sports.ID, Count: 1},
		})
		require.NoError(t, err)

		reversed, err := AddBaggageFees(f.db, 100, "AZ", []model.BaggageSelectionInput{
			{IdBaggage: sports.ID, Count: 1},
			{IdBaggage: checked.ID, Count: 2},
		})
		require.NoError(t, err)

		assert.Equal(t, forward, reversed)
		assert.Equal(t, 100+2*25+37.5, forward)
	})

	t.Run("no selections leaves the price alone", func(t *testing.T) {
		price, err := AddBaggageFees(f.db, 100, "AZ", nil)
		require.NoError(t, err)
		assert.Equal(t, 100.0, price)
	})

	t.Run("unknown baggage type", func(t *testing.T) {
		_, err := AddBaggageFees(f.db, 100, "AZ", []model.BaggageSelectionInput{
			{IdBaggage: 9999, Count: 1},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no rule for the airline", func(t *testing.T) {
		orphan := model.Baggage{Name: "Ski equipment"}
		require.NoError(t, f.db.Create(&orphan).Error)

		_, err := AddBaggageFees(f.db, 100, "AZ", []model.BaggageSelectionInput{
			{IdBaggage: orphan.ID, Count: 1},
		})
		assert.ErrorIs(t, err, ErrPolicyMissing)
	})

	t.Run("extras forbidden by the rule", func(t *testing.T) {
		_, err := AddBaggageFees(f.db, 100, "AZ", []model.BaggageSelectionInput{
			{IdBaggage: cabin.ID, Count: 1},
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
