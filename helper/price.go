package helper

import (
	"airline_manager/model"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// RouteBasePrice applies the airline tariff to a finished route walk.
// The result truncates toward zero, it does not round.
func RouteBasePrice(totalKm float64, stopovers int, policy model.AirlinePricePolicy) int {
	price := totalKm * policy.PriceForKm
	price += float64(policy.FixedMarkup)
	price += float64(policy.FeeForStopover * stopovers)
	return int(price)
}

// ClassAdjustedPrice stacks the per-class policy on a route base price.
// A missing policy is not an error: multiplier 1, markup 0.
func ClassAdjustedPrice(basePrice int, policy *model.ClassPricePolicy) float64 {
	multiplier := 1.0
	markup := 0.0
	if policy != nil {
		multiplier = policy.PriceMultiplier
		markup = policy.FixedMarkup
	}
	return float64(basePrice)*multiplier + markup
}

// GetClassPricePolicy returns nil without error when no policy exists
// for the (airline, class) pair
func GetClassPricePolicy(db *gorm.DB, airlineCode string, idClass uint) (*model.ClassPricePolicy, error) {
	var policy model.ClassPricePolicy
	err := db.Where("airline_code = ? AND id_class = ?", airlineCode, idClass).First(&policy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &policy, nil
}

// AddBaggageFees validates each selection against the airline's baggage
// rules and adds count * basePrice. A missing rule or allow_extra=false
// is fatal, unlike the class policy above.
func AddBaggageFees(db *gorm.DB, price float64, airlineCode string, selections []model.BaggageSelectionInput) (float64, error) {
	for _, selection := range selections {
		var baggage model.Baggage
		if err := db.First(&baggage, selection.IdBaggage).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("baggage %d: %w", selection.IdBaggage, ErrNotFound)
			}
			return 0, err
		}

		var rule model.BaggageRule
		err := db.Where("id_baggage_type = ? AND airline_code = ?", selection.IdBaggage, airlineCode).First(&rule).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("baggage rule for type %d airline %s: %w", selection.IdBaggage, airlineCode, ErrPolicyMissing)
			}
			return 0, err
		}

		if !rule.AllowExtra {
			return 0, fmt.Errorf("extra baggage of type %d not allowed: %w", selection.IdBaggage, ErrValidation)
		}

		price += float64(selection.Count) * rule.BasePrice
	}
	return price, nil
}
