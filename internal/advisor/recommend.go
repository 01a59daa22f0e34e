// Package advisor provides stateless classifiers over market views and
// computed Greeks: a strategy recommendation table and qualitative Greek
// insights.
package advisor

import (
	"options-desk/internal/errors"
	"options-desk/internal/models"
)

// Recommend maps a market view to a primary and alternative strategy from the
// catalog. The table is keyed on direction, then volatility outlook, then
// risk preference, and is total over the enumerated domain. When the caller
// does not own the underlying, Cash-Secured Put is replaced by Bull Put
// Spread in both slots, since a cash-secured put presupposes willingness to
// take assignment.
func Recommend(view models.MarketView) (primary, alternative models.StrategyName, err error) {
	primary, alternative, err = lookup(view)
	if err != nil {
		return "", "", err
	}
	if !view.OwnsUnderlying {
		if primary == models.CashSecuredPut {
			primary = models.BullPutSpread
		}
		if alternative == models.CashSecuredPut {
			alternative = models.BullPutSpread
		}
	}
	return primary, alternative, nil
}

func lookup(view models.MarketView) (models.StrategyName, models.StrategyName, error) {
	defined := view.Risk == models.RiskDefined
	if !defined && view.Risk != models.RiskUndefined {
		return "", "", errors.Wrapf(errors.ErrInvalidMarketView, "risk %q", view.Risk)
	}

	switch view.Direction {
	case models.DirectionBullish:
		switch view.Volatility {
		case models.VolHigh:
			// Rich premium favors selling it.
			if defined {
				return models.BullPutSpread, models.BullCallSpread, nil
			}
			return models.CashSecuredPut, models.BullPutSpread, nil
		case models.VolLow:
			// Cheap premium favors owning it.
			if defined {
				return models.LongCall, models.BullCallSpread, nil
			}
			return models.LongCall, models.CashSecuredPut, nil
		case models.VolSideways:
			if defined {
				return models.BullCallSpread, models.LongCall, nil
			}
			return models.CashSecuredPut, models.BullPutSpread, nil
		}

	case models.DirectionBearish:
		switch view.Volatility {
		case models.VolHigh:
			if defined {
				return models.BearCallSpread, models.BearPutSpread, nil
			}
			return models.BearCallSpread, models.ShortStrangle, nil
		case models.VolLow:
			if defined {
				return models.LongPut, models.BearPutSpread, nil
			}
			return models.LongPut, models.BearCallSpread, nil
		case models.VolSideways:
			if defined {
				return models.BearPutSpread, models.LongPut, nil
			}
			return models.BearCallSpread, models.BearPutSpread, nil
		}

	case models.DirectionNeutral:
		switch view.Volatility {
		case models.VolHigh:
			if defined {
				return models.IronCondor, models.ShortStrangle, nil
			}
			return models.ShortStrangle, models.IronCondor, nil
		case models.VolLow:
			// Expecting a volatility pickup: own both sides.
			if defined {
				return models.LongStraddle, models.IronCondor, nil
			}
			return models.LongStraddle, models.ShortStrangle, nil
		case models.VolSideways:
			if defined {
				return models.IronCondor, models.LongStraddle, nil
			}
			return models.ShortStrangle, models.IronCondor, nil
		}

	default:
		return "", "", errors.Wrapf(errors.ErrInvalidMarketView, "direction %q", view.Direction)
	}
	return "", "", errors.Wrapf(errors.ErrInvalidMarketView, "volatility %q", view.Volatility)
}
