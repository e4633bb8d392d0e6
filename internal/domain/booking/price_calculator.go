package booking

type PriceCalculator interface {
	CalculatePrice(hourlyPriceCents int, slot TimeSlot) Money
	CalculateCommission(price Money) Money
}

type HourlyPriceCalculator struct {
	CommissionPercent int
}

func NewHourlyPriceCalculator(commissionPercent int) *HourlyPriceCalculator {
	if commissionPercent < 0 {
		commissionPercent = 0
	}
	return &HourlyPriceCalculator{CommissionPercent: commissionPercent}
}

func (pc *HourlyPriceCalculator) CalculatePrice(hourlyPriceCents int, slot TimeSlot) Money {
	hours := slot.Duration().Hours()
	return NewMoney(int64(hours * float64(hourlyPriceCents)))
}

func (pc *HourlyPriceCalculator) CalculateCommission(price Money) Money {
	return price.Percent(pc.CommissionPercent)
}
