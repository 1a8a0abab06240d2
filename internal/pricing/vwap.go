package pricing

import "github.com/shopspring/decimal"

// VWAP 成交量加权平均价 sum(p*v)/sum(v)
// 空输入或总量为 0 时返回 0
func VWAP(levels []Level) decimal.Decimal {
	totalVolume := decimal.Zero
	totalPV := decimal.Zero
	for _, l := range levels {
		v := decimal.NewFromInt(int64(l.Volume))
		totalVolume = totalVolume.Add(v)
		totalPV = totalPV.Add(l.Price.Mul(v))
	}
	if totalVolume.IsZero() {
		return decimal.Zero
	}
	return totalPV.Div(totalVolume)
}

// VWAPIndexed 同 VWAP，用整数累加量 + 下标遍历
func VWAPIndexed(levels []Level) decimal.Decimal {
	if len(levels) == 0 {
		return decimal.Zero
	}
	var totalVolume int64
	totalPV := decimal.Zero
	for i, end := 0, len(levels); i < end; i++ {
		totalVolume += int64(levels[i].Volume)
		totalPV = totalPV.Add(levels[i].Price.Mul(decimal.NewFromInt(int64(levels[i].Volume))))
	}
	if totalVolume == 0 {
		return decimal.Zero
	}
	return totalPV.Div(decimal.NewFromInt(totalVolume))
}
