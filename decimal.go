package julianday

import "github.com/shopspring/decimal"

// Constants of the Julian Day algorithms. They are kept as decimals so that
// sums such as 365.25*y + day - 1524.5 stay exact.
var (
	dHalf       = decimal.RequireFromString("0.5")
	dOneAndHalf = decimal.RequireFromString("1.5")
	dYearDays   = decimal.RequireFromString("365.25")
	dMonthDays  = decimal.RequireFromString("30.6001")
	dEpochShift = decimal.RequireFromString("1524.5")
	dCentury    = decimal.RequireFromString("36524.25")
	dAlphaBase  = decimal.RequireFromString("1867216.25")
	dYearBase   = decimal.RequireFromString("122.1")

	// dGregorianStart is the integer day count of 1582-10-15, the first
	// Gregorian day.
	dGregorianStart = decimal.NewFromInt(2299161)

	// dUnixEpoch is the Julian Day of 1970-01-01T00:00:00Z.
	dUnixEpoch = decimal.RequireFromString("2440587.5")

	dSecondsPerDay = decimal.NewFromInt(86400)
	dNanosPerSec   = decimal.NewFromInt(1_000_000_000)
)

func dInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// floorDiv returns floor(x / y).
func floorDiv(x, y decimal.Decimal) decimal.Decimal {
	return x.Div(y).Floor()
}

// floorMul returns floor(x * y).
func floorMul(x, y decimal.Decimal) decimal.Decimal {
	return x.Mul(y).Floor()
}
