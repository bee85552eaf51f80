package payroll

// All amounts are int64 paise; divisions round half up.

const (
	pfRatePercent = 5

	birthdayBonus = 1_000_00
	festivalBonus = 2_000_00
	marriageBonus = 10_000_00
)

// taxSlabs is the annual income tax table: fixed tax owed at the slab floor
// plus a marginal rate on the amount above it.
var taxSlabs = []struct {
	floor       int64
	base        int64
	ratePercent int64
}{
	{1_500_000_00, 150_000_00, 20},
	{1_200_000_00, 90_000_00, 20},
	{900_000_00, 45_000_00, 15},
	{600_000_00, 15_000_00, 10},
	{300_000_00, 0, 5},
}

type SalaryInputs struct {
	CTC           int64
	DaysInMonth   int
	AbsentDays    int
	BirthdayMonth bool
	FestivalMonth bool
	MarriageLeave bool
}

type SalaryBreakdown struct {
	Gross   int64
	Bonus   int64
	PF      int64
	Penalty int64
	Tax     int64
	NetPay  int64
}

// ComputeSalary derives one month of pay from the annual CTC and the month's
// attendance. It is a pure function so drafts and releases cannot disagree.
func ComputeSalary(in SalaryInputs) SalaryBreakdown {
	gross := roundDiv(in.CTC, 12)
	perDay := roundDiv(gross, int64(in.DaysInMonth-1))
	penalty := perDay * int64(in.AbsentDays)
	pf := roundDiv(gross*pfRatePercent, 100)
	tax := monthlyTax(12 * gross)

	var bonus int64
	if in.BirthdayMonth {
		bonus += birthdayBonus
	}
	if in.FestivalMonth {
		bonus += festivalBonus
	}
	if in.MarriageLeave {
		bonus += marriageBonus
	}

	return SalaryBreakdown{
		Gross:   gross,
		Bonus:   bonus,
		PF:      pf,
		Penalty: penalty,
		Tax:     tax,
		NetPay:  gross + bonus - pf - penalty - tax,
	}
}

func monthlyTax(annual int64) int64 {
	for _, slab := range taxSlabs {
		if annual > slab.floor {
			yearly := slab.base + roundDiv((annual-slab.floor)*slab.ratePercent, 100)
			return roundDiv(yearly, 12)
		}
	}
	return 0
}

func roundDiv(n, d int64) int64 {
	return (n + d/2) / d
}
