package payroll_test

import (
	"testing"

	"go-payroll/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func TestComputeSalary(t *testing.T) {
	t.Run("net pay identity holds", func(t *testing.T) {
		b := payroll.ComputeSalary(payroll.SalaryInputs{
			CTC:           900_000_00,
			DaysInMonth:   31,
			AbsentDays:    2,
			BirthdayMonth: true,
			FestivalMonth: true,
			MarriageLeave: true,
		})
		assert.Equal(t, b.Gross+b.Bonus-b.PF-b.Penalty-b.Tax, b.NetPay)
	})

	t.Run("gross is the rounded monthly slice of ctc", func(t *testing.T) {
		b := payroll.ComputeSalary(payroll.SalaryInputs{CTC: 600_000_00, DaysInMonth: 30})
		assert.Equal(t, int64(50_000_00), b.Gross)
	})

	t.Run("full attendance means no penalty", func(t *testing.T) {
		b := payroll.ComputeSalary(payroll.SalaryInputs{CTC: 600_000_00, DaysInMonth: 30})
		assert.Equal(t, int64(0), b.Penalty)
	})

	t.Run("each absence costs one per-day rate", func(t *testing.T) {
		b := payroll.ComputeSalary(payroll.SalaryInputs{CTC: 600_000_00, DaysInMonth: 30, AbsentDays: 3})
		// per day = round(50000.00 / 29)
		assert.Equal(t, int64(3*1_724_14), b.Penalty)
	})

	t.Run("provident fund is five percent of gross", func(t *testing.T) {
		b := payroll.ComputeSalary(payroll.SalaryInputs{CTC: 600_000_00, DaysInMonth: 30})
		assert.Equal(t, int64(2_500_00), b.PF)
	})

	t.Run("bonuses stack", func(t *testing.T) {
		none := payroll.ComputeSalary(payroll.SalaryInputs{CTC: 600_000_00, DaysInMonth: 30})
		all := payroll.ComputeSalary(payroll.SalaryInputs{
			CTC:           600_000_00,
			DaysInMonth:   30,
			BirthdayMonth: true,
			FestivalMonth: true,
			MarriageLeave: true,
		})
		assert.Equal(t, int64(0), none.Bonus)
		assert.Equal(t, int64(13_000_00), all.Bonus)
	})
}

func TestComputeSalary_TaxSlabs(t *testing.T) {
	cases := []struct {
		name       string
		annualCTC  int64
		wantYearly int64
	}{
		{"below the first threshold", 300_000_00, 0},
		{"five percent over three lakh", 600_000_00, 15_000_00},
		{"second slab midpoint", 750_000_00, 30_000_00},
		{"third slab boundary", 900_000_00, 45_000_00},
		{"fourth slab boundary", 1_200_000_00, 90_000_00},
		{"fifth slab boundary", 1_500_000_00, 150_000_00},
		{"above the top threshold", 1_800_000_00, 210_000_00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := payroll.ComputeSalary(payroll.SalaryInputs{CTC: tc.annualCTC, DaysInMonth: 30})
			want := (tc.wantYearly + 6) / 12
			assert.Equal(t, want, b.Tax)
		})
	}
}
