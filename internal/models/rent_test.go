package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeRentStatus(t *testing.T) {
	dec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return d
	}

	cases := []struct {
		name      string
		amount    string
		totalPaid string
		want      RentStatusType
	}{
		{"nothing paid", "500.00", "0", RentStatusUnpaid},
		{"partial payment", "500.00", "200.00", RentStatusPartial},
		{"exactly settled", "500.00", "500.00", RentStatusPaid},
		{"overpaid", "500.00", "650.00", RentStatusPaid},
		{"cent short stays partial", "500.00", "499.99", RentStatusPartial},
		{"zero amount is immediately paid", "0", "0", RentStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ComputeRentStatus(dec(tc.amount), dec(tc.totalPaid)))
		})
	}
}

func TestRoleRoundTrip(t *testing.T) {
	for _, role := range []Role{RoleTenant, RoleConcierge, RoleAccountant, RoleManager, RoleSuperAdmin} {
		parsed, err := ParseRole(role.String())
		require.NoError(t, err)
		require.Equal(t, role, parsed)
	}

	_, err := ParseRole("LANDLORD")
	require.Error(t, err)
}
