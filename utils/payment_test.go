package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedProviderCharge(t *testing.T) {
	p := SimulatedProvider{}

	ref, err := p.Charge(4899, "card")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "PAY-"), "got %q", ref)

	_, err = p.Charge(0, "card")
	assert.Error(t, err)

	_, err = p.Charge(-100, "upi")
	assert.Error(t, err)
}

func TestDescribeMethod(t *testing.T) {
	assert.Equal(t, "Credit Card ending in 4242", DescribeMethod("card", "4111111111114242"))
	assert.Equal(t, "Credit Card", DescribeMethod("card", "42"))
	assert.Equal(t, "UPI: asha@upi", DescribeMethod("upi", "asha@upi"))
	assert.Equal(t, "Paytm Wallet", DescribeMethod("wallet", "Paytm"))
	assert.Equal(t, "Online Payment", DescribeMethod("netbanking", "HDFC"))
}
