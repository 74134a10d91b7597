package compute_budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetComputeUnitLimit(t *testing.T) {
	ixn := SetComputeUnitLimit(200_000)
	assert.EqualValues(t, ProgramKey, ixn.Program)
	assert.Empty(t, ixn.Accounts)
	assert.Equal(t, []byte{2, 0x40, 0x0d, 0x03, 0x00}, ixn.Data)

	limit, err := ParseSetComputeUnitLimitIxnData(ixn.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 200_000, limit)

	_, err = ParseSetComputeUnitLimitIxnData(ixn.Data[:4])
	assert.Error(t, err)

	_, err = ParseSetComputeUnitPriceIxnData(ixn.Data)
	assert.Error(t, err)
}

func TestSetComputeUnitPrice(t *testing.T) {
	ixn := SetComputeUnitPrice(1_000)
	assert.EqualValues(t, ProgramKey, ixn.Program)
	assert.Equal(t, []byte{3, 0xe8, 0x03, 0, 0, 0, 0, 0, 0}, ixn.Data)

	price, err := ParseSetComputeUnitPriceIxnData(ixn.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 1_000, price)

	data := append([]byte{}, ixn.Data...)
	data[0] = commandSetComputeUnitLimit
	_, err = ParseSetComputeUnitPriceIxnData(data)
	assert.Error(t, err)
}
