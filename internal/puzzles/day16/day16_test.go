package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/testutil"
)

func TestLiteral(t *testing.T) {
	p, err := parse([]byte("D2FE28"))
	require.NoError(t, err)
	assert.Equal(t, 6, p.version)
	assert.Equal(t, typeLiteral, p.typeID)
	assert.EqualValues(t, 2021, p.literal)
}

func TestOperatorLengthTypes(t *testing.T) {
	p, err := parse([]byte("38006F45291200"))
	require.NoError(t, err)
	require.Len(t, p.subs, 2)
	assert.EqualValues(t, 10, p.subs[0].literal)
	assert.EqualValues(t, 20, p.subs[1].literal)

	p, err = parse([]byte("EE00D40C823060"))
	require.NoError(t, err)
	require.Len(t, p.subs, 3)
	assert.EqualValues(t, 3, p.subs[2].literal)
}

func TestVersionSums(t *testing.T) {
	tests := map[string]int{
		"8A004A801A8002F478":             16,
		"620080001611562C8802118E34":     12,
		"C0015000016115A2E0802F182340":   23,
		"A0016C880162017C3686B18A3D4780": 31,
	}
	for in, want := range tests {
		got, err := Part1([]byte(in))
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestEval(t *testing.T) {
	tests := map[string]int64{
		"C200B40A82":                 3,
		"04005AC33890":               54,
		"880086C3E88112":             7,
		"CE00C43D881120":             9,
		"D8005AC2A8F0":               1,
		"F600BC2D8F":                 0,
		"9C005AC2F8F0":               0,
		"9C0141080250320F1802104A08": 1,
	}
	for in, want := range tests {
		got, err := Part2([]byte(in))
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"", "D2FE2Z", "38006F4529"} {
		_, err := Part1([]byte(in))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}

func TestFixtures(t *testing.T) {
	testutil.CheckFixtures(t, 16)
}
