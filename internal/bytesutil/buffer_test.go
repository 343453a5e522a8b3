package bytesutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackBufferRefusesToGrow(t *testing.T) {
	storage := make([]byte, 4)
	b := NewStackBuffer(storage)

	require.NoError(t, b.Append([]byte{1, 2, 3, 4}))
	require.Equal(t, 4, b.Len())

	err := b.Append([]byte{5})
	require.ErrorIs(t, err, ErrFixedBufferFull)
}

func TestGrowableBufferDoubles(t *testing.T) {
	b := NewBuffer(0)
	for i := 0; i < 100; i++ {
		require.NoError(t, b.AppendByte(byte(i)))
	}
	require.Equal(t, 100, b.Len())
	for i := 0; i < 100; i++ {
		require.Equal(t, byte(i), b.Bytes()[i])
	}
}

func TestDecodeHex(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"0x68656c6c6f", []byte("hello")},
		{"68656c6c6f", []byte("hello")},
		{"0xf", []byte{0x0f}},
		{"", []byte{}},
	}
	for _, c := range cases {
		got, err := DecodeHex(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}

	_, err := DecodeHex("0xzz")
	require.ErrorIs(t, err, ErrInvalidHex)
}

func TestEncodeHexRoundTrip(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	s := EncodeHex(want)
	require.Equal(t, "0xdeadbeef", s)
	got, err := DecodeHex(s)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestPadLeftAndTrim(t *testing.T) {
	require.Equal(t, []byte{0, 0, 1}, PadLeft([]byte{1}, 3))
	require.Equal(t, []byte{1, 2}, PadLeft([]byte{1, 2}, 1))
	require.Equal(t, []byte{1}, TrimLeadingZeroes([]byte{0, 0, 1}))
	require.Equal(t, []byte{}, TrimLeadingZeroes([]byte{0, 0}))
}

func TestViewSlice(t *testing.T) {
	v := NewView([]byte{1, 2, 3, 4, 5})
	s, err := v.Slice(1, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3}, s.Bytes())

	_, err = v.Slice(3, 10)
	require.Error(t, err)
}
