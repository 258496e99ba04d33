package qr

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate("https://pay.example/urun/1")
	require.NoError(t, err)
	b, err := Generate("https://pay.example/urun/1")
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, pngMagic, a[:4])
}

func TestGenerateDistinctPayloads(t *testing.T) {
	a, err := Generate("https://pay.example/urun/1")
	require.NoError(t, err)
	b, err := Generate("https://pay.example/urun/2")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestGenerateArbitraryText(t *testing.T) {
	// payload не обязан быть валидным URL
	img, err := Generate("bu bir link değil")
	require.NoError(t, err)
	require.Equal(t, pngMagic, img[:4])
}

func TestDataURI(t *testing.T) {
	uri, err := DataURI("https://pay.example/urun/1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)

	png, err := Generate("https://pay.example/urun/1")
	require.NoError(t, err)
	require.Equal(t, png, raw)
}
