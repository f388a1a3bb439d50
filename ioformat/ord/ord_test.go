package ord_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrossmin/crossmin/ioformat/ord"
)

func TestRead_ParsesLayerBlocksInOrder(t *testing.T) {
	input := "# a comment\n0 { a b }\n1 { c }\n"
	layers, comments, err := ord.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"a comment"}, comments)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, layers)
}

func TestRead_EmptyLayerBlockIsAllowed(t *testing.T) {
	layers, _, err := ord.Read(strings.NewReader("0 { }\n1 { x }\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{nil, {"x"}}, layers)
}

func TestRead_OutOfOrderLayerNumberIsMalformed(t *testing.T) {
	_, _, err := ord.Read(strings.NewReader("1 { a }\n0 { b }\n"))
	assert.Error(t, err)
}

func TestRead_UnterminatedBlockIsMalformed(t *testing.T) {
	_, _, err := ord.Read(strings.NewReader("0 { a b\n"))
	assert.Error(t, err)
}

func TestWriteRead_RoundTrips(t *testing.T) {
	names := [][]string{{"a0", "a1"}, {"b0"}}
	comments := []string{"hello"}

	var buf bytes.Buffer
	require.NoError(t, ord.Write(&buf, names, comments))

	gotLayers, gotComments, err := ord.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, names, gotLayers)
	assert.Equal(t, comments, gotComments)
}
