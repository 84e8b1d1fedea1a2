package nbtstub_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-mclib/mcserver/nbtstub"
)

type greeting struct {
	Text string `nbt:"text"`
}

func TestMarshalUnmarshalRoundTrips(t *testing.T) {
	data, err := nbtstub.Marshal(greeting{Text: "hello"})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var out greeting
	n, err := nbtstub.Unmarshal(data, &out)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, "hello", out.Text)
}
