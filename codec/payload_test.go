package codec_test

import (
	"testing"

	"startex/chain"
	"startex/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPayloadMissingFieldsAreEmpty(t *testing.T) {
	parts := codec.SplitPayload("a|b")
	assert.Equal(t, "a", parts.Get(0))
	assert.Equal(t, "b", parts.Get(1))
	assert.Equal(t, "", parts.Get(5))
}

func TestParseFields(t *testing.T) {
	chain.New()

	assert.Equal(t, uint64(42), codec.ParseUintField("42", "n"))
	assert.Equal(t, uint64(0), codec.ParseUintField("", "n"), "empty defaults to zero")
	assert.Equal(t, int64(-7), codec.ParseInt64Field("-7", "n"))
	assert.True(t, codec.ParseBoolField("true"))
	assert.False(t, codec.ParseBoolField(""))

	require.Panics(t, func() { codec.ParseUintField("abc", "n") })
	require.Panics(t, func() { codec.ParseInt64Field("x", "n") })
}

func TestUnwrapPayloadTrimsQuotes(t *testing.T) {
	chain.New()

	raw := `"1|2|3"`
	assert.Equal(t, "1|2|3", codec.UnwrapPayload(&raw, "missing"))

	plain := "1|2|3"
	assert.Equal(t, "1|2|3", codec.UnwrapPayload(&plain, "missing"))

	require.Panics(t, func() { codec.UnwrapPayload(nil, "missing") })
}

func TestCounters(t *testing.T) {
	c := chain.New()
	id := c.RegisterContract("kv", "hive:deployer", func(method string, payload *string) *string {
		switch method {
		case "next":
			n := codec.NextID("count:x")
			return codec.StrPtr(codec.UInt64ToString(n))
		case "count":
			return codec.StrPtr(codec.UInt64ToString(codec.GetCount("count:x")))
		}
		return nil
	})

	res := c.Call("hive:bob", id, "next", "", chain.CallOpts{})
	require.True(t, res.Success)
	assert.Equal(t, "1", res.Ret)

	res = c.Call("hive:bob", id, "next", "", chain.CallOpts{})
	assert.Equal(t, "2", res.Ret)

	res = c.Call("hive:bob", id, "count", "", chain.CallOpts{})
	assert.Equal(t, "2", res.Ret)
}
