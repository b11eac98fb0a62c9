package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/containers/maybe"
	"github.com/stretchr/testify/assert"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	assert.Equal(t, 7, Just(7).WithDefault(100))
	assert.Equal(t, 100, Nothing[int]().WithDefault(100))
}

func TestMaybeGet(t *testing.T) {
	v, ok := Just("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	v, ok = Nothing[string]().Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.True(t, Nothing[string]().IsNothing())
	assert.False(t, Of(3, true).IsNothing())
	assert.True(t, Of(3, false).IsNothing())
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	assert.Equal(t, 14, xx.WithDefault(0))

	s := Map(strconv.Itoa, Just(10))
	assert.Equal(t, "10", s.WithDefault(""))

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Logf("nothing * 2 = %d", w)
		t.Error("expected Nothing.Map(…) to return 99, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	assert.True(t, AndThen(gt0, Just(-1)).IsNothing())
	assert.True(t, AndThen(gt0, Nothing[int]()).IsNothing())
}
