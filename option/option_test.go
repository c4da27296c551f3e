package option_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/texasbruce/vavr/option"
)

func TestOptionMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, option.Some(14), option.Some(7).Map(double))
	assert.Equal(t, option.None[int](), option.None[int]().Map(double))
}

func TestOptionMapChangesType(t *testing.T) {
	x := option.Map(strconv.Itoa, option.Some(7))
	assert.Equal(t, option.Some("7"), x)
	assert.Equal(t, option.None[string](), option.Map(strconv.Itoa, option.None[int]()))
}

func TestOptionFlatMap(t *testing.T) {
	half := func(n int) option.Option[int] {
		if n%2 == 0 {
			return option.Some(n / 2)
		}
		return option.None[int]()
	}
	assert.Equal(t, option.Some(3), option.Some(6).FlatMap(half))
	assert.Equal(t, option.None[int](), option.Some(7).FlatMap(half))
	assert.Equal(t, option.None[int](), option.None[int]().FlatMap(half))
}

func TestOptionAndThen(t *testing.T) {
	gt0 := func(n int) option.Option[bool] {
		if n > 0 {
			return option.Some(true)
		}
		return option.None[bool]()
	}
	assert.Equal(t, option.Some(true), option.AndThen(gt0, option.Some(7)))
	assert.Equal(t, option.None[bool](), option.AndThen(gt0, option.Some(-7)))
}

func TestOptionFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, option.Some(4), option.Some(4).Filter(even))
	assert.Equal(t, option.None[int](), option.Some(5).Filter(even))
	assert.Equal(t, option.None[int](), option.None[int]().Filter(even))
}

func TestOptionGetOrElse(t *testing.T) {
	assert.Equal(t, 7, option.Some(7).GetOrElse(100))
	assert.Equal(t, 100, option.None[int]().GetOrElse(100))
}

func TestOptionOrElse(t *testing.T) {
	assert.Equal(t, option.Some(7), option.Some(7).OrElse(option.Some(1)))
	assert.Equal(t, option.Some(1), option.None[int]().OrElse(option.Some(1)))
}

func TestOptionIsDefined(t *testing.T) {
	assert.True(t, option.Some(7).IsDefined())
	assert.False(t, option.Some(7).IsEmpty())
	assert.False(t, option.None[int]().IsDefined())
	assert.True(t, option.None[int]().IsEmpty())
}

func TestOptionGetPanicsOnNone(t *testing.T) {
	assert.Equal(t, 7, option.Some(7).Get())
	defer func() {
		p := recover()
		if assert.NotNil(t, p, "expected Get on None to panic") {
			err, ok := p.(error)
			assert.True(t, ok && errors.Is(err, option.ErrNoneGet))
		}
	}()
	option.None[int]().Get()
}

// The nil policy, in both directions: Some keeps a nil pointer, FromPtr
// collapses it.
func TestOptionNilPolicy(t *testing.T) {
	var p *int
	assert.True(t, option.Some(p).IsDefined(), "Some of a nil pointer stays Some")
	assert.True(t, option.FromPtr(p).IsEmpty(), "FromPtr collapses nil to None")
	n := 7
	assert.Equal(t, option.Some(7), option.FromPtr(&n))
}

func TestOptionForEach(t *testing.T) {
	var visited int
	option.Some(7).ForEach(func(n int) { visited = n })
	assert.Equal(t, 7, visited)
	option.None[int]().ForEach(func(n int) { visited = -1 })
	assert.Equal(t, 7, visited, "ForEach on None must not call f")
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "Some(7)", option.Some(7).String())
	assert.Equal(t, "None", option.None[int]().String())
}

func TestOptionZeroValue(t *testing.T) {
	var o option.Option[int]
	assert.True(t, o.IsEmpty(), "the zero value is None")
}
