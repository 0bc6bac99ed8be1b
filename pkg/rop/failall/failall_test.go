package failall

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ib-77/roperrs/internal/fixture"
	"github.com/ib-77/roperrs/pkg/rop"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var toHighLevel = ErrOr[fixture.A](fixture.FromErrA, fixture.HighLevelErr{Source: fixture.Placeholder})

func TestFailAllSlice_MixedConvertsEveryElement(t *testing.T) {
	t.Parallel()

	res := FailAllSlice([]rop.Result[fixture.A, fixture.ErrA]{
		fixture.DoA(fixture.Succeed),
		fixture.DoA(fixture.Fail),
		fixture.DoA(fixture.Succeed),
	}, toHighLevel)

	require.True(t, res.IsFailure())
	assert.Equal(t, []fixture.HighLevelErr{
		{Source: fixture.Placeholder},
		{Source: fixture.FromA},
		{Source: fixture.Placeholder},
	}, res.Err())
}

func TestFailAllSlice_AllSuccessNeverConverts(t *testing.T) {
	t.Parallel()

	called := 0
	res := FailAllSlice([]rop.Result[fixture.A, fixture.ErrA]{
		rop.Success[fixture.A, fixture.ErrA](fixture.A{N: 1}),
		rop.Success[fixture.A, fixture.ErrA](fixture.A{N: 2}),
	}, func(rop.Result[fixture.A, fixture.ErrA]) fixture.ErrC {
		called++
		return fixture.ErrC{}
	})

	require.True(t, res.IsSuccess())
	assert.Equal(t, []fixture.A{{N: 1}, {N: 2}}, res.Result())
	assert.Zero(t, called)
}

func TestFailAllSlice_AllFailure(t *testing.T) {
	t.Parallel()

	res := FailAllSlice([]rop.Result[fixture.A, fixture.ErrA]{
		fixture.DoA(fixture.Fail),
		fixture.DoA(fixture.Fail),
	}, toHighLevel)

	require.True(t, res.IsFailure())
	assert.Equal(t, []fixture.HighLevelErr{{Source: fixture.FromA}, {Source: fixture.FromA}}, res.Err())
}

func TestFailAllSlice_Empty(t *testing.T) {
	t.Parallel()

	res := FailAllSlice[int, error, error](nil, func(r rop.Result[int, error]) error { return r.Err() })

	require.True(t, res.IsSuccess())
	assert.Empty(t, res.Result())
}

func TestFailAll_ConvertReceivesWholeResult(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	input := []rop.Result[int, error]{
		rop.Success[int, error](10),
		rop.Fail[int](boom),
	}

	res := FailAllSlice(input, func(r rop.Result[int, error]) string {
		if v, ok := r.Get(); ok {
			return "ok:" + strconv.Itoa(v)
		}
		return r.Err().Error()
	})

	require.True(t, res.IsFailure())
	assert.Equal(t, []string{"ok:10", "boom"}, res.Err())
}

func TestFailAll_IsLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	input := []rop.Result[int, string]{
		rop.Fail[int]("a"),
		rop.Success[int, string](1),
		rop.Fail[int]("b"),
	}

	res := FailAll(slices.Values(input), func(r rop.Result[int, string]) string {
		calls++
		return "converted:" + r.Err()
	})

	require.True(t, res.IsFailure())
	assert.Zero(t, calls)

	for e := range res.Err() {
		assert.Equal(t, "converted:a", e)
		break
	}
	assert.Equal(t, 1, calls)

	assert.Equal(t, []string{"converted:a", "converted:", "converted:b"}, slices.Collect(res.Err()))
}

func TestFailAll_SuccessBranchUnwraps(t *testing.T) {
	t.Parallel()

	input := []rop.Result[string, error]{
		rop.Success[string, error]("x"),
		rop.Success[string, error]("y"),
	}

	res := FailAll(slices.Values(input), func(rop.Result[string, error]) error { return nil })

	require.True(t, res.IsSuccess())
	assert.Equal(t, []string{"x", "y"}, slices.Collect(res.Result()))
}

func TestFailAll_PanicsWhenInputChanges(t *testing.T) {
	t.Parallel()

	input := []rop.Result[int, string]{rop.Success[int, string](1)}
	res := FailAll(slices.Values(input), func(r rop.Result[int, string]) string { return r.Err() })
	require.True(t, res.IsSuccess())

	input[0] = rop.Fail[int]("late")

	assert.Panics(t, func() {
		for range res.Result() {
		}
	})
}

func TestFailAllOnce_SingleUseIterator(t *testing.T) {
	t.Parallel()

	pulled := 0
	var single iter.Seq[rop.Result[int, string]] = func(yield func(rop.Result[int, string]) bool) {
		if pulled > 0 {
			return
		}
		for _, r := range []rop.Result[int, string]{rop.Success[int, string](1), rop.Fail[int]("e")} {
			pulled++
			if !yield(r) {
				return
			}
		}
	}

	res := FailAllOnce(single, func(r rop.Result[int, string]) string {
		if r.IsSuccess() {
			return "-"
		}
		return r.Err()
	})

	require.True(t, res.IsFailure())
	assert.Equal(t, []string{"-", "e"}, slices.Collect(res.Err()))
	assert.Equal(t, 2, pulled)
}

func TestFailAllSlice_Repeatable(t *testing.T) {
	t.Parallel()

	input := []rop.Result[fixture.A, fixture.ErrA]{fixture.DoA(fixture.Fail), fixture.DoA(fixture.Succeed)}

	first := FailAllSlice(input, toHighLevel)
	second := FailAllSlice(input, toHighLevel)

	assert.Equal(t, first.Err(), second.Err())
	assert.Equal(t, first.IsSuccess(), second.IsSuccess())
}
