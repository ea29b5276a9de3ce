package adt

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

type errKind int

const (
	errNotFound errKind = iota + 1
	errInvalid
)

func TestOkMatchesOkBranchOnly(t *testing.T) {
	t.Parallel()

	var got int
	errCalled := false
	Ok[int, string](42).Match(
		func(v int) { got = v },
		func(string) { errCalled = true },
	)

	require.Equal(t, 42, got)
	require.False(t, errCalled)
}

func TestErrMatchesErrBranchOnly(t *testing.T) {
	t.Parallel()

	var got string
	okCalled := false
	Err[int]("something went wrong").Match(
		func(int) { okCalled = true },
		func(e string) { got = e },
	)

	require.Equal(t, "something went wrong", got)
	require.False(t, okCalled)
}

func TestFoldResult(t *testing.T) {
	t.Parallel()

	describe := func(r Result[int, errKind]) string {
		return FoldResult(r,
			func(v int) string { return "value" },
			func(e errKind) string {
				switch e {
				case errNotFound:
					return "not found"
				case errInvalid:
					return "invalid"
				default:
					return "unknown"
				}
			})
	}

	require.Equal(t, "value", describe(Ok[int, errKind](1)))
	require.Equal(t, "not found", describe(Err[int](errNotFound)))
	require.Equal(t, "invalid", describe(Err[int](errInvalid)))
}

func TestResultWithStructuredTypes(t *testing.T) {
	t.Parallel()

	type user struct {
		Name string
		Tags []string
	}
	parseErr := errors.New("parse")

	r := Ok[user, error](user{Name: "ann", Tags: []string{"admin"}})
	require.Equal(t, Ok[user, error](user{Name: "ann", Tags: []string{"admin"}}), r)

	name := FoldResult(r,
		func(u user) string { return u.Name },
		func(error) string { return "" })
	require.Equal(t, "ann", name)

	e := Err[user](parseErr)
	FoldResult(e,
		func(user) Unit {
			t.Fatalf("Ok branch taken for %v", e)
			return Unit{}
		},
		func(err error) Unit {
			require.ErrorIs(t, err, parseErr)
			return Unit{}
		})
}

func TestResultVariantsAreDistinct(t *testing.T) {
	t.Parallel()

	// Same payload type on both sides must still not compare equal.
	require.NotEqual(t, Ok[string, string]("x"), Err[string]("x"))
	a, b, c := Ok[int, int](1), Ok[int, int](1), Err[int](1)
	require.True(t, a == b)
	require.False(t, a == c)
}

func TestPropFoldResultOk(t *testing.T) {
	f := func(v int) bool {
		return FoldResult(Ok[int, string](v),
			func(got int) bool { return got == v },
			func(string) bool { return false })
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestPropFoldResultErr(t *testing.T) {
	f := func(e string) bool {
		return FoldResult(Err[int](e),
			func(int) bool { return false },
			func(got string) bool { return got == e })
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestUnconstructedResultPanics(t *testing.T) {
	t.Parallel()

	var r Result[int, string]

	defer func() {
		rec := recover()
		require.NotNil(t, rec)

		err, ok := rec.(error)
		require.True(t, ok, "panic value %v is not an error", rec)
		require.ErrorIs(t, err, ErrUnconstructed)
	}()

	r.Match(func(int) {}, func(string) {})
	t.Fatalf("Match on zero-value Result returned")
}

func TestResultString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Ok(5)", Ok[int, string](5).String())
	require.Equal(t, "Err(bad)", Err[int]("bad").String())
	require.Equal(t, "Result(<unconstructed>)", Result[int, string]{}.String())
}
