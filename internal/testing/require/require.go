package require

import (
	"errors"
	"reflect"
	"testing"
)

func Equal[V any](t testing.TB, got, want V) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("`%v` != `%v`", got, want)
	}
}

func NotEqual[V any](t testing.TB, got, want V) {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		t.Fatalf("`%v` == `%v`", got, want)
	}
}

func True(t testing.TB, x bool, msg string) {
	t.Helper()
	if !x {
		t.Fatal(msg)
	}
}

func Nil(t testing.TB, x any) {
	t.Helper()
	if !isNil(x) {
		t.Fatalf("expected <nil>, got `%v`", x)
	}
}

func NotNil(t testing.TB, x any) {
	t.Helper()
	if isNil(x) {
		t.Fatalf("expected not <nil>, got `%v`", x)
	}
}

func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error matching `%v`, got `%v`", target, err)
	}
}

func PanicWithError(t testing.TB, errMsg string, f func()) {
	t.Helper()

	did, msg := didPanic(f)
	if !did {
		t.Fatal("expected panic")
	}
	if msg != errMsg {
		t.Fatalf("expected panic error `%s`, got `%v`", errMsg, msg)
	}
}

func NotPanics(t testing.TB, f func()) {
	t.Helper()

	if did, msg := didPanic(f); did {
		t.Fatalf("unexpected panic `%v`", msg)
	}
}

func isNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}

	return false
}

func didPanic(f func()) (didPanic bool, message any) {
	didPanic = true

	defer func() {
		message = recover()
	}()

	// call the target function
	f()
	didPanic = false

	return
}
