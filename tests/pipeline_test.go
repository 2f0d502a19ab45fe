package tests

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/wrappers/pkg/wrap"
	"github.com/ib-77/wrappers/pkg/wrap/chain"
	"github.com/ib-77/wrappers/pkg/wrap/maybe"
	"github.com/ib-77/wrappers/pkg/wrap/solo"
)

var errDivideByZero = wrap.NewError("Arithmetic", 1, "divide by zero")

// TestPortParsing parses host:port pairs through Try, Option and chain
func TestPortParsing(t *testing.T) {
	inputs := []string{
		"example.com:80",
		"example.com:8080",
		"example.com:99999",
		"example.com:http",
		"no-port",
	}

	results := make([]string, 0, len(inputs))
	for _, in := range inputs {
		results = append(results, parseAddress(in))
	}

	assert.Equal(t, []string{
		"example.com port 80",
		"example.com port 8080",
		"invalid",
		"invalid",
		"invalid",
	}, results)
}

func parseAddress(addr string) string {
	host, port, found := strings.Cut(addr, ":")

	hostTry := wrap.Success(host)
	portTry := chain.ThenTry(chain.Start(wrap.Of(port, missing(found))), strconv.Atoi).
		Filter(func(p int) bool { return p > 0 && p < 65536 }).
		Result()

	return solo.Yield2(hostTry, portTry, func(h string, p int) string {
		return fmt.Sprintf("%s port %d", h, p)
	}).GetOrElse("invalid")
}

func missing(found bool) error {
	if found {
		return nil
	}
	return wrap.NewError("Address", 1, "missing port")
}

func divide(x, y int) wrap.Try[int] {
	if y == 0 {
		return wrap.Fail[int](errDivideByZero)
	}
	return wrap.Success(x / y)
}

func TestErrorIdentityAcrossCombinators(t *testing.T) {
	failed := divide(1, 0)

	mapped := solo.Map(failed, func(v int) string { return strconv.Itoa(v) })
	flat := solo.Flatten(solo.Map(mapped, func(s string) wrap.Try[string] { return wrap.Success(s) }))
	chained := solo.FlatMap(flat, func(s string) wrap.Try[int] { return divide(len(s), 1) })
	final := chained.OrElse(wrap.Fail[int](failed.Err()))

	var got *wrap.Error
	require.ErrorAs(t, final.Err(), &got)
	assert.Equal(t, "Arithmetic", got.Domain)
	assert.Equal(t, 1, got.Code)
	assert.Equal(t, "divide by zero", got.Message)
}

func TestTryToOptionInterplay(t *testing.T) {
	values := []wrap.Try[int]{divide(10, 2), divide(1, 0), divide(9, 3)}

	sum := 0
	for _, v := range values {
		maybe.ForEach(v.ToOption(), func(n int) { sum += n })
	}
	assert.Equal(t, 8, sum)

	both := maybe.Yield2(values[0].ToOption(), values[2].ToOption(), func(a, b int) int { return a * b })
	assert.Equal(t, maybe.Some(15), both)

	none := maybe.Yield2(values[0].ToOption(), values[1].ToOption(), func(a, b int) int { return a * b })
	assert.True(t, none.IsNone())
}
