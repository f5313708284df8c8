package result

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Variants(t *testing.T) {
	var zero Result[int]
	assert.True(t, zero.IsLoading(), "zero value should be Loading")

	ok := Success(42)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 42, ok.Data())
	assert.Empty(t, ok.Message())
	assert.Equal(t, StatusSuccess, ok.Status())

	bad := Failure[int]("Plant not found", 404)
	assert.True(t, bad.IsError())
	assert.Equal(t, "Plant not found", bad.Message())
	assert.Equal(t, 404, bad.Code())
	assert.Zero(t, bad.Data())
	assert.Equal(t, "error", bad.Status().String())
}

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		in   Result[int]
		want Result[string]
	}{
		{name: "Success converts payload", in: Success(7), want: Success("7")},
		{name: "Error carries over", in: Failure[int]("boom", 500), want: Failure[string]("boom", 500)},
		{name: "Loading carries over", in: Loading[int](), want: Loading[string]()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Map(tc.in, strconv.Itoa))
		})
	}
}

func TestForward(t *testing.T) {
	r := Forward[string](Failure[int]("Session expired", 401))
	assert.True(t, r.IsError())
	assert.Equal(t, 401, r.Code())
}
