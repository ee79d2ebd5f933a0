package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateScan(t *testing.T) {
	want := NewDate(2019, time.October, 3)
	tokyo := time.FixedZone("JST", 9*60*60)

	for name, src := range map[string]any{
		"time":      time.Date(2019, time.October, 3, 0, 0, 0, 0, tokyo),
		"text":      "2019-10-03",
		"timestamp": "2019-10-03 00:00:00+00:00",
		"bytes":     []byte("2019-10-03"),
	} {
		t.Run(name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(src))
			assert.Equal(t, want, d)
		})
	}

	var d Date
	assert.Error(t, d.Scan("03/10/2019"))
	assert.Error(t, d.Scan(12))
}

func TestDateValueAndJSON(t *testing.T) {
	d := NewDate(2001, time.January, 2)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2001-01-02", v)

	b, err := json.Marshal(Employee{ID: 1, HireDate: d})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"hire_date":"2001-01-02"`)

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2001-01-02"`), &back))
	assert.Equal(t, d, back)
}

func TestEmployeeEditApplyKeepsIdentity(t *testing.T) {
	name := "Suzuki"
	salary := 0
	base := Employee{ID: 3, Name: "Sato", Salary: 250000, DependentsCount: 2}

	got := EmployeeEdit{Name: &name, Salary: &salary}.Apply(base)
	assert.Equal(t, Employee{ID: 3, Name: "Suzuki", Salary: 0, DependentsCount: 2}, got)
	assert.Equal(t, "Sato", base.Name)

	assert.True(t, EmployeeEdit{}.Empty())
	assert.Equal(t, base, EmployeeEdit{}.Apply(base))
}
