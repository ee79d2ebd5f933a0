package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sample-hr/employee-admin/internal/model"
)

func sampleEmployee() model.Employee {
	return model.Employee{
		ID:              7,
		Name:            "Aoki",
		Image:           "e1.png",
		Gender:          "female",
		HireDate:        model.NewDate(2015, time.April, 1),
		MailAddress:     "aoki@example.com",
		ZipCode:         "111-1111",
		Address:         "Tokyo  Shinjuku 1-1",
		Telephone:       "03-1111-1111",
		Salary:          300000,
		Characteristics: "calm and careful",
		DependentsCount: 1,
	}
}

func TestParseRegistrationCollectsEveryViolation(t *testing.T) {
	_, err := ParseRegistration(map[string]string{
		FieldName:        "",
		FieldMailAddress: "bad",
		FieldPassword:    "x",
	})
	require.Error(t, err)

	fields := Fields(err)
	require.NotNil(t, fields)
	assert.Contains(t, fields, FieldName)
	assert.Contains(t, fields, FieldMailAddress)
	assert.NotContains(t, fields, FieldPassword)
	assert.Equal(t, "name is a required field", fields[FieldName])
	assert.Equal(t, "mailAddress must be a valid email address", fields[FieldMailAddress])
}

func TestParseRegistrationLeavesIDUnset(t *testing.T) {
	admin, err := ParseRegistration(map[string]string{
		FieldName:        "Yamada",
		FieldMailAddress: "yamada@example.com",
		FieldPassword:    "secret",
		"id":             "99",
	})
	require.NoError(t, err)
	assert.Equal(t, model.Administrator{Name: "Yamada", MailAddress: "yamada@example.com", Password: "secret"}, admin)
}

func TestParseRegistrationStoresTrimmedValues(t *testing.T) {
	admin, err := ParseRegistration(map[string]string{
		FieldName:        " Yamada ",
		FieldMailAddress: " yamada@example.com ",
		FieldPassword:    "secret\t",
	})
	require.NoError(t, err)
	assert.Equal(t, model.Administrator{Name: "Yamada", MailAddress: "yamada@example.com", Password: "secret"}, admin)

	form, err := ParseLogin(map[string]string{FieldMailAddress: " yamada@example.com", FieldPassword: " secret"})
	require.NoError(t, err)
	assert.Equal(t, model.LoginForm{MailAddress: "yamada@example.com", Password: "secret"}, form)
}

func TestParseEmployeeEditAcceptsInt32Bounds(t *testing.T) {
	edit, err := ParseEmployeeEdit(map[string]string{FieldSalary: " 2147483647 ", FieldDependentsCount: "0", FieldName: "  Aoki "})
	require.NoError(t, err)
	assert.Equal(t, 2147483647, *edit.Salary)
	assert.Equal(t, 0, *edit.DependentsCount)
	assert.Equal(t, "Aoki", *edit.Name)
}

func TestParseRegistrationTreatsMissingKeysAsEmpty(t *testing.T) {
	_, err := ParseRegistration(map[string]string{})
	fields := Fields(err)
	assert.Len(t, fields, 3)
}

func TestParseRegistrationRejectsBlankName(t *testing.T) {
	_, err := ParseRegistration(map[string]string{
		FieldName:        "   ",
		FieldMailAddress: "yamada@example.com",
		FieldPassword:    "secret",
	})
	assert.Contains(t, Fields(err), FieldName)
}

func TestParseLogin(t *testing.T) {
	form, err := ParseLogin(map[string]string{FieldMailAddress: "a@example.com", FieldPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, model.LoginForm{MailAddress: "a@example.com", Password: "pw"}, form)

	_, err = ParseLogin(map[string]string{FieldMailAddress: "a@example.com"})
	assert.Equal(t, map[string]string{FieldPassword: "password is a required field"}, Fields(err))
}

func TestParseEmployeeEditOnlySubmittedFields(t *testing.T) {
	edit, err := ParseEmployeeEdit(map[string]string{FieldDependentsCount: "3"})
	require.NoError(t, err)
	require.NotNil(t, edit.DependentsCount)
	assert.Equal(t, 3, *edit.DependentsCount)
	assert.Nil(t, edit.Name)
	assert.Nil(t, edit.Salary)

	updated := edit.Apply(sampleEmployee())
	want := sampleEmployee()
	want.DependentsCount = 3
	assert.Equal(t, want, updated)
}

func TestParseEmployeeEditRejectsBadValues(t *testing.T) {
	cases := []struct {
		field string
		value string
	}{
		{FieldHireDate, "2015/04/01"},
		{FieldHireDate, "2015-02-30"},
		{FieldHireDate, ""},
		{FieldSalary, "-1"},
		{FieldSalary, "12.5"},
		{FieldSalary, "abc"},
		{FieldSalary, "99999999999999999999999"},
		{FieldSalary, "2147483648"},
		{FieldDependentsCount, "4294967296"},
		{FieldDependentsCount, ""},
		{FieldMailAddress, "not-an-address"},
		{FieldZipCode, " "},
		{FieldImage, ""},
	}
	for _, tc := range cases {
		t.Run(tc.field+"="+tc.value, func(t *testing.T) {
			edit, err := ParseEmployeeEdit(map[string]string{tc.field: tc.value})
			require.Error(t, err)
			assert.Contains(t, Fields(err), tc.field)
			assert.True(t, edit.Empty(), "no partial entity on failure")
		})
	}
}

func TestParseEmployeeEditAccumulates(t *testing.T) {
	_, err := ParseEmployeeEdit(map[string]string{
		FieldName:            "",
		FieldSalary:          "x",
		FieldDependentsCount: "-2",
		FieldTelephone:       "03-0000-0000",
	})
	fields := Fields(err)
	assert.Len(t, fields, 3)
	assert.NotContains(t, fields, FieldTelephone)
}

func TestEmployeeFormRoundTrip(t *testing.T) {
	e := sampleEmployee()
	form := EmployeeForm(e)
	assert.Equal(t, "2015-04-01", form[FieldHireDate])
	assert.Equal(t, "300000", form[FieldSalary])

	edit, err := ParseEmployeeEdit(form)
	require.NoError(t, err)
	assert.Equal(t, e, edit.Apply(e))

	other := model.Employee{ID: 42}
	assert.Equal(t, 42, edit.Apply(other).ID)
}

func TestBlankRegistration(t *testing.T) {
	assert.Equal(t, map[string]string{FieldName: "", FieldMailAddress: "", FieldPassword: ""}, BlankRegistration())
}

func TestEchoDropsPassword(t *testing.T) {
	echo := Echo(map[string]string{FieldName: "A", FieldPassword: "secret"})
	assert.Equal(t, map[string]string{FieldName: "A"}, echo)
}

func TestValidationErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := FieldError(FieldMailAddress, "bad", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "validation failed: mailAddress: bad", err.Error())
	assert.Nil(t, Fields(cause))
}
