package validator

import (
	"strconv"

	"github.com/sample-hr/employee-admin/internal/model"
)

// Form field names shared by the parsers, the edit-form renderer and the
// error payloads.
const (
	FieldName            = "name"
	FieldMailAddress     = "mailAddress"
	FieldPassword        = "password"
	FieldImage           = "image"
	FieldGender          = "gender"
	FieldHireDate        = "hireDate"
	FieldZipCode         = "zipCode"
	FieldAddress         = "address"
	FieldTelephone       = "telephone"
	FieldSalary          = "salary"
	FieldCharacteristics = "characteristics"
	FieldDependentsCount = "dependentsCount"
)

const (
	tagRequired = "required"
	tagEmail    = "required,email"
	tagDate     = "required,datetime=" + model.DateLayout
	tagCount    = "required,number"
)

// secretFields are never echoed back to the client.
var secretFields = map[string]struct{}{FieldPassword: {}}

var registrationRules = []Rule[model.Administrator]{
	Text(FieldName, tagRequired, func(a *model.Administrator, v string) { a.Name = v }),
	Text(FieldMailAddress, tagEmail, func(a *model.Administrator, v string) { a.MailAddress = v }),
	Text(FieldPassword, tagRequired, func(a *model.Administrator, v string) { a.Password = v }),
}

var loginRules = []Rule[model.LoginForm]{
	Text(FieldMailAddress, tagRequired, func(f *model.LoginForm, v string) { f.MailAddress = v }),
	Text(FieldPassword, tagRequired, func(f *model.LoginForm, v string) { f.Password = v }),
}

var employeeEditRules = []Rule[model.EmployeeEdit]{
	Text(FieldName, tagRequired, func(e *model.EmployeeEdit, v string) { e.Name = &v }),
	Text(FieldImage, tagRequired, func(e *model.EmployeeEdit, v string) { e.Image = &v }),
	Text(FieldGender, tagRequired, func(e *model.EmployeeEdit, v string) { e.Gender = &v }),
	Date(FieldHireDate, tagDate, func(e *model.EmployeeEdit, v model.Date) { e.HireDate = &v }),
	Text(FieldMailAddress, tagEmail, func(e *model.EmployeeEdit, v string) { e.MailAddress = &v }),
	Text(FieldZipCode, tagRequired, func(e *model.EmployeeEdit, v string) { e.ZipCode = &v }),
	Text(FieldAddress, tagRequired, func(e *model.EmployeeEdit, v string) { e.Address = &v }),
	Text(FieldTelephone, tagRequired, func(e *model.EmployeeEdit, v string) { e.Telephone = &v }),
	Int(FieldSalary, tagCount, func(e *model.EmployeeEdit, v int) { e.Salary = &v }),
	Text(FieldCharacteristics, tagRequired, func(e *model.EmployeeEdit, v string) { e.Characteristics = &v }),
	Int(FieldDependentsCount, tagCount, func(e *model.EmployeeEdit, v int) { e.DependentsCount = &v }),
}

// ParseRegistration converts a registration submission into a new
// Administrator. The identifier is left for the store to assign.
func ParseRegistration(raw map[string]string) (model.Administrator, error) {
	return Apply(registrationRules, raw, Complete)
}

// ParseLogin checks that both credentials were submitted.
func ParseLogin(raw map[string]string) (model.LoginForm, error) {
	return Apply(loginRules, raw, Complete)
}

// ParseEmployeeEdit converts an edit submission. Keys absent from raw are
// not part of the edit; present keys must satisfy their rule. The employee
// identifier is never read from raw.
func ParseEmployeeEdit(raw map[string]string) (model.EmployeeEdit, error) {
	return Apply(employeeEditRules, raw, Partial)
}

// EmployeeForm renders an employee as the string values an edit form is
// pre-populated with. ParseEmployeeEdit(EmployeeForm(e)).Apply(e) == e.
func EmployeeForm(e model.Employee) map[string]string {
	return map[string]string{
		FieldName:            e.Name,
		FieldImage:           e.Image,
		FieldGender:          e.Gender,
		FieldHireDate:        e.HireDate.String(),
		FieldMailAddress:     e.MailAddress,
		FieldZipCode:         e.ZipCode,
		FieldAddress:         e.Address,
		FieldTelephone:       e.Telephone,
		FieldSalary:          strconv.Itoa(e.Salary),
		FieldCharacteristics: e.Characteristics,
		FieldDependentsCount: strconv.Itoa(e.DependentsCount),
	}
}

// BlankRegistration is the empty registration form.
func BlankRegistration() map[string]string {
	form := make(map[string]string, len(registrationRules))
	for _, r := range registrationRules {
		form[r.Field] = ""
	}
	return form
}

// Echo copies a submission for re-display, dropping secret fields.
func Echo(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if _, secret := secretFields[k]; secret {
			continue
		}
		out[k] = v
	}
	return out
}
