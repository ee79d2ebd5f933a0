package model

// Employee represents a staff record maintained by administrators.
type Employee struct {
	ID              int    `json:"id" db:"id"`
	Name            string `json:"name" db:"name"`
	Image           string `json:"image" db:"image"`
	Gender          string `json:"gender" db:"gender"`
	HireDate        Date   `json:"hire_date" db:"hire_date"`
	MailAddress     string `json:"mail_address" db:"mail_address"`
	ZipCode         string `json:"zip_code" db:"zip_code"`
	Address         string `json:"address" db:"address"`
	Telephone       string `json:"telephone" db:"telephone"`
	Salary          int    `json:"salary" db:"salary"`
	Characteristics string `json:"characteristics" db:"characteristics"`
	DependentsCount int    `json:"dependents_count" db:"dependents_count"`
}

// EmployeeEdit holds the validated fields of an edit submission. A nil field
// was not part of the submission and keeps its persisted value.
type EmployeeEdit struct {
	Name            *string
	Image           *string
	Gender          *string
	HireDate        *Date
	MailAddress     *string
	ZipCode         *string
	Address         *string
	Telephone       *string
	Salary          *int
	Characteristics *string
	DependentsCount *int
}

// Apply returns base with every submitted field replaced. The identifier of
// base is never changed.
func (e EmployeeEdit) Apply(base Employee) Employee {
	out := base
	setString(&out.Name, e.Name)
	setString(&out.Image, e.Image)
	setString(&out.Gender, e.Gender)
	if e.HireDate != nil {
		out.HireDate = *e.HireDate
	}
	setString(&out.MailAddress, e.MailAddress)
	setString(&out.ZipCode, e.ZipCode)
	setString(&out.Address, e.Address)
	setString(&out.Telephone, e.Telephone)
	if e.Salary != nil {
		out.Salary = *e.Salary
	}
	setString(&out.Characteristics, e.Characteristics)
	if e.DependentsCount != nil {
		out.DependentsCount = *e.DependentsCount
	}
	out.ID = base.ID
	return out
}

// Empty reports whether no field was submitted.
func (e EmployeeEdit) Empty() bool {
	return e == EmployeeEdit{}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
