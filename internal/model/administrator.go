package model

// Administrator represents a user allowed to register administrators and
// edit employee records.
type Administrator struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	MailAddress string `json:"mail_address" db:"mail_address"`
	Password    string `json:"-" db:"password"`
}

// LoginForm is the typed credential pair submitted on login.
type LoginForm struct {
	MailAddress string
	Password    string
}
