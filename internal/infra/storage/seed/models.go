package seed

type file struct {
	Users        []userRecord        `yaml:"users"`
	Companies    []companyRecord     `yaml:"companies"`
	Appointments []appointmentRecord `yaml:"appointments"`
}

type userRecord struct {
	ID                 string  `yaml:"id"`
	Name               string  `yaml:"name"`
	Email              string  `yaml:"email"`
	Role               string  `yaml:"role"`
	RegistrationNumber *string `yaml:"registration_number"`
	OrganizationName   *string `yaml:"organization_name"`
	Avatar             *string `yaml:"avatar"`
	Password           string  `yaml:"password"`
	PasswordHash       string  `yaml:"password_hash"`
}

type companyRecord struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	TaxID        string `yaml:"tax_id"`
	ContactEmail string `yaml:"contact_email"`
	Phone        string `yaml:"phone"`
	Address      string `yaml:"address"`
}

type appointmentRecord struct {
	ID           string  `yaml:"id"`
	CompanyID    string  `yaml:"company_id"`
	CompanyName  string  `yaml:"company_name"`
	TechnicianID string  `yaml:"technician_id"`
	Date         string  `yaml:"date"`
	Time         string  `yaml:"time"`
	Status       string  `yaml:"status"`
	Description  *string `yaml:"description"`
}
