package seed

import (
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/infra/storage/entity"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

//go:embed default.yaml
var defaultSeed []byte

// Loader читает стартовый снимок хранилища из YAML
type Loader struct {
	hashCost int
}

// NewLoader создает загрузчик. hashCost - стоимость bcrypt (0 - bcrypt.DefaultCost)
func NewLoader(hashCost int) *Loader {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &Loader{hashCost: hashCost}
}

// Load читает файл; пустой путь - встроенный набор данных
func (l *Loader) Load(path string) (entity.Snapshot, error) {
	if path == "" {
		return l.Parse(defaultSeed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	return l.Parse(data)
}

// Parse разбирает YAML и проверяет записи
func (l *Loader) Parse(data []byte) (entity.Snapshot, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var snapshot entity.Snapshot
	roles := make(map[string]domain.Role, len(f.Users))

	for i, rec := range f.Users {
		user, err := l.buildUser(rec)
		if err != nil {
			return entity.Snapshot{}, fmt.Errorf("%w: users[%d]: %v", ErrInvalidRecord, i, err)
		}
		if _, dup := roles[user.ID]; dup {
			return entity.Snapshot{}, fmt.Errorf("%w: users[%d]: duplicate id %q", ErrInvalidRecord, i, user.ID)
		}
		roles[user.ID] = user.Role
		snapshot.Users = append(snapshot.Users, user)
	}

	for i, rec := range f.Companies {
		if rec.ID == "" || rec.Name == "" {
			return entity.Snapshot{}, fmt.Errorf("%w: companies[%d]: id and name are required", ErrInvalidRecord, i)
		}
		snapshot.Companies = append(snapshot.Companies, &domain.Company{
			ID:           rec.ID,
			Name:         rec.Name,
			TaxID:        rec.TaxID,
			ContactEmail: rec.ContactEmail,
			Phone:        rec.Phone,
			Address:      rec.Address,
		})
	}

	for i, rec := range f.Appointments {
		appointment, err := buildAppointment(rec)
		if err != nil {
			return entity.Snapshot{}, fmt.Errorf("%w: appointments[%d]: %v", ErrInvalidRecord, i, err)
		}
		if roles[appointment.TechnicianID] != domain.RoleTechnician {
			return entity.Snapshot{}, fmt.Errorf("%w: appointments[%d]: %q is not a technician", ErrInvalidRecord, i, appointment.TechnicianID)
		}
		snapshot.Appointments = append(snapshot.Appointments, appointment)
	}

	if err := snapshot.Validate(); err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	return snapshot, nil
}

func (l *Loader) buildUser(rec userRecord) (*domain.User, error) {
	if rec.ID == "" || rec.Email == "" {
		return nil, fmt.Errorf("id and email are required")
	}

	role, err := domain.ParseRole(rec.Role)
	if err != nil {
		return nil, err
	}

	hash := rec.PasswordHash
	if hash == "" {
		if rec.Password == "" {
			return nil, fmt.Errorf("password or password_hash is required")
		}
		raw, err := bcrypt.GenerateFromPassword([]byte(rec.Password), l.hashCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %v", err)
		}
		hash = string(raw)
	}

	return &domain.User{
		ID:                 rec.ID,
		Name:               rec.Name,
		Email:              rec.Email,
		Role:               role,
		RegistrationNumber: rec.RegistrationNumber,
		OrganizationName:   rec.OrganizationName,
		Avatar:             rec.Avatar,
		PasswordHash:       hash,
	}, nil
}

func buildAppointment(rec appointmentRecord) (*domain.Appointment, error) {
	if rec.ID == "" || rec.CompanyID == "" || rec.TechnicianID == "" {
		return nil, fmt.Errorf("id, company_id and technician_id are required")
	}

	date, err := domain.ParseDate(rec.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(rec.Time)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseAppointmentStatus(rec.Status)
	if err != nil {
		return nil, err
	}

	return &domain.Appointment{
		ID:           rec.ID,
		CompanyID:    rec.CompanyID,
		CompanyName:  rec.CompanyName,
		TechnicianID: rec.TechnicianID,
		Date:         date,
		Time:         slot,
		Status:       status,
		Description:  rec.Description,
		CreatedAt:    date,
	}, nil
}
