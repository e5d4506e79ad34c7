package usecase

import (
	"context"
	"testing"
	"time"

	"health-automation-backend/config"
	"health-automation-backend/internal/delivery/http/middleware"
	"health-automation-backend/internal/domain/entity"
	domainRepo "health-automation-backend/internal/domain/repository"
	"health-automation-backend/internal/repository"
	"health-automation-backend/internal/service"
	"health-automation-backend/internal/testutil"
	"health-automation-backend/pkg/jwt"
	"health-automation-backend/pkg/password"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// testEnv wires every usecase against SQLite and miniredis.
type testEnv struct {
	db     *gorm.DB
	log    *logrus.Logger
	mr     *miniredis.Miniredis
	tokens domainRepo.TokenRepository
	hasher *password.Hasher
	jwt    *jwt.JWTService

	userRepo        domainRepo.UserRepository
	roleRepo        domainRepo.RoleRepository
	patientRepo     domainRepo.ProfileRepository[entity.PatientProfile]
	doctorRepo      domainRepo.ProfileRepository[entity.DoctorProfile]
	employeeRepo    domainRepo.ProfileRepository[entity.EmployeeProfile]
	appointmentRepo domainRepo.AppointmentRepository
	audit           service.AuditService

	patients     ProfileUsecase[entity.PatientProfile]
	doctors      ProfileUsecase[entity.DoctorProfile]
	employees    ProfileUsecase[entity.EmployeeProfile]
	users        UserUsecase
	auth         AuthUsecase
	appointments *appointmentUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		db:              testutil.DB(t),
		log:             testutil.Logger(),
		hasher:          password.NewHasher(password.Params{Memory: 1024, Iterations: 1, Parallelism: 1}),
		jwt:             jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: 15 * time.Minute, RefreshExpiry: time.Hour}),
		userRepo:        repository.NewUserRepository(),
		roleRepo:        repository.NewRoleRepository(),
		patientRepo:     repository.NewPatientProfileRepository(),
		doctorRepo:      repository.NewDoctorProfileRepository(),
		employeeRepo:    repository.NewEmployeeProfileRepository(),
		appointmentRepo: repository.NewAppointmentRepository(),
	}
	env.tokens, env.mr = testutil.TokenStore(t)
	env.audit = service.NewAuditService(env.log, repository.NewAuditLogRepository())

	env.patients = NewProfileUsecase(env.db, env.log, PatientKind(env.appointmentRepo), env.userRepo, env.patientRepo, env.audit)
	env.doctors = NewProfileUsecase(env.db, env.log, DoctorKind(env.appointmentRepo), env.userRepo, env.doctorRepo, env.audit)
	env.employees = NewProfileUsecase(env.db, env.log, EmployeeKind(), env.userRepo, env.employeeRepo, env.audit)
	env.users = env.newUserUsecase(env.userRepo)
	env.auth = NewAuthUsecase(env.db, env.log, env.hasher, env.userRepo, env.tokens, env.jwt)
	env.appointments = NewAppointmentUsecase(env.db, env.log, time.UTC, env.userRepo, env.patientRepo, env.doctorRepo, env.appointmentRepo, env.audit).(*appointmentUsecase)

	return env
}

func (env *testEnv) newUserUsecase(userRepo domainRepo.UserRepository) UserUsecase {
	return NewUserUsecase(env.db, env.log, env.hasher, userRepo, env.roleRepo, env.tokens, env.audit, env.employees, env.doctors, env.patients)
}

func asActor(userID int64) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
