package usecase

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"liber-server/internal/domain/entity"
	"liber-server/pkg/apperr"
	"liber-server/pkg/pagination"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// The service layer opens a transaction around every method body but issues
// all SQL through the repository interfaces, so tests drive it with stub
// repositories over a connection pool whose transactions are no-ops.

type fakeConn struct{}

func (fakeConn) PrepareContext(context.Context, string) (*sql.Stmt, error) { return nil, nil }
func (fakeConn) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (fakeConn) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (fakeConn) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }

type fakeTx struct{ fakeConn }

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeConnPool struct{ fakeConn }

func (fakeConnPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	return &fakeTx{}, nil
}

type fakeDialector struct{}

func (fakeDialector) Name() string { return "fake" }
func (fakeDialector) Initialize(db *gorm.DB) error {
	db.ConnPool = fakeConnPool{}
	return nil
}
func (fakeDialector) Migrator(*gorm.DB) gorm.Migrator { return nil }
func (fakeDialector) DataTypeOf(*schema.Field) string { return "" }

func (fakeDialector) DefaultValueOf(*schema.Field) clause.Expression {
	return clause.Expr{SQL: "DEFAULT"}
}

func (fakeDialector) BindVarTo(w clause.Writer, _ *gorm.Statement, _ interface{}) {
	w.WriteByte('?')
}
func (fakeDialector) QuoteTo(w clause.Writer, s string) { w.WriteString(s) }

func (fakeDialector) Explain(sql string, _ ...interface{}) string { return sql }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(fakeDialector{}, &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func socialAssistant() *entity.Principal {
	return &entity.Principal{Login: "ana.souza", Roles: []string{entity.RoleSocialAssistant}}
}

func dentist() *entity.Principal {
	return &entity.Principal{Login: "joao.lima", Roles: []string{entity.RoleDentist}}
}

func assertAlert(t *testing.T, err error, kind apperr.Kind, code string) {
	t.Helper()
	var alert *apperr.Alert
	require.ErrorAs(t, err, &alert)
	assert.Equal(t, kind, alert.Kind)
	assert.Equal(t, code, alert.Code)
}

// --- stub repositories; nil hooks yield empty results ---

type stubHospRepo struct {
	create      func(h *entity.Hospitalization) error
	save        func(h *entity.Hospitalization) error
	findByID    func(patientID int64, startDate time.Time) (*entity.Hospitalization, error)
	findCurrent func(patientID int64) (*entity.Hospitalization, error)
	deleteFn    func(h *entity.Hospitalization) error
}

func (s *stubHospRepo) Create(_ *gorm.DB, h *entity.Hospitalization) error {
	if s.create == nil {
		return nil
	}
	return s.create(h)
}

func (s *stubHospRepo) Save(_ *gorm.DB, h *entity.Hospitalization) error {
	if s.save == nil {
		return nil
	}
	return s.save(h)
}

func (s *stubHospRepo) FindByID(_ *gorm.DB, patientID int64, startDate time.Time) (*entity.Hospitalization, error) {
	if s.findByID == nil {
		return nil, nil
	}
	return s.findByID(patientID, startDate)
}

func (s *stubHospRepo) FindCurrentByPatientID(_ *gorm.DB, patientID int64) (*entity.Hospitalization, error) {
	if s.findCurrent == nil {
		return nil, nil
	}
	return s.findCurrent(patientID)
}

func (s *stubHospRepo) FindAllByPatientID(_ *gorm.DB, _ int64, _ pagination.Pageable) ([]entity.Hospitalization, int64, error) {
	return nil, 0, nil
}

func (s *stubHospRepo) FindAllByFilter(_ *gorm.DB, _ string, _, _ *time.Time, _ pagination.Pageable) ([]entity.Hospitalization, int64, error) {
	return nil, 0, nil
}

func (s *stubHospRepo) Delete(_ *gorm.DB, h *entity.Hospitalization) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(h)
}

type stubPatientRepo struct {
	save     func(p *entity.Patient) error
	findByID func(id int64) (*entity.Patient, error)
	deleteFn func(id int64) (int64, error)
}

func (s *stubPatientRepo) Save(_ *gorm.DB, p *entity.Patient) error {
	if s.save == nil {
		return nil
	}
	return s.save(p)
}

func (s *stubPatientRepo) FindByID(_ *gorm.DB, id int64) (*entity.Patient, error) {
	if s.findByID == nil {
		return nil, nil
	}
	return s.findByID(id)
}

func (s *stubPatientRepo) FindAllByFilter(_ *gorm.DB, _ string, _ pagination.Pageable) ([]entity.Patient, int64, error) {
	return nil, 0, nil
}

func (s *stubPatientRepo) Delete(_ *gorm.DB, id int64) (int64, error) {
	if s.deleteFn == nil {
		return 1, nil
	}
	return s.deleteFn(id)
}

type stubCatalogRepo struct {
	findByID func(table string, id int64) (*entity.CatalogEntry, error)
}

func (s *stubCatalogRepo) Create(_ *gorm.DB, _ string, _ *entity.CatalogEntry) error { return nil }

func (s *stubCatalogRepo) FindByID(_ *gorm.DB, table string, id int64) (*entity.CatalogEntry, error) {
	if s.findByID == nil {
		return nil, nil
	}
	return s.findByID(table, id)
}

func (s *stubCatalogRepo) FindByName(_ *gorm.DB, _ string, _ string) (*entity.CatalogEntry, error) {
	return nil, nil
}

func (s *stubCatalogRepo) FindAllByName(_ *gorm.DB, _ string, _ string, _ pagination.Pageable) ([]entity.CatalogEntry, int64, error) {
	return nil, 0, nil
}

func (s *stubCatalogRepo) Delete(_ *gorm.DB, _ string, _ int64) (int64, error) { return 1, nil }

type stubReportRepo struct {
	save     func(r *entity.Report) error
	findByID func(id int64) (*entity.Report, error)
	deleteFn func(r *entity.Report) error
}

func (s *stubReportRepo) Save(_ *gorm.DB, r *entity.Report) error {
	if s.save == nil {
		return nil
	}
	return s.save(r)
}

func (s *stubReportRepo) FindByID(_ *gorm.DB, id int64) (*entity.Report, error) {
	if s.findByID == nil {
		return nil, nil
	}
	return s.findByID(id)
}

func (s *stubReportRepo) FindAllByPatientID(_ *gorm.DB, _ int64, _ pagination.Pageable) ([]entity.Report, int64, error) {
	return nil, 0, nil
}

func (s *stubReportRepo) Delete(_ *gorm.DB, r *entity.Report) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(r)
}

func (s *stubReportRepo) DeleteAllByPatientID(_ *gorm.DB, _ int64) error { return nil }

type stubUserRepo struct {
	findByLogin func(login string) (*entity.User, error)
}

func (s *stubUserRepo) FindByLogin(_ *gorm.DB, login string) (*entity.User, error) {
	if s.findByLogin == nil {
		return nil, nil
	}
	return s.findByLogin(login)
}

type stubCityRepo struct {
	findByID func(id int64) (*entity.City, error)
}

func (s *stubCityRepo) FindByID(_ *gorm.DB, id int64) (*entity.City, error) {
	if s.findByID == nil {
		return nil, nil
	}
	return s.findByID(id)
}

func (s *stubCityRepo) FindAllByName(_ *gorm.DB, _ string, _ pagination.Pageable) ([]entity.City, int64, error) {
	return nil, 0, nil
}

type stubDocRepo struct {
	existing []entity.PatientDocument
	upserted []entity.PatientDocument
	deleted  []entity.PatientDocument
}

func (s *stubDocRepo) FindByPatientID(_ *gorm.DB, _ int64) ([]entity.PatientDocument, error) {
	return s.existing, nil
}

func (s *stubDocRepo) Upsert(_ *gorm.DB, doc *entity.PatientDocument) error {
	s.upserted = append(s.upserted, *doc)
	return nil
}

func (s *stubDocRepo) Delete(_ *gorm.DB, doc *entity.PatientDocument) error {
	s.deleted = append(s.deleted, *doc)
	return nil
}
