package usecase

import (
	"context"
	"testing"

	"liber-server/internal/delivery/dto"
	"liber-server/internal/domain/entity"
	"liber-server/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportUsecase(t *testing.T, reportRepo *stubReportRepo, patientRepo *stubPatientRepo, userRepo *stubUserRepo) ReportUsecase {
	t.Helper()
	if reportRepo == nil {
		reportRepo = &stubReportRepo{}
	}
	if patientRepo == nil {
		patientRepo = &stubPatientRepo{}
	}
	if userRepo == nil {
		userRepo = &stubUserRepo{}
	}
	return NewReportUsecase(testDB(t), testLogger(), reportRepo, patientRepo, userRepo)
}

func knownUser(login string, id int64) *stubUserRepo {
	return &stubUserRepo{
		findByLogin: func(got string) (*entity.User, error) {
			if got == login {
				return &entity.User{ID: id, Login: login}, nil
			}
			return nil, nil
		},
	}
}

func reportRequest() *dto.ReportRequest {
	return &dto.ReportRequest{
		Type:      "DENTIST",
		Status:    "DRAFT",
		Title:     "first consultation",
		Content:   "<p>stable</p>",
		PatientID: 1,
	}
}

func TestReportCreate(t *testing.T) {
	t.Run("rejects a request carrying an id", func(t *testing.T) {
		u := newReportUsecase(t, nil, nil, nil)
		id := int64(5)
		req := reportRequest()
		req.ID = &id
		resp, err := u.Create(context.Background(), dentist(), req)
		assert.Nil(t, resp)
		assertAlert(t, err, apperr.KindBadRequest, "hasId")
	})

	t.Run("rejects an unknown author", func(t *testing.T) {
		u := newReportUsecase(t, nil, existingPatient(1), knownUser("someone.else", 9))
		_, err := u.Create(context.Background(), dentist(), reportRequest())
		assertAlert(t, err, apperr.KindBadRequest, "authorNotFound")
	})

	t.Run("rejects an unknown patient", func(t *testing.T) {
		u := newReportUsecase(t, nil, existingPatient(8), knownUser("joao.lima", 9))
		_, err := u.Create(context.Background(), dentist(), reportRequest())
		assertAlert(t, err, apperr.KindBadRequest, "patientNotFound")
	})

	t.Run("stores the sanitized content under the caller's authorship", func(t *testing.T) {
		var saved *entity.Report
		reports := &stubReportRepo{
			save: func(r *entity.Report) error {
				saved = r
				return nil
			},
		}
		u := newReportUsecase(t, reports, existingPatient(1), knownUser("joao.lima", 9))

		req := reportRequest()
		req.Content = `<p onclick="steal()">note</p><script>alert(1)</script>`
		resp, err := u.Create(context.Background(), dentist(), req)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, int64(9), saved.AuthorID)
		assert.Equal(t, int64(1), saved.PatientID)
		assert.NotContains(t, saved.Content, "<script>")
		assert.NotContains(t, saved.Content, "onclick")
		assert.Contains(t, saved.Content, "note")
		assert.Equal(t, "joao.lima", resp.AuthorLogin)
	})
}

func TestReportUpdate(t *testing.T) {
	id := int64(5)

	storedReport := func(authorLogin string) *stubReportRepo {
		return &stubReportRepo{
			findByID: func(got int64) (*entity.Report, error) {
				if got == id {
					return &entity.Report{
						ID:     id,
						Author: entity.User{ID: 9, Login: authorLogin},
					}, nil
				}
				return nil, nil
			},
		}
	}

	t.Run("rejects a request without an id", func(t *testing.T) {
		u := newReportUsecase(t, nil, nil, nil)
		_, err := u.Update(context.Background(), dentist(), reportRequest())
		assertAlert(t, err, apperr.KindNotFound, "reportNotFound")
	})

	t.Run("reports a missing row", func(t *testing.T) {
		u := newReportUsecase(t, storedReport("joao.lima"), nil, nil)
		missing := int64(404)
		req := reportRequest()
		req.ID = &missing
		_, err := u.Update(context.Background(), dentist(), req)
		assertAlert(t, err, apperr.KindNotFound, "reportNotFound")
	})

	t.Run("only the author may update", func(t *testing.T) {
		u := newReportUsecase(t, storedReport("ana.souza"), nil, nil)
		req := reportRequest()
		req.ID = &id
		_, err := u.Update(context.Background(), dentist(), req)
		assertAlert(t, err, apperr.KindUnauthorized, "unauthorized")
	})

	t.Run("the author overwrites their own report", func(t *testing.T) {
		reports := storedReport("joao.lima")
		var saved *entity.Report
		reports.save = func(r *entity.Report) error {
			saved = r
			return nil
		}
		u := newReportUsecase(t, reports, existingPatient(1), knownUser("joao.lima", 9))

		req := reportRequest()
		req.ID = &id
		req.Title = "follow-up"
		resp, err := u.Update(context.Background(), dentist(), req)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, id, saved.ID)
		assert.Equal(t, "follow-up", saved.Title)
		assert.Equal(t, "follow-up", resp.Title)
	})
}

func TestReportDelete(t *testing.T) {
	t.Run("requires the social assistant role", func(t *testing.T) {
		u := newReportUsecase(t, nil, nil, nil)
		err := u.Delete(context.Background(), dentist(), 5)
		assertAlert(t, err, apperr.KindUnauthorized, "unauthorized")
	})

	t.Run("reports a missing row", func(t *testing.T) {
		u := newReportUsecase(t, nil, nil, nil)
		err := u.Delete(context.Background(), socialAssistant(), 5)
		assertAlert(t, err, apperr.KindNotFound, "reportNotFound")
	})

	t.Run("deletes regardless of authorship", func(t *testing.T) {
		var deleted *entity.Report
		reports := &stubReportRepo{
			findByID: func(id int64) (*entity.Report, error) {
				return &entity.Report{ID: id, Author: entity.User{Login: "joao.lima"}}, nil
			},
			deleteFn: func(r *entity.Report) error {
				deleted = r
				return nil
			},
		}
		u := newReportUsecase(t, reports, nil, nil)
		err := u.Delete(context.Background(), socialAssistant(), 5)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, int64(5), deleted.ID)
	})
}

func TestReportGet(t *testing.T) {
	t.Run("requires a clinical role", func(t *testing.T) {
		u := newReportUsecase(t, nil, nil, nil)
		_, err := u.Get(context.Background(), &entity.Principal{Login: "x", Roles: []string{entity.RoleAdmin}}, 5)
		assertAlert(t, err, apperr.KindUnauthorized, "unauthorized")
	})

	t.Run("reports a missing row", func(t *testing.T) {
		u := newReportUsecase(t, nil, nil, nil)
		_, err := u.Get(context.Background(), dentist(), 5)
		assertAlert(t, err, apperr.KindNotFound, "reportNotFound")
	})
}
