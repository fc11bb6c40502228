//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/internal/handler/api"
	resdto "github.com/gottliebdinh/moggi-admin/internal/handler/dto/response"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
	"github.com/gottliebdinh/moggi-admin/tests/common/builder"
	"github.com/gottliebdinh/moggi-admin/tests/common/httptest"
)

type stubReservationUseCase struct {
	list []reservation.Reservation
	res  *reservation.Reservation
	err  error

	gotDraft  reservation.Draft
	gotStatus reservation.Status
}

func (s *stubReservationUseCase) List(context.Context, string) ([]reservation.Reservation, error) {
	return s.list, s.err
}

func (s *stubReservationUseCase) Get(context.Context, uuid.UUID) (*reservation.Reservation, error) {
	return s.res, s.err
}

func (s *stubReservationUseCase) Create(_ context.Context, draft reservation.Draft) (*reservation.Reservation, error) {
	s.gotDraft = draft
	return s.res, s.err
}

func (s *stubReservationUseCase) Update(_ context.Context, _ uuid.UUID, draft reservation.Draft) (*reservation.Reservation, error) {
	s.gotDraft = draft
	return s.res, s.err
}

func (s *stubReservationUseCase) UpdateStatus(_ context.Context, _ uuid.UUID, status reservation.Status) (*reservation.Reservation, error) {
	s.gotStatus = status
	return s.res, s.err
}

func (s *stubReservationUseCase) Delete(context.Context, uuid.UUID) error {
	return s.err
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubReservationUseCase
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.stub = &stubReservationUseCase{}
	handler := api.NewReservationHandler(s.stub)

	s.router.GET("/reservations", handler.List)
	s.router.POST("/reservations", handler.Create)
	s.router.GET("/reservations/:id", handler.Get)
	s.router.PUT("/reservations/:id", handler.Update)
	s.router.PATCH("/reservations/:id/status", handler.UpdateStatus)
	s.router.DELETE("/reservations/:id", handler.Delete)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func validCreateBody() map[string]any {
	return map[string]any{
		"date":       "2025-03-07",
		"time":       "19:00",
		"guest_name": "Anna Schmidt",
		"guests":     4,
		"tables":     []string{"5 Tisch"},
		"email":      "anna@example.com",
	}
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with reservations", func() {
		res := builder.NewReservationBuilder().BuildDomain()
		s.stub.list = []reservation.Reservation{res}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?date=2025-03-07", nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(res.ID, body[0].ID)
		s.Equal("placed", body[0].Status)
		s.Equal("5 Tisch", body[0].Tables)
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	res := builder.NewReservationBuilder().BuildDomain()
	url := "/reservations/" + res.ID.String()

	s.Run("success: returns 200 OK with the reservation", func() {
		s.stub.res = &res
		s.stub.err = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(res.ID, body.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.stub.res = nil
		s.stub.err = usecase.ErrReservationNotFound

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	s.Run("success: returns 201 Created", func() {
		created := builder.NewReservationBuilder().BuildDomain()
		s.stub.res = &created
		s.stub.err = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID, body.ID)
		s.Equal("5 Tisch", s.stub.gotDraft.Tables)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		body := validCreateBody()
		delete(body, "guest_name")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 Conflict when a table is taken", func() {
		s.stub.res = nil
		s.stub.err = usecase.ErrTableConflict

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Table already reserved for an overlapping time")
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.stub.res = nil
		s.stub.err = usecase.ErrDomainValidationFailed

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("error: 422 Unprocessable Entity for unsafe table names", func() {
		body := validCreateBody()
		body["tables"] = []string{"Terrasse, links"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid table name")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdate() {
	res := builder.NewReservationBuilder().BuildDomain()
	url := "/reservations/" + res.ID.String()

	s.Run("success: returns 200 OK with the updated reservation", func() {
		s.stub.res = &res
		s.stub.err = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validCreateBody())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(res.ID, body.ID)
	})

	s.Run("error: 409 Conflict when the new tables are taken", func() {
		s.stub.res = nil
		s.stub.err = usecase.ErrTableConflict

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validCreateBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	res := builder.NewReservationBuilder().BuildDomain()
	url := "/reservations/" + res.ID.String() + "/status"

	s.Run("success: returns 200 OK and forwards the parsed status", func() {
		updated := res
		updated.Status = reservation.StatusNoShow
		s.stub.res = &updated
		s.stub.err = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "no-show"})

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("no-show", body.Status)
		s.Equal(reservation.StatusNoShow, s.stub.gotStatus)
	})

	s.Run("error: 422 Unprocessable Entity for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "done"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Unknown reservation status")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	res := builder.NewReservationBuilder().BuildDomain()
	url := "/reservations/" + res.ID.String()

	s.Run("success: returns 204 No Content", func() {
		s.stub.err = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.stub.err = usecase.ErrReservationNotFound

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
